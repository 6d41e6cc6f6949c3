package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
)

// IDGenerator generates unique IDs for new split containers.
type IDGenerator func() string

var (
	// ErrNoParentSplit is returned when a container is not held by a split container.
	ErrNoParentSplit = errors.New("container has no parent split container")
	// ErrNoSibling is returned when a persistent container has no same-scope sibling.
	ErrNoSibling = errors.New("no same-scope sibling to take over")
	// ErrNotEmpty is returned when removal is requested for a container that holds tabs.
	ErrNotEmpty = errors.New("container is not empty")
	// ErrNoQuadrant is returned when a placement names no quadrant.
	ErrNoQuadrant = errors.New("drop target is not a quadrant")
	// ErrDetachedTarget is returned when the target belongs to no tree.
	ErrDetachedTarget = errors.New("target container is not part of a tree")
)

// PlacementCase tells which branch of split placement ran.
type PlacementCase int

const (
	// PlacementWrapped: the target had no parent split; a new split wrapping
	// it was substituted into its root slot.
	PlacementWrapped PlacementCase = iota
	// PlacementRepurposed: the parent split had a single child and was
	// reoriented before the new container was inserted.
	PlacementRepurposed
	// PlacementNested: the parent split had another orientation; the target's
	// slot now holds a new split of the requested orientation.
	PlacementNested
	// PlacementInserted: the new container was inserted next to the target
	// and all dividers were redistributed evenly.
	PlacementInserted
)

func (c PlacementCase) String() string {
	switch c {
	case PlacementWrapped:
		return "wrapped"
	case PlacementRepurposed:
		return "repurposed"
	case PlacementNested:
		return "nested"
	case PlacementInserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// ManageSplitsUseCase mutates the docking tree on split placement and
// container removal.
type ManageSplitsUseCase struct {
	idGenerator IDGenerator
}

// NewManageSplitsUseCase creates a new split management use case.
func NewManageSplitsUseCase(idGenerator IDGenerator) *ManageSplitsUseCase {
	return &ManageSplitsUseCase{
		idGenerator: idGenerator,
	}
}

// PlaceInput contains parameters for placing a container next to a target.
type PlaceInput struct {
	Target   *entity.TabContainer
	Quadrant entity.Quadrant
	// NewContainer is the container created for the dropped tab. It must not
	// be part of a tree yet.
	NewContainer *entity.TabContainer
}

// PlaceOutput describes the result of a placement.
type PlaceOutput struct {
	Case PlacementCase
	// Split is the split container now holding the new container.
	Split *entity.SplitContainer
}

// Place puts input.NewContainer beside input.Target on the side named by
// the quadrant, restructuring the split tree as needed.
func (uc *ManageSplitsUseCase) Place(ctx context.Context, input PlaceInput) (*PlaceOutput, error) {
	log := logging.FromContext(ctx)

	if input.Target == nil || input.NewContainer == nil {
		return nil, fmt.Errorf("place: %w", entity.ErrNilNode)
	}
	if input.Quadrant == entity.QuadrantNone {
		return nil, ErrNoQuadrant
	}

	target := input.Target
	added := input.NewContainer
	addToLast := input.Quadrant.AddToLast()
	orientation := input.Quadrant.Orientation()

	log.Debug().
		Str("target_id", string(target.ID)).
		Str("new_id", string(added.ID)).
		Str("quadrant", input.Quadrant.String()).
		Msg("placing container")

	parent := target.Parent()

	// No parent split: wrap the target and take over its root slot.
	if parent == nil {
		root := target.Holder()
		if root == nil {
			return nil, ErrDetachedTarget
		}
		split := entity.NewSplitContainer(uc.newSplitID(), orientation)
		root.Set(split)
		if err := insertPair(split, target, added, addToLast); err != nil {
			return nil, err
		}
		return &PlaceOutput{Case: PlacementWrapped, Split: split}, nil
	}

	placement := PlacementInserted
	if parent.Len() == 1 {
		parent.SetOrientation(orientation)
		placement = PlacementRepurposed
	}

	// Orientation mismatch: the target's slot grows one level deeper.
	if parent.Orientation() != orientation {
		split := entity.NewSplitContainer(uc.newSplitID(), orientation)
		if err := parent.Replace(target, split); err != nil {
			return nil, err
		}
		if err := insertPair(split, target, added, addToLast); err != nil {
			return nil, err
		}
		return &PlaceOutput{Case: PlacementNested, Split: split}, nil
	}

	index := parent.IndexOf(target)
	if addToLast {
		index++
	}
	if err := parent.Insert(index, added); err != nil {
		return nil, err
	}
	parent.DistributeEvenly()

	return &PlaceOutput{Case: placement, Split: parent}, nil
}

func insertPair(split *entity.SplitContainer, target, added entity.Node, addToLast bool) error {
	first, second := added, target
	if addToLast {
		first, second = target, added
	}
	if err := split.Insert(0, first); err != nil {
		return err
	}
	return split.Insert(1, second)
}

func (uc *ManageSplitsUseCase) newSplitID() entity.SplitID {
	if uc.idGenerator == nil {
		return ""
	}
	return entity.SplitID(uc.idGenerator())
}

// RemoveInput contains parameters for removing an empty container.
type RemoveInput struct {
	Container *entity.TabContainer
	// OnSibling is called with the same-scope sibling that takes over when a
	// persistent container (CloseIfEmpty false) goes away. It runs before
	// the container is detached.
	OnSibling func(sibling *entity.TabContainer)
}

// RemoveOutput describes the result of a removal.
type RemoveOutput struct {
	// Parent is the split the container was removed from. It may have been
	// collapsed away by simplification.
	Parent *entity.SplitContainer
	// Sibling is set when a sibling took over as the scope's persistent container.
	Sibling *entity.TabContainer
}

// RemoveContainer detaches an empty container from its parent split and
// simplifies the tree. A container without a parent split is left in place
// (ErrNoParentSplit). A persistent container is only removed when a
// same-scope sibling can take over (ErrNoSibling otherwise).
func (uc *ManageSplitsUseCase) RemoveContainer(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	log := logging.FromContext(ctx)

	c := input.Container
	if c == nil {
		return nil, fmt.Errorf("remove container: %w", entity.ErrNilNode)
	}
	if !c.IsEmpty() {
		return nil, fmt.Errorf("remove container %s: %w", c.ID, ErrNotEmpty)
	}

	parent := uc.FindParentSplit(c)
	if parent == nil {
		return nil, ErrNoParentSplit
	}

	out := &RemoveOutput{Parent: parent}
	if !c.CloseIfEmpty {
		sibling := uc.FindSibling(parent, c)
		if sibling == nil {
			return nil, ErrNoSibling
		}
		sibling.CloseIfEmpty = false
		if input.OnSibling != nil {
			input.OnSibling(sibling)
		}
		out.Sibling = sibling
	}

	if _, err := parent.Remove(c); err != nil {
		return nil, err
	}
	log.Debug().
		Str("container_id", string(c.ID)).
		Str("split_id", string(parent.ID)).
		Msg("removed empty container")

	uc.Simplify(ctx, parent)
	return out, nil
}

// FindParentSplit returns the split container holding n, or nil.
func (uc *ManageSplitsUseCase) FindParentSplit(n entity.Node) *entity.SplitContainer {
	if n == nil {
		return nil
	}
	return n.Parent()
}

// FindSibling looks for a tab container sharing c's scope inside split.
// Direct children are checked first, then every nested split container
// depth-first in child order.
func (uc *ManageSplitsUseCase) FindSibling(split *entity.SplitContainer, c *entity.TabContainer) *entity.TabContainer {
	if split == nil || c == nil {
		return nil
	}
	for _, child := range split.Children() {
		if tc, ok := child.(*entity.TabContainer); ok && tc != c && tc.Scope == c.Scope {
			return tc
		}
	}
	for _, child := range split.Children() {
		if nested, ok := child.(*entity.SplitContainer); ok {
			if found := uc.FindSibling(nested, c); found != nil {
				return found
			}
		}
	}
	return nil
}

// Simplify collapses split containers left with a single child, walking up
// from split. A degenerate split at the top of a tree is replaced in its
// root slot by its child. Empty splits that are not at the top are removed.
func (uc *ManageSplitsUseCase) Simplify(ctx context.Context, split *entity.SplitContainer) {
	log := logging.FromContext(ctx)

	for split != nil {
		switch split.Len() {
		case 0:
			parent := split.Parent()
			if parent == nil {
				return
			}
			if _, err := parent.Remove(split); err != nil {
				log.Warn().Err(err).Str("split_id", string(split.ID)).Msg("failed to drop empty split")
				return
			}
			split = parent
		case 1:
			child := split.ChildAt(0)
			parent := split.Parent()
			switch {
			case parent != nil:
				if err := parent.Replace(split, child); err != nil {
					log.Warn().Err(err).Str("split_id", string(split.ID)).Msg("failed to collapse split")
					return
				}
			case split.Holder() != nil:
				split.Holder().Set(child)
			default:
				return
			}
			log.Debug().
				Str("split_id", string(split.ID)).
				Str("child_id", child.NodeID()).
				Msg("collapsed single-child split")
			split = parent
		default:
			return
		}
	}
}
