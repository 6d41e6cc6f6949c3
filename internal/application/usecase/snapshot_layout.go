package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/domain/repository"
	"github.com/bnema/tabdock/internal/logging"
)

var (
	// ErrLayoutNotFound is returned when no layout is stored under a name.
	ErrLayoutNotFound = errors.New("layout not found")
	// ErrUnsupportedSnapshot is returned for snapshots written by a newer version.
	ErrUnsupportedSnapshot = errors.New("unsupported layout snapshot version")
	// ErrInvalidSnapshot is returned when a snapshot does not describe a valid tree.
	ErrInvalidSnapshot = errors.New("invalid layout snapshot")
)

// SnapshotLayoutUseCase saves a docking tree under a name.
type SnapshotLayoutUseCase struct {
	repo repository.LayoutRepository
	now  func() time.Time
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(repo repository.LayoutRepository) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{repo: repo, now: time.Now}
}

// SnapshotLayoutInput contains the parameters for saving a layout.
type SnapshotLayoutInput struct {
	Name string
	Root entity.Node
}

// Execute captures input.Root and stores it.
func (uc *SnapshotLayoutUseCase) Execute(ctx context.Context, input SnapshotLayoutInput) (*entity.LayoutSnapshot, error) {
	log := logging.FromContext(ctx)

	if input.Name == "" {
		return nil, fmt.Errorf("layout name required")
	}
	if input.Root == nil {
		return nil, fmt.Errorf("snapshot layout %q: %w", input.Name, entity.ErrNilNode)
	}

	snapshot := CaptureLayout(input.Name, input.Root)
	snapshot.SavedAt = uc.now().UTC()

	log.Debug().
		Str("layout", input.Name).
		Int("tab_count", snapshot.TabCount()).
		Msg("saving layout snapshot")

	if err := uc.repo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save layout %q: %w", input.Name, err)
	}
	return snapshot, nil
}

// CaptureLayout converts the tree rooted at n into a snapshot.
func CaptureLayout(name string, n entity.Node) *entity.LayoutSnapshot {
	return &entity.LayoutSnapshot{
		Name:    name,
		Version: entity.LayoutSnapshotVersion,
		Root:    captureNode(n),
	}
}

func captureNode(n entity.Node) entity.NodeSnapshot {
	switch node := n.(type) {
	case *entity.TabContainer:
		snap := entity.NodeSnapshot{
			Kind:          entity.KindTabs.String(),
			Scope:         node.Scope,
			CloseIfEmpty:  node.CloseIfEmpty,
			ClosingPolicy: node.ClosingPolicy.String(),
			Selected:      node.SelectedIndex(),
		}
		for _, tab := range node.Tabs() {
			snap.Tabs = append(snap.Tabs, entity.TabSnapshot{
				Title:      tab.Title,
				Detachable: tab.Detachable(),
			})
		}
		return snap
	case *entity.SplitContainer:
		snap := entity.NodeSnapshot{
			Kind:        entity.KindSplit.String(),
			Orientation: node.Orientation().String(),
			Dividers:    node.Dividers(),
			Selected:    -1,
		}
		for _, child := range node.Children() {
			snap.Children = append(snap.Children, captureNode(child))
		}
		return snap
	default:
		return entity.NodeSnapshot{}
	}
}

// ContentResolver returns the content for a restored tab.
type ContentResolver func(title string) any

// RestoreLayoutUseCase loads a stored layout and rebuilds its tree.
type RestoreLayoutUseCase struct {
	repo        repository.LayoutRepository
	idGenerator IDGenerator
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(repo repository.LayoutRepository, idGenerator IDGenerator) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{repo: repo, idGenerator: idGenerator}
}

// RestoreLayoutInput contains the parameters for restoring a layout.
type RestoreLayoutInput struct {
	Name    string
	Resolve ContentResolver
}

// RestoreLayoutOutput is a freshly built tree, not yet held by any root.
type RestoreLayoutOutput struct {
	Snapshot   *entity.LayoutSnapshot
	Node       entity.Node
	Containers []*entity.TabContainer
}

// Execute loads the layout stored under input.Name and rebuilds it.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, input RestoreLayoutInput) (*RestoreLayoutOutput, error) {
	log := logging.FromContext(ctx)

	snapshot, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", input.Name, err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("layout %q: %w", input.Name, ErrLayoutNotFound)
	}

	out, err := BuildLayout(snapshot, input.Resolve, uc.idGenerator)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("layout", input.Name).
		Int("containers", len(out.Containers)).
		Int("tab_count", snapshot.TabCount()).
		Msg("restored layout snapshot")
	return out, nil
}

// BuildLayout rebuilds the tree described by snapshot. Tab content is
// looked up by title through resolve, which may be nil.
func BuildLayout(snapshot *entity.LayoutSnapshot, resolve ContentResolver, idGen IDGenerator) (*RestoreLayoutOutput, error) {
	if snapshot == nil {
		return nil, ErrInvalidSnapshot
	}
	if snapshot.Version > entity.LayoutSnapshotVersion {
		return nil, fmt.Errorf("layout %q version %d: %w", snapshot.Name, snapshot.Version, ErrUnsupportedSnapshot)
	}
	if idGen == nil {
		return nil, fmt.Errorf("build layout: id generator required")
	}

	b := &layoutBuilder{resolve: resolve, idGen: idGen}
	node, err := b.build(snapshot.Root)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", snapshot.Name, err)
	}
	return &RestoreLayoutOutput{Snapshot: snapshot, Node: node, Containers: b.containers}, nil
}

type layoutBuilder struct {
	resolve    ContentResolver
	idGen      IDGenerator
	containers []*entity.TabContainer
}

func (b *layoutBuilder) build(snap entity.NodeSnapshot) (entity.Node, error) {
	switch snap.Kind {
	case entity.KindTabs.String():
		return b.buildTabs(snap)
	case entity.KindSplit.String():
		return b.buildSplit(snap)
	default:
		return nil, fmt.Errorf("node kind %q: %w", snap.Kind, ErrInvalidSnapshot)
	}
}

func (b *layoutBuilder) buildTabs(snap entity.NodeSnapshot) (entity.Node, error) {
	policy, err := entity.ParseClosingPolicy(snap.ClosingPolicy)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidSnapshot)
	}

	c := entity.NewTabContainer(entity.ContainerID(b.idGen()))
	c.Scope = snap.Scope
	c.CloseIfEmpty = snap.CloseIfEmpty
	c.ClosingPolicy = policy

	for _, ts := range snap.Tabs {
		var content any
		if b.resolve != nil {
			content = b.resolve(ts.Title)
		}
		tab := entity.NewTab(entity.TabID(b.idGen()), ts.Title, content)
		tab.SetDetachable(ts.Detachable)
		if err := c.Append(tab); err != nil {
			return nil, err
		}
	}
	if sel := c.TabAt(snap.Selected); sel != nil {
		_ = c.Select(sel)
	}

	b.containers = append(b.containers, c)
	return c, nil
}

func (b *layoutBuilder) buildSplit(snap entity.NodeSnapshot) (entity.Node, error) {
	orientation, err := entity.ParseOrientation(snap.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidSnapshot)
	}
	if len(snap.Children) < 2 {
		return nil, fmt.Errorf("split with %d children: %w", len(snap.Children), ErrInvalidSnapshot)
	}

	children := make([]entity.Node, 0, len(snap.Children))
	for _, child := range snap.Children {
		node, err := b.build(child)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}

	split := entity.NewSplitContainer(entity.SplitID(b.idGen()), orientation, children...)
	if len(snap.Dividers) > 0 {
		if err := split.SetDividers(snap.Dividers); err != nil {
			return nil, fmt.Errorf("split %s: %w", split.ID, ErrInvalidSnapshot)
		}
	}
	return split, nil
}
