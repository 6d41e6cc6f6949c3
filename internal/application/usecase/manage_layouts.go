package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/bnema/tabdock/internal/domain/repository"
	"github.com/bnema/tabdock/internal/logging"
)

// ListLayoutsUseCase lists stored layouts.
type ListLayoutsUseCase struct {
	repo repository.LayoutRepository
}

// NewListLayoutsUseCase creates a new ListLayoutsUseCase.
func NewListLayoutsUseCase(repo repository.LayoutRepository) *ListLayoutsUseCase {
	return &ListLayoutsUseCase{repo: repo}
}

// Execute returns up to limit layouts, most recent first. A limit of zero
// or less returns them all.
func (uc *ListLayoutsUseCase) Execute(ctx context.Context, limit int) ([]repository.LayoutSummary, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// DeleteLayoutUseCase removes a stored layout.
type DeleteLayoutUseCase struct {
	repo repository.LayoutRepository
}

// NewDeleteLayoutUseCase creates a new DeleteLayoutUseCase.
func NewDeleteLayoutUseCase(repo repository.LayoutRepository) *DeleteLayoutUseCase {
	return &DeleteLayoutUseCase{repo: repo}
}

// Execute deletes the layout stored under name. Unlike the repository it
// reports a missing layout as ErrLayoutNotFound.
func (uc *DeleteLayoutUseCase) Execute(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	if name == "" {
		return fmt.Errorf("layout name required")
	}
	existing, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("load layout %q: %w", name, err)
	}
	if existing == nil {
		if guess := uc.closestName(ctx, name); guess != "" {
			return fmt.Errorf("layout %q (did you mean %q?): %w", name, guess, ErrLayoutNotFound)
		}
		return fmt.Errorf("layout %q: %w", name, ErrLayoutNotFound)
	}
	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}

	log.Info().Str("layout", name).Msg("layout deleted")
	return nil
}

// closestName returns the stored layout name nearest to name, or "" when
// none is close enough to be a likely typo.
func (uc *DeleteLayoutUseCase) closestName(ctx context.Context, name string) string {
	items, err := uc.repo.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("list layouts for suggestion failed")
		return ""
	}
	limit := max(maxSuggestDistance, len(name)/3)
	best, bestDist := "", limit+1
	for _, item := range items {
		if d := levenshtein.ComputeDistance(name, item.Name); d < bestDist {
			best, bestDist = item.Name, d
		}
	}
	return best
}

const (
	maxSuggestDistance = 2

	hoursPerDay = 24
	daysPerWeek = 7
)

// GetRelativeTime returns a human-readable relative time string.
func GetRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return formatAgo(int(diff.Minutes()), "m")
	case diff < hoursPerDay*time.Hour:
		return formatAgo(int(diff.Hours()), "h")
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return formatAgo(int(diff.Hours()/hoursPerDay), "d")
	default:
		return formatAgo(int(diff.Hours()/hoursPerDay/daysPerWeek), "w")
	}
}

func formatAgo(n int, unit string) string {
	return strconv.Itoa(n) + unit + " ago"
}
