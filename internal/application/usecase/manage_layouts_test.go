package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/domain/repository"
	repomocks "github.com/bnema/tabdock/internal/domain/repository/mocks"
)

func TestListLayoutsUseCase_AppliesLimit(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().List(ctx).Return([]repository.LayoutSummary{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	}, nil)

	items, err := usecase.NewListLayoutsUseCase(repo).Execute(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].Name)
}

func TestListLayoutsUseCase_NoLimit(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().List(ctx).Return([]repository.LayoutSummary{{Name: "a"}, {Name: "b"}}, nil)

	items, err := usecase.NewListLayoutsUseCase(repo).Execute(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListLayoutsUseCase_WrapsError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	boom := errors.New("boom")
	repo.EXPECT().List(ctx).Return(nil, boom)

	_, err := usecase.NewListLayoutsUseCase(repo).Execute(ctx, 0)
	assert.ErrorIs(t, err, boom)
}

func TestDeleteLayoutUseCase_Deletes(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().FindByName(ctx, "default").Return(&entity.LayoutSnapshot{Name: "default"}, nil)
	repo.EXPECT().Delete(ctx, "default").Return(nil)

	require.NoError(t, usecase.NewDeleteLayoutUseCase(repo).Execute(ctx, "default"))
}

func TestDeleteLayoutUseCase_Missing(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().FindByName(ctx, "gone").Return(nil, nil)
	repo.EXPECT().List(ctx).Return([]repository.LayoutSummary{{Name: "default"}}, nil)

	err := usecase.NewDeleteLayoutUseCase(repo).Execute(ctx, "gone")
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestDeleteLayoutUseCase_SuggestsClosestName(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().FindByName(ctx, "defualt").Return(nil, nil)
	repo.EXPECT().List(ctx).Return([]repository.LayoutSummary{{Name: "work"}, {Name: "default"}}, nil)

	err := usecase.NewDeleteLayoutUseCase(repo).Execute(ctx, "defualt")
	require.ErrorIs(t, err, usecase.ErrLayoutNotFound)
	assert.Contains(t, err.Error(), `did you mean "default"?`)
}

func TestDeleteLayoutUseCase_SuggestionListFailureIgnored(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().FindByName(ctx, "gone").Return(nil, nil)
	repo.EXPECT().List(ctx).Return(nil, errors.New("db closed"))

	err := usecase.NewDeleteLayoutUseCase(repo).Execute(ctx, "gone")
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
}

func TestDeleteLayoutUseCase_NameRequired(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)

	err := usecase.NewDeleteLayoutUseCase(repo).Execute(testContext(), "")
	assert.Error(t, err)
}

func TestGetRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		at   time.Time
		want string
	}{
		{now, "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-50 * time.Hour), "2d ago"},
		{now.Add(-15 * 24 * time.Hour), "2w ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.GetRelativeTime(tt.at))
	}
}
