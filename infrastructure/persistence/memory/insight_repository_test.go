package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightapi/domain/analysis"
	"insightapi/domain/insight"
	pkgerrors "insightapi/pkg/errors"
)

func newInsight(t *testing.T, userID, desc string) *insight.Insight {
	t.Helper()
	req, err := analysis.NewRequest(desc, analysis.ModeStartup, analysis.KindSWOT)
	require.NoError(t, err)
	record := analysis.Record{Strengths: []string{"something good"}}
	ins, err := insight.New("", userID, req, record, analysis.DeriveChartSeries(record))
	require.NoError(t, err)
	return ins
}

func TestSaveAndGetByID(t *testing.T) {
	repo := NewInsightRepository()
	ctx := context.Background()

	ins := newInsight(t, "user-1", "A food truck serving regional specialties.")
	require.NoError(t, repo.Save(ctx, ins))

	got, err := repo.GetByID(ctx, "user-1", ins.ID)
	require.NoError(t, err)
	assert.Equal(t, ins.ID, got.ID)
	assert.Equal(t, ins.Record, got.Record)
	assert.Equal(t, ins.Request, got.Request)
}

func TestGetByID_WrongUserIsNotFound(t *testing.T) {
	repo := NewInsightRepository()
	ctx := context.Background()

	ins := newInsight(t, "user-1", "A food truck serving regional specialties.")
	require.NoError(t, repo.Save(ctx, ins))

	_, err := repo.GetByID(ctx, "user-2", ins.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestListByUser_PreservesStoreOrder(t *testing.T) {
	repo := NewInsightRepository()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		ins := newInsight(t, "user-1", fmt.Sprintf("Business description number %d here.", i))
		require.NoError(t, repo.Save(ctx, ins))
		ids = append(ids, ins.ID)
	}

	insights, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, insights, 5)
	for i, ins := range insights {
		assert.Equal(t, ids[i], ins.ID)
	}
}

func TestListByUser_EmptyForUnknownUser(t *testing.T) {
	repo := NewInsightRepository()

	insights, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestDelete_RemovesOnlyTargetInsight(t *testing.T) {
	repo := NewInsightRepository()
	ctx := context.Background()

	first := newInsight(t, "user-1", "First saved business description here.")
	second := newInsight(t, "user-1", "Second saved business description here.")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	require.NoError(t, repo.Delete(ctx, "user-1", first.ID))

	insights, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, second.ID, insights[0].ID)
}

func TestDelete_MissingIsNotFound(t *testing.T) {
	repo := NewInsightRepository()

	err := repo.Delete(context.Background(), "user-1", "does-not-exist")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestDelete_ForeignUserIsNotFound(t *testing.T) {
	repo := NewInsightRepository()
	ctx := context.Background()

	ins := newInsight(t, "user-1", "A business that belongs to user one.")
	require.NoError(t, repo.Save(ctx, ins))

	err := repo.Delete(ctx, "user-2", ins.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))

	// Still present for the owner.
	_, err = repo.GetByID(ctx, "user-1", ins.ID)
	assert.NoError(t, err)
}
