package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pergunu/internal/model"
)

// newFileOnlyCollections returns collections backed only by the flat file,
// the standing mode when no document database is configured.
func newFileOnlyCollections(t *testing.T) *Collections {
	t.Helper()
	file := NewFileStore(filepath.Join(t.TempDir(), "db.json"), "", false)
	return NewCollections(NewMongo("", "pergunu_db"), file)
}

func TestCollection_AllEmptyIsNotNil(t *testing.T) {
	cols := newFileOnlyCollections(t)

	news, err := cols.News.All(context.Background())
	require.NoError(t, err)
	require.NotNil(t, news)
	require.Empty(t, news)
}

func TestCollection_ReplaceThenAll(t *testing.T) {
	cols := newFileOnlyCollections(t)
	ctx := context.Background()

	in := []model.Application{
		{ID: "a1", FullName: "Siti", Email: "siti@example.com", Status: model.ApplicationPending},
		{ID: "a2", FullName: "Budi", Email: "budi@example.com", Status: model.ApplicationApproved},
	}
	require.NoError(t, cols.Applications.Replace(ctx, in))

	got, err := cols.Applications.All(ctx)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestCollection_ReplaceIsIsolatedPerCollection(t *testing.T) {
	cols := newFileOnlyCollections(t)
	ctx := context.Background()

	require.NoError(t, cols.News.Replace(ctx, []model.News{{ID: "n1"}}))
	require.NoError(t, cols.Beasiswa.Replace(ctx, []model.Beasiswa{{ID: "b1"}}))

	news, err := cols.News.All(ctx)
	require.NoError(t, err)
	require.Len(t, news, 1)

	beasiswa, err := cols.Beasiswa.All(ctx)
	require.NoError(t, err)
	require.Len(t, beasiswa, 1)
	require.Equal(t, "b1", beasiswa[0].ID)
}

func TestCollections_Counts(t *testing.T) {
	cols := newFileOnlyCollections(t)
	ctx := context.Background()

	require.NoError(t, cols.Users.Replace(ctx, []model.User{{ID: "u1"}, {ID: "u2"}}))
	require.NoError(t, cols.News.Replace(ctx, []model.News{{ID: "n1"}}))

	counts := cols.Counts(ctx)
	require.Equal(t, 2, counts[ColUsers])
	require.Equal(t, 1, counts[ColNews])
	require.Equal(t, 0, counts[ColBeasiswa])
	require.NotContains(t, counts, ColSessions)
}
