package sentmail

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *CSVRepository {
	t.Helper()
	return NewCSVRepository(filepath.Join(t.TempDir(), "emails.csv"))
}

func TestAdd_List(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Ana", "a@x.com"))
	require.NoError(t, r.Add(ctx, "Bob", "b@x.com"))

	records, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Name: "Ana", Email: "a@x.com"},
		{Name: "Bob", Email: "b@x.com"},
	}, records)
}

func TestAdd_DeduplicatesPair(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Ana", "a@x.com"))
	require.NoError(t, r.Add(ctx, "Ana", "a@x.com"))

	records, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAdd_SameNameDifferentEmailIsKept(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Ana", "a@x.com"))
	require.NoError(t, r.Add(ctx, "Ana", "ana@other.com"))

	records, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestEmailsFor(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Ana", "a@x.com"))
	require.NoError(t, r.Add(ctx, "Bob", "b@x.com"))
	require.NoError(t, r.Add(ctx, "Ana", "ana@other.com"))

	emails, err := r.EmailsFor(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "ana@other.com"}, emails)

	none, err := r.EmailsFor(ctx, "Cid")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestList_MissingStoreIsEmpty(t *testing.T) {
	r := newTestRepo(t)

	records, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
