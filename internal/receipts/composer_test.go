package receipts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dporg/internal/common"
)

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	return NewComposer(filepath.Join(t.TempDir(), "receipts"), "")
}

func fixClock(t *testing.T, ts time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = orig })
}

func TestCompose_WritesPDFAtDeterministicPath(t *testing.T) {
	c := newTestComposer(t)
	fixClock(t, time.Date(2024, 6, 15, 9, 30, 45, 0, time.UTC))

	path, err := c.Compose(context.Background(), "Ana Maria", []string{"files/f1.txt"}, 10, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, c.Path("Ana_Maria_20240615_093045.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCompose_SameSecondOverwrites(t *testing.T) {
	c := newTestComposer(t)
	fixClock(t, time.Date(2024, 6, 15, 9, 30, 45, 0, time.UTC))
	ctx := context.Background()

	first, err := c.Compose(ctx, "Ana", []string{"f1.txt"}, 10, 0, 0)
	require.NoError(t, err)
	second, err := c.Compose(ctx, "Ana", []string{"f1.txt", "f2.txt"}, 10, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	names, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestCompose_Validation(t *testing.T) {
	c := newTestComposer(t)
	ctx := context.Background()

	_, err := c.Compose(ctx, "  ", []string{"f.txt"}, 10, 0, 0)
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = c.Compose(ctx, "Ana", []string{"f.txt"}, -1, 0, 0)
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = c.Compose(ctx, "Ana", []string{"f.txt"}, 10, 0, -5)
	require.ErrorIs(t, err, common.ErrorValidation)

	// nothing was written
	names, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCompose_ZeroAmounts(t *testing.T) {
	c := newTestComposer(t)
	fixClock(t, time.Date(2024, 6, 15, 9, 30, 45, 0, time.UTC))

	path, err := c.Compose(context.Background(), "Ana", nil, 0, 0, 0)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestReceiptNumberFormat(t *testing.T) {
	ts := time.Date(2024, 6, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "R-20240615-093045", receiptNumber(ts))
}

func TestMoney_TwoDecimalPlaces(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{10, "$10.00"},
		{2.5, "$2.50"},
		{19.999, "$20.00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, money(tc.in))
	}
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Ana_Maria_Silva", safeName("Ana Maria Silva"))
	assert.Equal(t, "Bob", safeName("Bob"))
}

func TestList_RemoveLifecycle(t *testing.T) {
	c := newTestComposer(t)
	fixClock(t, time.Date(2024, 6, 15, 9, 30, 45, 0, time.UTC))
	ctx := context.Background()

	path, err := c.Compose(ctx, "Ana", []string{"f.txt"}, 5, 0, 0)
	require.NoError(t, err)

	names, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Base(path)}, names)

	require.NoError(t, c.Remove(ctx, filepath.Base(path)))

	names, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	// removing again is a no-op
	require.NoError(t, c.Remove(ctx, filepath.Base(path)))
}

func TestList_MissingFolderIsEmpty(t *testing.T) {
	c := newTestComposer(t)

	names, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
