package id

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSortable(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = NewAt(time.Now())
	}
	assert.True(t, sort.StringsAreSorted(ids))

	seen := map[string]bool{}
	for _, s := range ids {
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
		assert.True(t, Valid(s))
	}
}

func TestNewAtTime(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	s := NewAt(at)

	got, err := Time(s)
	require.NoError(t, err)
	assert.True(t, got.Equal(at), "got %v want %v", got, at)
}

func TestTimeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Time("not-a-ulid")
	assert.Error(t, err)
	assert.False(t, Valid(""))
}
