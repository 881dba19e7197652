package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestRender(t *testing.T) {
	records := []Record{
		{ID: "a", Date: "2026-10-13"},
		{ID: "b", Date: "2026-10-15"},
		{ID: "c", Date: "2026-10-14"},
		{ID: "d", Date: "2026-10-15"},
	}

	t.Run("most recent first, ties keep input order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "d", "c", "a"}, ids(Render(records, nil)))
	})

	t.Run("date filter", func(t *testing.T) {
		assert.Equal(t, []string{"b", "d"}, ids(Render(records, strPtr("2026-10-15"))))
	})

	t.Run("no match", func(t *testing.T) {
		got := Render(records, strPtr("2020-01-01"))
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("input untouched", func(t *testing.T) {
		Render(records, nil)
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(records))
	})
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus([]Record{
		{Status: StatusPresent},
		{Status: StatusPresent},
		{Status: StatusAbsent},
	})
	assert.Equal(t, 2, counts[StatusPresent])
	assert.Equal(t, 1, counts[StatusAbsent])

	zero := CountByStatus(nil)
	assert.Equal(t, map[Status]int{StatusPresent: 0, StatusAbsent: 0}, zero)
}
