package postgres

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Skills columns scan through pq.Array, which only understands the text
// array format. The pool forces the simple query protocol so results
// arrive that way; these pin down both sides of that contract.
func TestSkillsArrayScan(t *testing.T) {
	t.Run("Should parse a text format array", func(t *testing.T) {
		var skills []string
		require.NoError(t, pq.Array(&skills).Scan([]byte(`{Go,SQL}`)))

		assert.Equal(t, []string{"Go", "SQL"}, skills)
	})

	t.Run("Should parse an empty array", func(t *testing.T) {
		var skills []string
		require.NoError(t, pq.Array(&skills).Scan([]byte(`{}`)))

		assert.Empty(t, skills)
	})

	t.Run("Should reject a binary format payload", func(t *testing.T) {
		var skills []string
		assert.Error(t, pq.Array(&skills).Scan([]byte{0x00, 0x00, 0x00, 0x01}))
	})
}
