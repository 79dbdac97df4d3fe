package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTolerant(t *testing.T) {
	t.Parallel()

	t.Run("parses strict JSON as-is", func(t *testing.T) {
		t.Parallel()

		v, ok := parseTolerant(`{"a": 1}`)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"a": 1.0}, v)
	})

	t.Run("strips line and block comments", func(t *testing.T) {
		t.Parallel()

		v, ok := parseTolerant("{\n  // the command\n  \"command\": \"python\" /* inline */\n}")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"command": "python"}, v)
	})

	t.Run("strips ellipsis tokens and trailing commas", func(t *testing.T) {
		t.Parallel()

		v, ok := parseTolerant("{\n  \"args\": [\"x\",],\n  ...\n}")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"args": []any{"x"}}, v)
	})

	t.Run("repairs relaxed syntax", func(t *testing.T) {
		t.Parallel()

		v, ok := parseTolerant(`{command: 'python'}`)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"command": "python"}, v)
	})

	t.Run("reports failure without error", func(t *testing.T) {
		t.Parallel()

		_, ok := parseTolerant(`<<not even close>>`)
		assert.False(t, ok)
	})

	t.Run("agrees with strict parsing on valid input", func(t *testing.T) {
		t.Parallel()

		text := `{"weather": {"command": "python", "args": ["weather.py"]}}`
		strict, ok := parseStrict(text)
		require.True(t, ok)
		tolerant, ok := parseTolerant(text)
		require.True(t, ok)

		assert.Equal(t, strict, tolerant)
	})
}
