package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	t.Run("parses a valid descriptor", func(t *testing.T) {
		data := []byte(`{"layers": [
			{"type": "Linear", "name": "fc1", "in_features": 128, "out_features": 10},
			{"type": "ReLU", "name": "act1"}
		]}`)

		desc, err := ParseDescriptor(data)

		require.NoError(t, err)
		require.Len(t, desc.Layers, 2)
		assert.Equal(t, "Linear", desc.Layers[0].Type)
		assert.Equal(t, "fc1", desc.Layers[0].Name)
		assert.Equal(t, float64(128), desc.Layers[0].Attrs["in_features"])
	})

	t.Run("parses an empty layer list", func(t *testing.T) {
		desc, err := ParseDescriptor([]byte(`{"layers": []}`))

		require.NoError(t, err)
		assert.Empty(t, desc.Layers)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseDescriptor(nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedDescriptor))
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := ParseDescriptor([]byte(`{"layers": [`))

		assert.True(t, errors.Is(err, ErrMalformedDescriptor))
	})

	t.Run("rejects descriptor without layers key", func(t *testing.T) {
		_, err := ParseDescriptor([]byte(`{"modules": []}`))

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedDescriptor))
		assert.Contains(t, err.Error(), "missing layers key")
	})

	t.Run("rejects entry without a type tag", func(t *testing.T) {
		data := []byte(`{"layers": [
			{"type": "Linear", "name": "fc1"},
			{"name": "fc2"}
		]}`)

		_, err := ParseDescriptor(data)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedDescriptor))
		assert.Contains(t, err.Error(), "layer 1")
	})

	t.Run("rejects a top-level list", func(t *testing.T) {
		_, err := ParseDescriptor([]byte(`[{"type": "Linear"}]`))

		assert.True(t, errors.Is(err, ErrMalformedDescriptor))
	})
}
