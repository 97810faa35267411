package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	type payload struct {
		Keys []string `json:"keys"`
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			in := payload{Keys: []string{"a", "b", "c"}}
			b, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCrossCompatible(t *testing.T) {
	// The two built-in codecs are wire compatible.
	b, err := GoJSON{}.Marshal([]int{1, 2, 3})
	require.NoError(t, err)

	var out []int
	require.NoError(t, JSON{}.Unmarshal(b, &out))
	assert.Equal(t, []int{1, 2, 3}, out)
}
