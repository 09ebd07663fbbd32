package rotdecoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompressor(t *testing.T) {
	for _, mode := range []string{"", "none", "no", "false"} {
		c, err := NewCompressor(mode)
		require.NoError(t, err)
		assert.IsType(t, &NoOpCompressor{}, c)
	}

	c, err := NewCompressor("zstd")
	require.NoError(t, err)
	assert.IsType(t, &ZstdCompressor{}, c)

	_, err = NewCompressor("gzip")
	assert.Error(t, err)
}

func TestZstdCompressor(t *testing.T) {
	c := NewZstdCompressor()
	in := []byte(strings.Repeat("col", 100))

	compressed := c.Compress(in)
	assert.Equal(t, zstdFrameMagic, compressed[:4])

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = c.Decompress([]byte("col"))
	require.NoError(t, err)
	assert.Equal(t, []byte("col"), out)
}

func TestEncode_Compressed(t *testing.T) {
	c := NewZstdCompressor()

	result, err := Decode(Encode(c.Compress([]byte("hello"))))
	require.NoError(t, err)

	out, err := c.Decompress(result.Decoded)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestIsZstdFrame(t *testing.T) {
	assert.False(t, isZstdFrame(nil))
	assert.False(t, isZstdFrame(zstdFrameMagic))
	assert.False(t, isZstdFrame([]byte("col")))
	assert.True(t, isZstdFrame(NewZstdCompressor().Compress([]byte("col"))))
}
