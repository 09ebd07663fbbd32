package rotdecoder

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compressor shrinks a plaintext message before `Encode` obfuscates it, and
// expands the bytes recovered by `Decode` back into the message.
type Compressor interface {
	Compress(message []byte) []byte
	Decompress(payload []byte) ([]byte, error)
}

// NewCompressor maps the `--compression` flag of the encode command to a
// Compressor, plain messages are the default.
func NewCompressor(mode string) (Compressor, error) {
	switch mode {
	case "", "none", "false", "no":
		return NewNoOpCompressor(), nil
	case "zstd":
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression value %q, use 'zstd' or 'none' (by default)", mode)
	}
}

// NoOpCompressor leaves messages as typed.
type NoOpCompressor struct{}

func NewNoOpCompressor() *NoOpCompressor {
	return &NoOpCompressor{}
}

func (NoOpCompressor) Compress(message []byte) []byte {
	return message
}

func (NoOpCompressor) Decompress(payload []byte) ([]byte, error) {
	return payload, nil
}

// ZstdCompressor wraps a message in a single zstd frame. Decoded payloads
// that are not a zstd frame are treated as an uncompressed message.
type ZstdCompressor struct {
	dec *zstd.Decoder
	enc *zstd.Encoder
}

func NewZstdCompressor() *ZstdCompressor {
	enc, _ := zstd.NewWriter(nil) // Errors only on failed `opts` application
	dec, _ := zstd.NewReader(nil)
	return &ZstdCompressor{
		dec: dec,
		enc: enc,
	}
}

func (c *ZstdCompressor) Compress(message []byte) []byte {
	return c.enc.EncodeAll(message, nil)
}

var zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

func isZstdFrame(payload []byte) bool {
	return len(payload) > len(zstdFrameMagic) && bytes.HasPrefix(payload, zstdFrameMagic)
}

func (c *ZstdCompressor) Decompress(payload []byte) ([]byte, error) {
	if !isZstdFrame(payload) {
		return payload, nil
	}

	message, err := c.dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress zstd frame of %d bytes: %w", len(payload), err)
	}
	return message, nil
}
