package render

import (
	"fmt"

	"github.com/streamingfast/rotdecoder"
)

var _ rotdecoder.Renderer = (*ZstdRenderer)(nil)

// ZstdRenderer decompresses zstd framed payloads and renders the result as
// text. Payloads without a zstd frame header are rendered directly.
type ZstdRenderer struct {
	compressor rotdecoder.Compressor
	text       *TextRenderer
}

func NewZstdRenderer() *ZstdRenderer {
	return &ZstdRenderer{
		compressor: rotdecoder.NewZstdCompressor(),
		text:       &TextRenderer{},
	}
}

func (z *ZstdRenderer) Render(data []byte) string {
	out, err := z.compressor.Decompress(data)
	if err != nil {
		return fmt.Sprintf("Error decompressing zstd payload: %s", err)
	}

	return z.text.Render(out)
}
