package render

import (
	"github.com/mr-tron/base58"
	"github.com/streamingfast/rotdecoder"
)

var _ rotdecoder.Renderer = (*Base58Renderer)(nil)

type Base58Renderer struct {
}

func (h *Base58Renderer) Render(data []byte) string {
	return base58.Encode(data)
}
