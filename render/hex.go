package render

import "github.com/streamingfast/rotdecoder"

var _ rotdecoder.Renderer = (*HexRenderer)(nil)

type HexRenderer struct {
}

func (h *HexRenderer) Render(data []byte) string {
	return rotdecoder.EncodeHex(data)
}
