package render

import (
	"strings"

	"github.com/streamingfast/rotdecoder"
)

var _ rotdecoder.Renderer = (*TextRenderer)(nil)

// TextRenderer maps every byte to the character of the same code point, so
// ASCII comes out as-is and bytes above 0x7f show up as Latin-1.
type TextRenderer struct {
}

func (t *TextRenderer) Render(data []byte) string {
	sb := &strings.Builder{}
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

var _ rotdecoder.Renderer = (*UTF8Renderer)(nil)

type UTF8Renderer struct {
}

func (u *UTF8Renderer) Render(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
