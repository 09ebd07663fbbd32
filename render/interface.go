package render

import (
	"fmt"
	"strings"

	"github.com/streamingfast/rotdecoder"
)

const DefaultScheme = "text"

// New returns the renderer for scheme. Supported schemes are 'text', 'utf8',
// 'hex', 'base58', 'zstd' and 'proto:///path/to/file.proto@<message_type>'.
func New(scheme string) (rotdecoder.Renderer, error) {
	switch scheme {
	case "", "text":
		return &TextRenderer{}, nil
	case "utf8":
		return &UTF8Renderer{}, nil
	case "hex":
		return &HexRenderer{}, nil
	case "base58":
		return &Base58Renderer{}, nil
	case "zstd":
		return NewZstdRenderer(), nil
	}

	if strings.HasPrefix(scheme, "proto") {
		renderer, err := newProtoRenderer(scheme)
		if err != nil {
			return nil, fmt.Errorf("proto renderer: %w", err)
		}
		return renderer, nil
	}

	return nil, fmt.Errorf("unknown rendering scheme %q", scheme)
}
