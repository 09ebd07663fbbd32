package render

import (
	"fmt"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"github.com/streamingfast/rotdecoder"
)

var _ rotdecoder.Renderer = (*ProtoRenderer)(nil)

// ProtoRenderer prints a decoded message that carries a serialized protobuf
// payload as JSON. It is selected with
// `proto:///path/to/file.proto@<full_qualified_message_type>`.
type ProtoRenderer struct {
	messageDescriptor *desc.MessageDescriptor
	messageType       string
}

func (p *ProtoRenderer) Render(payload []byte) string {
	msg := dynamic.NewMessageFactoryWithDefaults().NewDynamicMessage(p.messageDescriptor)
	if err := msg.Unmarshal(payload); err != nil {
		return fmt.Sprintf("Error unmarshalling decoded payload into %s: %s", p.messageType, err)
	}

	cnt, err := msg.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Error marshalling %s to json: %s", p.messageType, err)
	}
	return string(cnt)
}

func parseProtoScheme(scheme string) (protoPath, messageType string, err error) {
	invalid := fmt.Errorf("invalid proto renderer scheme %q, expect proto:///path/to/file.proto@<full_qualified_message_type>", scheme)

	location := strings.TrimPrefix(scheme, "proto://")
	if location == scheme {
		return "", "", invalid
	}

	protoPath, messageType, found := strings.Cut(location, "@")
	if !found || protoPath == "" || messageType == "" {
		return "", "", invalid
	}
	return protoPath, messageType, nil
}

func newProtoRenderer(scheme string) (*ProtoRenderer, error) {
	protoPath, messageType, err := parseProtoScheme(scheme)
	if err != nil {
		return nil, err
	}

	parser := &protoparse.Parser{
		ImportPaths:           []string{},
		IncludeSourceCodeInfo: true,
	}

	files, err := parser.ParseFiles(protoPath)
	if err != nil {
		return nil, fmt.Errorf("parse proto file %q: %w", protoPath, err)
	}
	if len(files) != 1 {
		return nil, fmt.Errorf("expected 1 proto file descriptor, got %d", len(files))
	}

	messageDescriptor := files[0].FindMessage(messageType)
	if messageDescriptor == nil {
		return nil, fmt.Errorf("message type %q not found in %q", messageType, protoPath)
	}

	return &ProtoRenderer{
		messageType:       messageType,
		messageDescriptor: messageDescriptor,
	}, nil
}
