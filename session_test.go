package rotdecoder

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringRenderer struct{}

func (stringRenderer) Render(data []byte) string { return string(data) }

func TestRunSession(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		opts     []Option
		expected string
	}{
		{
			name:     "no line",
			in:       "",
			expected: Prompt + "\n" + NoInputProvided + "\n",
		},
		{
			name:     "empty line",
			in:       "\n",
			expected: Prompt + "\n" + NoInputProvided + "\n",
		},
		{
			name:     "whitespace only",
			in:       "   \t\n",
			expected: Prompt + "\n" + NoInputProvided + "\n",
		},
		{
			name:     "control characters only",
			in:       "\x01\x1f \n",
			expected: Prompt + "\n" + NoInputProvided + "\n",
		},
		{
			name:     "documented example",
			in:       "636z6w\n",
			expected: sessionOutput("636f6c", "col"),
		},
		{
			name:     "windows line ending",
			in:       "636z6w\r\n",
			expected: sessionOutput("636f6c", "col"),
		},
		{
			name:     "no trailing newline",
			in:       "636z6w",
			expected: sessionOutput("636f6c", "col"),
		},
		{
			name:     "line longer than 64KiB",
			in:       Encode([]byte(strings.Repeat("x", 40000))) + "\n",
			expected: sessionOutput(strings.Repeat("78", 40000), strings.Repeat("x", 40000)),
		},
		{
			name:     "only first line is read",
			in:       "636z6w\n7a\n",
			expected: sessionOutput("636f6c", "col"),
		},
		{
			name:     "invalid character after derotation",
			in:       "7a",
			expected: sessionOutput("7g", MessageInvalidCharacter),
		},
		{
			name:     "odd length",
			in:       "636",
			expected: sessionOutput("636", MessageInvalidLength),
		},
		{
			name:     "strict rejects uppercase",
			in:       "636F",
			opts:     []Option{WithStrict()},
			expected: Prompt + "\n" +
				"\nDecoding steps:\n" +
				"1. Applying reverse rotation to input string...\n" +
				"   Input rejected: derotate: unexpected character 'F' at position 3\n" +
				"\n--- Final Decoded Message ---\n" +
				MessageDecodingFailed + "\n" +
				"-----------------------------\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := RunSession(strings.NewReader(test.in), out, stringRenderer{}, test.opts...)
			require.NoError(t, err)
			assert.Equal(t, test.expected, out.String())
		})
	}
}

func sessionOutput(intermediate, message string) string {
	return Prompt + "\n" +
		"\nDecoding steps:\n" +
		"1. Applying reverse rotation to input string...\n" +
		"   Resulting (should-be) Hex: " + intermediate + "\n" +
		"2. Decoding the hex string to text...\n" +
		"\n--- Final Decoded Message ---\n" +
		message + "\n" +
		"-----------------------------\n"
}

type trackingReader struct {
	io.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func TestRunSession_ClosesInput(t *testing.T) {
	for _, in := range []string{"", "636z6w\n", "zz\n"} {
		reader := &trackingReader{Reader: strings.NewReader(in)}
		require.NoError(t, RunSession(reader, io.Discard, stringRenderer{}))
		assert.True(t, reader.closed, "input %q not closed", in)
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunSession_ReadError(t *testing.T) {
	err := RunSession(failingReader{}, io.Discard, stringRenderer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input: broken pipe")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestRunSession_WriteError(t *testing.T) {
	err := RunSession(strings.NewReader("636z6w\n"), failingWriter{}, stringRenderer{})
	require.Error(t, err)
	assert.Equal(t, "closed", err.Error())
}
