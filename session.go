package rotdecoder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

const (
	Prompt          = "Enter the encoded string to decode:"
	NoInputProvided = "No input provided."
)

type Renderer interface {
	Render(data []byte) string
}

// RunSession prompts on out, reads a single line from in, decodes it and
// prints every step. Decoding failures are part of the printed output, only
// I/O errors are returned. `in` is closed after the read when it is an
// io.Closer.
func RunSession(in io.Reader, out io.Writer, renderer Renderer, opts ...Option) error {
	o := newOptions(opts)

	w := &errWriter{w: out}
	w.println(Prompt)

	line, found, err := readLine(in, o.logger)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if !found || isBlank(line) {
		w.println(NoInputProvided)
		return w.err
	}

	w.println("")
	w.println("Decoding steps:")
	w.println("1. Applying reverse rotation to input string...")

	result, err := Decode(line, opts...)
	var decodeErr *DecodeError
	if err != nil && !errors.As(err, &decodeErr) {
		o.logger.Warn("input rejected", zap.Error(err))
		w.printf("   Input rejected: %s\n", err)
		w.println("")
		w.println("--- Final Decoded Message ---")
		w.println(MessageDecodingFailed)
		w.println("-----------------------------")
		return w.err
	}

	w.printf("   Resulting (should-be) Hex: %s\n", result.Intermediate)
	w.println("2. Decoding the hex string to text...")

	message := ""
	if err != nil {
		o.logger.Warn("unable to decode hex string", zap.String("hex", result.Intermediate), zap.Error(err))
		message = ErrorMessage(err)
	} else {
		message = renderer.Render(result.Decoded)
	}

	w.println("")
	w.println("--- Final Decoded Message ---")
	w.println(message)
	w.println("-----------------------------")

	return w.err
}

func readLine(in io.Reader, logger *zap.Logger) (line string, found bool, err error) {
	if closer, ok := in.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Debug("failed to close input", zap.Error(err))
			}
		}()
	}

	line, err = bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

// isBlank treats every control character and the space as blank.
func isBlank(line string) bool {
	return strings.TrimFunc(line, func(r rune) bool { return r <= ' ' }) == ""
}

// errWriter keeps the first write error and skips subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(s string) {
	e.printf("%s\n", s)
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}

	_, e.err = fmt.Fprintf(e.w, format, args...)
}
