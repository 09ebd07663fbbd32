package rotdecoder

import (
	"fmt"

	"go.uber.org/zap"
)

type Option interface {
	apply(o *options)
}

type options struct {
	strict bool
	logger *zap.Logger
}

func newOptions(opts []Option) *options {
	out := &options{logger: zlog}
	for _, opt := range opts {
		opt.apply(out)
	}

	return out
}

type strictOpt struct{}

// WithStrict rejects input characters that are neither lowercase letters nor
// digits instead of passing them through.
func WithStrict() Option {
	return strictOpt{}
}

func (strictOpt) apply(o *options) {
	o.strict = true
}

type loggerOpt struct {
	logger *zap.Logger
}

func WithLogger(logger *zap.Logger) Option {
	return loggerOpt{logger: logger}
}

func (l loggerOpt) apply(o *options) {
	if l.logger != nil {
		o.logger = l.logger
	}
}

type Result struct {
	Encoded      string
	Intermediate string
	Decoded      []byte
}

// Decode derotates encoded and decodes the resulting hex string. When the hex
// decoding fails, the returned Result still carries the intermediate string.
func Decode(encoded string, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	result := &Result{Encoded: encoded}
	if o.strict {
		intermediate, err := DerotateStrict(encoded)
		if err != nil {
			return result, fmt.Errorf("derotate: %w", err)
		}
		result.Intermediate = intermediate
	} else {
		result.Intermediate = Derotate(encoded)
	}

	o.logger.Debug("derotated input",
		zap.String("encoded", encoded),
		zap.String("intermediate", result.Intermediate),
	)

	decoded, err := DecodeHex(result.Intermediate)
	if err != nil {
		return result, err
	}
	result.Decoded = decoded

	o.logger.Debug("decoded hex", zap.Int("byte_count", len(decoded)))
	return result, nil
}

// Encode produces the obfuscated form of plaintext, Decode(Encode(x)) gives x back.
func Encode(plaintext []byte) string {
	return Rotate(EncodeHex(plaintext))
}
