// Copyright 2019 dfuse Platform Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rotdecoder

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidLength    = errors.New("hex string length must be even")
	ErrInvalidCharacter = errors.New("invalid character found in hex string")
	ErrDecodingFailed   = errors.New("hex decoding failed")
)

const (
	MessageInvalidLength    = "[Error: Invalid Hex Length]"
	MessageInvalidCharacter = "[Error: Invalid Hex Character]"
	MessageDecodingFailed   = "[Error: Decoding Failed]"
)

// DecodeError is returned by DecodeHex, Kind is one of the Err* sentinels
// above and is what `errors.Is` matches against.
type DecodeError struct {
	Kind   error
	Input  string
	Offset int
	Pair   string
	Cause  error
}

func (e *DecodeError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrInvalidLength):
		return fmt.Sprintf("%s: got %d characters", e.Kind, len(e.Input))
	case e.Cause != nil:
		return fmt.Sprintf("%s: pair %q at offset %d: %s", e.Kind, e.Pair, e.Offset, e.Cause)
	default:
		return fmt.Sprintf("%s: pair %q at offset %d", e.Kind, e.Pair, e.Offset)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}

// H is a shortcut for hex.EncodeToString
var H = hex.EncodeToString

// EncodeHex returns the lowercase hex pairs of data.
func EncodeHex(data []byte) string {
	return H(data)
}

// DecodeHex turns hex pairs back into the bytes they encode. Decoding is all
// or nothing, on failure no bytes are returned.
func DecodeHex(input string) ([]byte, error) {
	if len(input)%2 != 0 {
		return nil, &DecodeError{Kind: ErrInvalidLength, Input: input}
	}

	out := make([]byte, 0, len(input)/2)
	for i := 0; i < len(input); i += 2 {
		pair := input[i : i+2]
		val, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			kind := ErrDecodingFailed
			if errors.Is(err, strconv.ErrSyntax) {
				kind = ErrInvalidCharacter
			}

			return nil, &DecodeError{Kind: kind, Input: input, Offset: i, Pair: pair, Cause: err}
		}

		out = append(out, byte(val))
	}

	return out, nil
}

// B is a shortcut for (must) DecodeHex
func B(s string) []byte {
	out, err := DecodeHex(s)
	if err != nil {
		panic(err)
	}

	return out
}

// ErrorMessage gives the fixed user facing text for a DecodeHex failure.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidLength):
		return MessageInvalidLength
	case errors.Is(err, ErrInvalidCharacter):
		return MessageInvalidCharacter
	default:
		return MessageDecodingFailed
	}
}
