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
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

const alphabetSize = 26

// RotationAmount is the shift the obfuscation applied to lowercase letters.
const RotationAmount = 20

// ReverseShift undoes RotationAmount when added modulo 26.
const ReverseShift = (alphabetSize - RotationAmount) % alphabetSize

var ErrUnexpectedCharacter = errors.New("unexpected character")

func shift(b byte, n int) byte {
	if b < 'a' || b > 'z' {
		return b
	}
	return 'a' + (b-'a'+byte(n))%alphabetSize
}

func shiftAll(input string, n int) string {
	out := make([]byte, len(input))
	for i := 0; i < len(input); i++ {
		out[i] = shift(input[i], n)
	}
	return string(out)
}

// Derotate reverses the obfuscation rotation on every lowercase letter of
// input. Digits and any other byte are kept as-is, so the output has the
// same length as input, in bytes.
func Derotate(input string) string {
	return shiftAll(input, ReverseShift)
}

// Rotate applies the obfuscation rotation, it is the inverse of Derotate.
func Rotate(input string) string {
	return shiftAll(input, RotationAmount)
}

// DerotateStrict behaves like Derotate but refuses any byte that is not a
// lowercase letter or a digit. Every offending byte is reported with its
// byte offset.
func DerotateStrict(input string) (string, error) {
	var err error
	for i := 0; i < len(input); i++ {
		b := input[i]
		if ('a' <= b && b <= 'z') || ('0' <= b && b <= '9') {
			continue
		}

		err = multierr.Append(err, fmt.Errorf("%w %q at position %d", ErrUnexpectedCharacter, b, i))
	}
	if err != nil {
		return "", err
	}

	return Derotate(input), nil
}
