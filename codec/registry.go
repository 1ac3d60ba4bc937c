// Copyright 2025 wordpack Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"strings"

	"github.com/pkg/errors"
)

// Canonical strategy identifiers accepted by New.
const (
	NameSimple   = "simple"
	NameAligned  = "aligned"
	NameOverflow = "overflow"
)

// New returns the strategy registered under name, case-insensitively. Only
// the three canonical identifiers are registered; the signed wrappers
// ZigZag and SignSplit are constructed directly.
//
// Example:
//
//	c, err := codec.New("overflow")
func New(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case NameSimple:
		return Simple{}, nil
	case NameAligned:
		return Aligned{}, nil
	case NameOverflow:
		return Overflow{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownStrategy, "%q, available: %s", name, strings.Join(Names(), ", "))
}

// Names returns the canonical strategy identifiers in stable order.
func Names() []string {
	return []string{NameSimple, NameAligned, NameOverflow}
}

// Describe returns a short prose description of the named strategy.
func Describe(name string) (string, error) {
	switch strings.ToLower(name) {
	case NameSimple:
		return "Simple bit packing that allows compressed integers to span across " +
			"consecutive words of the output buffer. Most space-efficient but " +
			"slightly more complex bit operations.", nil
	case NameAligned:
		return "Aligned bit packing that ensures compressed integers never span " +
			"across consecutive words. Faster access but may use more space due " +
			"to alignment constraints; a leading offset word extends it to " +
			"negative input.", nil
	case NameOverflow:
		return "Overflow bit packing that handles outliers efficiently by storing " +
			"large values in a separate overflow area. Optimal for datasets with " +
			"mostly small values and few large outliers.", nil
	}
	return "", errors.Wrapf(ErrUnknownStrategy, "%q, available: %s", name, strings.Join(Names(), ", "))
}
