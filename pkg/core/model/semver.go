// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer represents a released semantic version, consisting of three
// components. The first component is the major version; incrementing
// it represents backward-incompatible changes. The second component is
// the minor version which represents backward compatible feature
// additions. The last component is the patch version, representing
// internal changes which are invisible at the API level.
// The configuration adapter versions its file format with it.
type SemVer [3]uint

// UnmarshalText deserializes a text byte slice as a string consisting
// of up to three dot-separated numbers and fills the sv SemVer
// instance. In case of errors, sv will be left unchanged.
func (sv *SemVer) UnmarshalText(text []byte) (err error) {
	p := strings.Split(string(text), ".")
	l := len(p)
	if l == 0 || l > 3 {
		return fmt.Errorf("the %q has wrong number of components", text)
	}
	var v [3]int
	for i := 0; i < l; i++ {
		v[i], err = strconv.Atoi(p[i])
		if err != nil {
			return fmt.Errorf("the %q component is not numeric", p[i])
		}
		if v[i] < 0 {
			return fmt.Errorf("the %q component is negative", p[i])
		}
	}
	(*sv)[0] = uint(v[0])
	(*sv)[1] = uint(v[1])
	(*sv)[2] = uint(v[2])
	return nil
}

// Marshal serializes the sv semantic version as its string
// representation, as required for YAML serialization.
func (sv *SemVer) Marshal() string {
	return sv.String()
}

// MarshalText implements the encoding.TextMarshaler interface and
// serializes sv as its string representation.
func (sv *SemVer) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

// String returns the sv semantic version as a dot-separated string
// consisting of three non-negative numbers like major.minor.patch.
func (sv SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", sv[0], sv[1], sv[2])
}

// MismatchingSemVerError indicates an error condition where a specific
// semantic version was expected, but another version was present, for
// example when loading a configuration file written for an unsupported
// format version. The first element is the expected version and the
// second element is the actual version.
type MismatchingSemVerError [2]SemVer

// Error returns a string representation of the msve error instance,
// causing *MismatchingSemVerError to implement the error interface.
func (msve *MismatchingSemVerError) Error() string {
	expected := (*msve)[0]
	actual := (*msve)[1]
	return fmt.Sprintf(
		"expected v%s, but got v%s", expected.String(), actual.String(),
	)
}
