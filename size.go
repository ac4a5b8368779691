// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package wireint

import "unicode/utf16"

// StringEncoding selects the byte encoding the var-string helpers
// measure and transcode with. The zero value is UTF8.
type StringEncoding uint8

const (
	// UTF8 stores the string bytes as-is.
	UTF8 StringEncoding = iota
	// Latin1 stores one byte per rune; runes above U+00FF have no
	// Latin-1 form and fault on encode.
	Latin1
	// UTF16LE stores little-endian UTF-16 code units, two bytes each,
	// four for runes outside the basic multilingual plane.
	UTF16LE
)

// EncodedLen returns the number of bytes s occupies under enc without
// encoding it.
func EncodedLen(s string, enc StringEncoding) (int, error) {
	switch enc {
	case UTF8:
		return len(s), nil
	case Latin1:
		n := 0
		for _, r := range s {
			if r > 0xff {
				return 0, OutOfRangeErrorf("rune %q has no latin-1 encoding", r)
			}
			n++
		}
		return n, nil
	case UTF16LE:
		n := 0
		for _, r := range s {
			if r >= 0x10000 {
				n += 4 // surrogate pair
			} else {
				n += 2
			}
		}
		return n, nil
	default:
		return 0, OutOfRangeErrorf("invalid string encoding: %d", enc)
	}
}

// encodeString converts s to its byte form under enc.
func encodeString(s string, enc StringEncoding) ([]byte, error) {
	switch enc {
	case UTF8:
		return []byte(s), nil
	case Latin1:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0xff {
				return nil, OutOfRangeErrorf("rune %q has no latin-1 encoding", r)
			}
			out = append(out, byte(r))
		}
		return out, nil
	case UTF16LE:
		u16s := utf16.Encode([]rune(s))
		out := make([]byte, len(u16s)*2)
		for i, u := range u16s {
			out[i*2] = byte(u)
			out[i*2+1] = byte(u >> 8)
		}
		return out, nil
	default:
		return nil, OutOfRangeErrorf("invalid string encoding: %d", enc)
	}
}

// decodeString is the inverse of encodeString.
func decodeString(data []byte, enc StringEncoding) (string, error) {
	switch enc {
	case UTF8:
		return string(data), nil
	case Latin1:
		runes := make([]rune, len(data))
		for i, b := range data {
			runes[i] = rune(b)
		}
		return string(runes), nil
	case UTF16LE:
		if len(data)%2 != 0 {
			return "", OutOfRangeErrorf("utf-16 payload length %d is odd", len(data))
		}
		u16s := make([]uint16, len(data)/2)
		for i := 0; i < len(data); i += 2 {
			u16s[i/2] = uint16(data[i]) | uint16(data[i+1])<<8
		}
		return string(utf16.Decode(u16s)), nil
	default:
		return "", OutOfRangeErrorf("invalid string encoding: %d", enc)
	}
}

// SizeVarlen returns the total encoded size of a length-prefixed
// payload of n bytes: the compact-size prefix plus the payload.
func SizeVarlen(n int) int {
	return SizeVarint(uint64(n)) + n
}

// SizeVarBytes returns the total encoded size of b as a
// length-prefixed payload.
func SizeVarBytes(b []byte) int {
	return SizeVarlen(len(b))
}

// SizeVarString returns the total encoded size of s as a
// length-prefixed string under enc.
func SizeVarString(s string, enc StringEncoding) (int, error) {
	n, err := EncodedLen(s, enc)
	if err != nil {
		return 0, err
	}
	return SizeVarlen(n), nil
}
