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

// Compact-size varints encode a non-negative integer as either a single
// literal byte below 0xfd or a tag byte selecting a little-endian
// payload: 0xfd + 2 bytes, 0xfe + 4 bytes, 0xff + 8 bytes. Each value
// has exactly one admissible encoding; decoders reject the rest.

const (
	varintTag16 = 0xfd
	varintTag32 = 0xfe
	varintTag64 = 0xff
)

// MaxVarintLen is the longest compact-size encoding: a tag byte plus an
// 8-byte payload.
const MaxVarintLen = 9

// ReadVarint decodes a compact-size varint at off, returning the value
// and the number of bytes consumed. Non-minimal encodings fault with
// ErrKindOutOfRange, as do 9-byte values past MaxSafeInt (use
// ReadVarintBig for those).
func ReadVarint(data []byte, off int) (uint64, int, error) {
	tag, err := ReadU8(data, off)
	if err != nil {
		return 0, 0, err
	}
	switch tag {
	case varintTag64:
		v, err := ReadU64(data, off+1)
		if err != nil {
			return 0, 0, err
		}
		if v <= 0xffffffff {
			return 0, 0, OutOfRangeErrorf("non-canonical varint: 9-byte encoding of %d", v)
		}
		return v, 9, nil
	case varintTag32:
		v, err := ReadU32(data, off+1)
		if err != nil {
			return 0, 0, err
		}
		if v <= 0xffff {
			return 0, 0, OutOfRangeErrorf("non-canonical varint: 5-byte encoding of %d", v)
		}
		return uint64(v), 5, nil
	case varintTag16:
		v, err := ReadU16(data, off+1)
		if err != nil {
			return 0, 0, err
		}
		if v < varintTag16 {
			return 0, 0, OutOfRangeErrorf("non-canonical varint: 3-byte encoding of %d", v)
		}
		return uint64(v), 3, nil
	default:
		return uint64(tag), 1, nil
	}
}

// WriteVarint encodes v as a minimal compact-size varint at off and
// returns the offset just past it. Values above MaxSafeInt fault; use
// WriteVarintBig for the full 64-bit range.
func WriteVarint(data []byte, v uint64, off int) (int, error) {
	if v > MaxSafeInt {
		return 0, OutOfRangeErrorf("value %d exceeds safe integer range", v)
	}
	switch {
	case v < varintTag16:
		if err := checkBounds(data, off, 1); err != nil {
			return 0, err
		}
		data[off] = byte(v)
		return off + 1, nil
	case v <= 0xffff:
		if err := checkBounds(data, off, 3); err != nil {
			return 0, err
		}
		data[off] = varintTag16
		return WriteU16(data, uint16(v), off+1)
	case v <= 0xffffffff:
		if err := checkBounds(data, off, 5); err != nil {
			return 0, err
		}
		data[off] = varintTag32
		return WriteU32(data, uint32(v), off+1)
	default:
		if err := checkBounds(data, off, 9); err != nil {
			return 0, err
		}
		data[off] = varintTag64
		return WriteU64(data, v, off+1)
	}
}

// SkipVarint returns the offset just past the compact-size varint at
// off, using only the tag byte.
func SkipVarint(data []byte, off int) (int, error) {
	tag, err := ReadU8(data, off)
	if err != nil {
		return 0, err
	}
	var size int
	switch tag {
	case varintTag64:
		size = 9
	case varintTag32:
		size = 5
	case varintTag16:
		size = 3
	default:
		size = 1
	}
	if err := checkBounds(data, off, size); err != nil {
		return 0, err
	}
	return off + size, nil
}

// SizeVarint returns the encoded length of v as a compact-size varint.
func SizeVarint(v uint64) int {
	switch {
	case v < varintTag16:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
