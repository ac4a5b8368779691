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

import "encoding/binary"

// MaxSafeInt is the largest magnitude the native paths produce or accept.
// Consumers that mirror decoded values into IEEE 754 doubles (scripting
// runtimes, JSON pipelines) stay exact up to this bound; anything larger
// must go through the *Big variants.
const MaxSafeInt = 1<<53 - 1

// checkBounds validates that n bytes at off lie inside data.
func checkBounds(data []byte, off, n int) error {
	if off < 0 || len(data)-off < n {
		return OutOfBoundsError(off, n, len(data))
	}
	return nil
}

// toSafeU64 applies the safe-range assertion to a raw 64-bit word.
func toSafeU64(u uint64) (uint64, error) {
	if u > MaxSafeInt {
		return 0, OutOfRangeErrorf("value %d exceeds safe integer range", u)
	}
	return u, nil
}

// toSafe64 reinterprets a raw 64-bit word as a signed safe integer.
// Negative words decode via two's-complement inversion; the range
// assertion runs on the inverted magnitude, so the admitted window is
// [-1<<53, 1<<53-1].
func toSafe64(u uint64) (int64, error) {
	if int64(u) < 0 {
		m := ^u
		if m > MaxSafeInt {
			return 0, OutOfRangeErrorf("value -%d exceeds safe integer range", m+1)
		}
		return -int64(m) - 1, nil
	}
	if u > MaxSafeInt {
		return 0, OutOfRangeErrorf("value %d exceeds safe integer range", u)
	}
	return int64(u), nil
}

// mask53 truncates a raw 64-bit word to its low 53 bits.
func mask53(u uint64) uint64 {
	return u & MaxSafeInt
}

// maskSigned53 is the truncating counterpart of toSafe64: instead of
// faulting past the safe range it discards the high 11 magnitude bits.
func maskSigned53(u uint64) int64 {
	if int64(u) < 0 {
		m := ^u & MaxSafeInt
		return -int64(m) - 1
	}
	return int64(u & MaxSafeInt)
}

// ReadU8 reads an unsigned 8-bit integer at off.
func ReadU8(data []byte, off int) (uint8, error) {
	if err := checkBounds(data, off, 1); err != nil {
		return 0, err
	}
	return data[off], nil
}

// ReadU16 reads an unsigned little-endian 16-bit integer at off.
func ReadU16(data []byte, off int) (uint16, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data[off:]), nil
}

// ReadU16BE reads an unsigned big-endian 16-bit integer at off.
func ReadU16BE(data []byte, off int) (uint16, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(data[off:]), nil
}

// ReadU32 reads an unsigned little-endian 32-bit integer at off.
func ReadU32(data []byte, off int) (uint32, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data[off:]), nil
}

// ReadU32BE reads an unsigned big-endian 32-bit integer at off.
func ReadU32BE(data []byte, off int) (uint32, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data[off:]), nil
}

// ReadU64 reads an unsigned little-endian 64-bit integer at off. Values
// above MaxSafeInt fault with ErrKindOutOfRange; use ReadU64Big for full
// 64-bit fidelity.
func ReadU64(data []byte, off int) (uint64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return toSafeU64(binary.LittleEndian.Uint64(data[off:]))
}

// ReadU64BE reads an unsigned big-endian 64-bit integer at off, with the
// same safe-range assertion as ReadU64.
func ReadU64BE(data []byte, off int) (uint64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return toSafeU64(binary.BigEndian.Uint64(data[off:]))
}

// ReadU53 reads an unsigned little-endian 64-bit integer at off and
// truncates it to 53 bits. The high 11 bits are discarded, so distinct
// wire values above MaxSafeInt alias to smaller numbers. This is the
// truncating variant: callers that need the loss detected use ReadU64.
func ReadU53(data []byte, off int) (uint64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return mask53(binary.LittleEndian.Uint64(data[off:])), nil
}

// ReadU53BE is the big-endian ReadU53.
func ReadU53BE(data []byte, off int) (uint64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return mask53(binary.BigEndian.Uint64(data[off:])), nil
}

// Read8 reads a signed 8-bit integer at off.
func Read8(data []byte, off int) (int8, error) {
	if err := checkBounds(data, off, 1); err != nil {
		return 0, err
	}
	return int8(data[off]), nil
}

// Read16 reads a signed little-endian 16-bit integer at off.
func Read16(data []byte, off int) (int16, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(data[off:])), nil
}

// Read16BE reads a signed big-endian 16-bit integer at off.
func Read16BE(data []byte, off int) (int16, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(data[off:])), nil
}

// Read32 reads a signed little-endian 32-bit integer at off.
func Read32(data []byte, off int) (int32, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(data[off:])), nil
}

// Read32BE reads a signed big-endian 32-bit integer at off.
func Read32BE(data []byte, off int) (int32, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(data[off:])), nil
}

// Read64 reads a signed little-endian 64-bit integer at off. The sign
// comes from the top bit; magnitudes past the safe range fault with
// ErrKindOutOfRange. Use Read64Big for full 64-bit fidelity.
func Read64(data []byte, off int) (int64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return toSafe64(binary.LittleEndian.Uint64(data[off:]))
}

// Read64BE is the big-endian Read64.
func Read64BE(data []byte, off int) (int64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return toSafe64(binary.BigEndian.Uint64(data[off:]))
}

// Read53 reads a signed little-endian 64-bit integer at off, truncating
// the magnitude to 53 bits instead of faulting. Same aliasing caveat as
// ReadU53.
func Read53(data []byte, off int) (int64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return maskSigned53(binary.LittleEndian.Uint64(data[off:])), nil
}

// Read53BE is the big-endian Read53.
func Read53BE(data []byte, off int) (int64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	return maskSigned53(binary.BigEndian.Uint64(data[off:])), nil
}

// WriteU8 writes an unsigned 8-bit integer at off and returns the offset
// just past it.
func WriteU8(data []byte, v uint8, off int) (int, error) {
	if err := checkBounds(data, off, 1); err != nil {
		return 0, err
	}
	data[off] = v
	return off + 1, nil
}

// WriteU16 writes an unsigned little-endian 16-bit integer at off.
func WriteU16(data []byte, v uint16, off int) (int, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint16(data[off:], v)
	return off + 2, nil
}

// WriteU16BE writes an unsigned big-endian 16-bit integer at off.
func WriteU16BE(data []byte, v uint16, off int) (int, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint16(data[off:], v)
	return off + 2, nil
}

// WriteU32 writes an unsigned little-endian 32-bit integer at off.
func WriteU32(data []byte, v uint32, off int) (int, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint32(data[off:], v)
	return off + 4, nil
}

// WriteU32BE writes an unsigned big-endian 32-bit integer at off.
func WriteU32BE(data []byte, v uint32, off int) (int, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint32(data[off:], v)
	return off + 4, nil
}

// Write8 writes a signed 8-bit integer at off.
func Write8(data []byte, v int8, off int) (int, error) {
	if err := checkBounds(data, off, 1); err != nil {
		return 0, err
	}
	data[off] = byte(v)
	return off + 1, nil
}

// Write16 writes a signed little-endian 16-bit integer at off.
func Write16(data []byte, v int16, off int) (int, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint16(data[off:], uint16(v))
	return off + 2, nil
}

// Write16BE writes a signed big-endian 16-bit integer at off.
func Write16BE(data []byte, v int16, off int) (int, error) {
	if err := checkBounds(data, off, 2); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint16(data[off:], uint16(v))
	return off + 2, nil
}

// Write32 writes a signed little-endian 32-bit integer at off.
func Write32(data []byte, v int32, off int) (int, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint32(data[off:], uint32(v))
	return off + 4, nil
}

// Write32BE writes a signed big-endian 32-bit integer at off.
func Write32BE(data []byte, v int32, off int) (int, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint32(data[off:], uint32(v))
	return off + 4, nil
}

// safeU64Word validates v against the safe range and returns it as the
// raw word to emit.
func safeU64Word(v uint64) (uint64, error) {
	if v > MaxSafeInt {
		return 0, OutOfRangeErrorf("value %d exceeds safe integer range", v)
	}
	return v, nil
}

// safe64Word converts a signed value to its 64-bit two's-complement
// word. Negative values go through num = -v - 1 then bit inversion,
// matching the decode side; the safe-range assertion runs on num.
func safe64Word(v int64) (uint64, error) {
	if v < 0 {
		num := uint64(-(v + 1))
		if num > MaxSafeInt {
			return 0, OutOfRangeErrorf("value %d exceeds safe integer range", v)
		}
		return ^num, nil
	}
	if uint64(v) > MaxSafeInt {
		return 0, OutOfRangeErrorf("value %d exceeds safe integer range", v)
	}
	return uint64(v), nil
}

// WriteU64 writes an unsigned little-endian 64-bit integer at off.
// Values above MaxSafeInt fault; use WriteU64Big for full 64-bit range.
func WriteU64(data []byte, v uint64, off int) (int, error) {
	u, err := safeU64Word(v)
	if err != nil {
		return 0, err
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint64(data[off:], u)
	return off + 8, nil
}

// WriteU64BE is the big-endian WriteU64.
func WriteU64BE(data []byte, v uint64, off int) (int, error) {
	u, err := safeU64Word(v)
	if err != nil {
		return 0, err
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint64(data[off:], u)
	return off + 8, nil
}

// Write64 writes a signed little-endian 64-bit integer at off as two's
// complement. The admitted window matches Read64: [-1<<53, 1<<53-1].
func Write64(data []byte, v int64, off int) (int, error) {
	u, err := safe64Word(v)
	if err != nil {
		return 0, err
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint64(data[off:], u)
	return off + 8, nil
}

// Write64BE is the big-endian Write64.
func Write64BE(data []byte, v int64, off int) (int, error) {
	u, err := safe64Word(v)
	if err != nil {
		return 0, err
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint64(data[off:], u)
	return off + 8, nil
}

// U8 returns a freshly allocated 1-byte encoding of v.
func U8(v uint8) []byte {
	return []byte{v}
}

// U32 returns a freshly allocated little-endian 4-byte encoding of v.
func U32(v uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, v)
	return out
}

// U32BE returns a freshly allocated big-endian 4-byte encoding of v.
func U32BE(v uint32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, v)
	return out
}
