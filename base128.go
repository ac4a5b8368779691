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

// Base-128 varints carry seven value bits per byte with a continuation
// flag in the top bit, most significant group first. Unlike LEB128,
// every continuation byte adds an implicit +1 to the accumulator, so
// each byte-length class covers a contiguous value range with no
// redundant encodings: 0..127 in one byte, 128..16511 in two, and so
// on. Decode folds bytes in with v = v*128 + (b & 0x7f), bumping v by
// one after every continuation byte; encode inverts that with
// v = (v - v%128)/128 - 1 per digit.

// MaxBase128Len is the longest encoding the codec accepts: ten bytes
// reach the 64-bit ceiling. Native-path values need at most eight.
const MaxBase128Len = 10

// integerRep is the numeric capability the base-128 codec is generic
// over, instantiated once for machine words and once for big integers.
// Operations that can leave the representation's ceiling report whether
// the result is still inside it.
type integerRep[T any] interface {
	zero() T
	// fold returns v*128 + (b & 0x7f).
	fold(v T, b byte) (T, bool)
	// bump returns v+1, the per-continuation offset.
	bump(v T) (T, bool)
	// digit returns the low seven bits of v.
	digit(v T) byte
	// reduce applies the encoder recurrence (v - v%128)/128 - 1 and
	// reports whether more digits remain.
	reduce(v T) (T, bool)
	// overflow builds the fault for an accumulation that left the
	// ceiling; off is the varint's start offset.
	overflow(off int) Error
}

// wordRep drives the codec on uint64 with the safe-integer ceiling.
type wordRep struct{}

func (wordRep) zero() uint64 { return 0 }

func (wordRep) fold(v uint64, b byte) (uint64, bool) {
	v = v<<7 | uint64(b&0x7f)
	return v, v <= MaxSafeInt
}

func (wordRep) bump(v uint64) (uint64, bool) {
	v++
	return v, v <= MaxSafeInt
}

func (wordRep) digit(v uint64) byte { return byte(v & 0x7f) }

func (wordRep) reduce(v uint64) (uint64, bool) {
	if v <= 0x7f {
		return 0, false
	}
	return v>>7 - 1, true
}

func (wordRep) overflow(off int) Error {
	return OutOfRangeErrorf("base128 varint at offset %d exceeds safe integer range", off)
}

// decodeBase128 is the accumulation loop shared by both representations.
func decodeBase128[T any](rep integerRep[T], data []byte, off int) (T, int, error) {
	var zero T
	start := off
	v := rep.zero()
	for {
		b, err := ReadU8(data, off)
		if err != nil {
			return zero, 0, err
		}
		off++
		var ok bool
		if v, ok = rep.fold(v, b); !ok {
			return zero, 0, rep.overflow(start)
		}
		if b&0x80 == 0 {
			return v, off - start, nil
		}
		if v, ok = rep.bump(v); !ok {
			return zero, 0, rep.overflow(start)
		}
	}
}

// encodeBase128 extracts digits least-significant-first, then emits them
// in most-significant-first byte order with continuation bits on all but
// the lowest digit. It consumes v; callers pass a value they own.
func encodeBase128[T any](rep integerRep[T], data []byte, v T, off int) (int, error) {
	var tmp [MaxBase128Len]byte
	n := 0
	for {
		d := rep.digit(v)
		if n > 0 {
			d |= 0x80
		}
		tmp[n] = d
		n++
		next, more := rep.reduce(v)
		if !more {
			break
		}
		v = next
	}
	if err := checkBounds(data, off, n); err != nil {
		return 0, err
	}
	for i := n - 1; i >= 0; i-- {
		data[off] = tmp[i]
		off++
	}
	return off, nil
}

// countBase128 runs the digit-extraction recurrence without writing.
func countBase128[T any](rep integerRep[T], v T) int {
	n := 1
	for {
		next, more := rep.reduce(v)
		if !more {
			return n
		}
		v = next
		n++
	}
}

// ReadBase128 decodes a base-128 varint at off, returning the value and
// the number of bytes consumed. Accumulation past MaxSafeInt faults with
// ErrKindOutOfRange; ReadBase128Big extends the ceiling to 64 bits.
func ReadBase128(data []byte, off int) (uint64, int, error) {
	return decodeBase128[uint64](wordRep{}, data, off)
}

// WriteBase128 encodes v as a base-128 varint at off and returns the
// offset just past it. Values above MaxSafeInt fault; use
// WriteBase128Big for the full 64-bit range.
func WriteBase128(data []byte, v uint64, off int) (int, error) {
	if v > MaxSafeInt {
		return 0, OutOfRangeErrorf("value %d exceeds safe integer range", v)
	}
	return encodeBase128[uint64](wordRep{}, data, v, off)
}

// SkipBase128 returns the offset just past the base-128 varint at off:
// every byte with the continuation bit set, plus the terminal byte.
func SkipBase128(data []byte, off int) (int, error) {
	for {
		b, err := ReadU8(data, off)
		if err != nil {
			return 0, err
		}
		off++
		if b&0x80 == 0 {
			return off, nil
		}
	}
}

// SizeBase128 returns the encoded length of v as a base-128 varint.
func SizeBase128(v uint64) int {
	return countBase128[uint64](wordRep{}, v)
}
