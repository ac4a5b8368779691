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

import "math/big"

// The big twins only special-case the 9-byte form; everything below 32
// bits converts to a native number and delegates.

// ReadVarintBig decodes a compact-size varint at off with full 64-bit
// fidelity in the 9-byte form.
func ReadVarintBig(data []byte, off int) (*big.Int, int, error) {
	tag, err := ReadU8(data, off)
	if err != nil {
		return nil, 0, err
	}
	if tag == varintTag64 {
		v, err := ReadU64Big(data, off+1)
		if err != nil {
			return nil, 0, err
		}
		if v.Uint64() <= 0xffffffff {
			return nil, 0, OutOfRangeErrorf("non-canonical varint: 9-byte encoding of %d", v)
		}
		return v, 9, nil
	}
	v, size, err := ReadVarint(data, off)
	if err != nil {
		return nil, 0, err
	}
	return new(big.Int).SetUint64(v), size, nil
}

// WriteVarintBig encodes b as a minimal compact-size varint at off.
// Negative values and magnitudes past 64 bits fault with
// ErrKindOutOfRange.
func WriteVarintBig(data []byte, b *big.Int, off int) (int, error) {
	if b.Sign() < 0 {
		return 0, OutOfRangeErrorf("varint value must be non-negative, got %d", b)
	}
	if !b.IsUint64() {
		return 0, OutOfRangeErrorf("value %d exceeds 64-bit range", b)
	}
	v := b.Uint64()
	if v > 0xffffffff {
		if err := checkBounds(data, off, 9); err != nil {
			return 0, err
		}
		data[off] = varintTag64
		return WriteU64Big(data, b, off+1)
	}
	return WriteVarint(data, v, off)
}

// SizeVarintBig returns the encoded length of b as a compact-size
// varint, faulting on values outside [0, 1<<64).
func SizeVarintBig(b *big.Int) (int, error) {
	if b.Sign() < 0 {
		return 0, OutOfRangeErrorf("varint value must be non-negative, got %d", b)
	}
	if !b.IsUint64() {
		return 0, OutOfRangeErrorf("value %d exceeds 64-bit range", b)
	}
	return SizeVarint(b.Uint64()), nil
}
