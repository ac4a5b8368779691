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

var (
	bigOne = big.NewInt(1)
	big127 = big.NewInt(0x7f)
)

// bigRep drives the base-128 codec on *big.Int with a hard 64-bit
// ceiling. Its operations mutate in place; the codec only feeds it
// values it owns.
type bigRep struct{}

func (bigRep) zero() *big.Int { return new(big.Int) }

func (bigRep) fold(v *big.Int, b byte) (*big.Int, bool) {
	v.Lsh(v, 7)
	v.Add(v, big.NewInt(int64(b&0x7f)))
	return v, v.BitLen() <= 64
}

func (bigRep) bump(v *big.Int) (*big.Int, bool) {
	v.Add(v, bigOne)
	return v, v.BitLen() <= 64
}

func (bigRep) digit(v *big.Int) byte { return byte(v.Uint64() & 0x7f) }

func (bigRep) reduce(v *big.Int) (*big.Int, bool) {
	if v.Cmp(big127) <= 0 {
		return v, false
	}
	v.Rsh(v, 7)
	v.Sub(v, bigOne)
	return v, true
}

func (bigRep) overflow(off int) Error {
	return OutOfRangeErrorf("base128 varint at offset %d exceeds 64-bit range", off)
}

// ReadBase128Big decodes a base-128 varint at off with the ceiling
// raised from MaxSafeInt to the full 64-bit range.
func ReadBase128Big(data []byte, off int) (*big.Int, int, error) {
	return decodeBase128[*big.Int](bigRep{}, data, off)
}

// WriteBase128Big encodes b as a base-128 varint at off. Values inside
// the safe range delegate to WriteBase128; larger ones run the identical
// recurrence on a copy of b. Negative values and magnitudes past 64 bits
// fault with ErrKindOutOfRange.
func WriteBase128Big(data []byte, b *big.Int, off int) (int, error) {
	if b.Sign() < 0 {
		return 0, OutOfRangeErrorf("varint value must be non-negative, got %d", b)
	}
	if !b.IsUint64() {
		return 0, OutOfRangeErrorf("value %d exceeds 64-bit range", b)
	}
	if v := b.Uint64(); v <= MaxSafeInt {
		return WriteBase128(data, v, off)
	}
	return encodeBase128[*big.Int](bigRep{}, data, new(big.Int).Set(b), off)
}

// SizeBase128Big returns the encoded length of b as a base-128 varint,
// faulting on values outside [0, 1<<64).
func SizeBase128Big(b *big.Int) (int, error) {
	if b.Sign() < 0 {
		return 0, OutOfRangeErrorf("varint value must be non-negative, got %d", b)
	}
	if !b.IsUint64() {
		return 0, OutOfRangeErrorf("value %d exceeds 64-bit range", b)
	}
	if v := b.Uint64(); v <= MaxSafeInt {
		return SizeBase128(v), nil
	}
	return countBase128[*big.Int](bigRep{}, new(big.Int).Set(b)), nil
}
