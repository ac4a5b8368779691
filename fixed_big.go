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

import (
	"encoding/binary"
	"math/big"
)

// minSafeInt is the most negative value the native signed window admits.
const minSafeInt = -1 << 53

// big2e64 is 1<<64, the modulus for two's-complement masking.
var big2e64 = new(big.Int).Lsh(big.NewInt(1), 64)

// fitsNativeU reports whether b can take the native unsigned path.
func fitsNativeU(b *big.Int) bool {
	return b.Sign() >= 0 && b.IsUint64() && b.Uint64() <= MaxSafeInt
}

// fitsNative reports whether b can take the native signed path.
func fitsNative(b *big.Int) bool {
	if !b.IsInt64() {
		return false
	}
	v := b.Int64()
	return v >= minSafeInt && v <= MaxSafeInt
}

// word64FromBig reduces b modulo 1<<64, yielding the raw word of its
// two's-complement encoding.
func word64FromBig(b *big.Int) uint64 {
	if b.Sign() >= 0 && b.IsUint64() {
		return b.Uint64()
	}
	return new(big.Int).Mod(b, big2e64).Uint64()
}

// ReadU64Big reads an unsigned little-endian 64-bit integer at off with
// full 64-bit fidelity. No safe-range assertion applies.
func ReadU64Big(data []byte, off int) (*big.Int, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(binary.LittleEndian.Uint64(data[off:])), nil
}

// ReadU64BEBig is the big-endian ReadU64Big.
func ReadU64BEBig(data []byte, off int) (*big.Int, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(binary.BigEndian.Uint64(data[off:])), nil
}

// Read64Big reads a signed little-endian 64-bit two's-complement integer
// at off with full 64-bit fidelity.
func Read64Big(data []byte, off int) (*big.Int, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return nil, err
	}
	return big.NewInt(int64(binary.LittleEndian.Uint64(data[off:]))), nil
}

// Read64BEBig is the big-endian Read64Big.
func Read64BEBig(data []byte, off int) (*big.Int, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return nil, err
	}
	return big.NewInt(int64(binary.BigEndian.Uint64(data[off:]))), nil
}

// WriteU64Big writes b at off as 8 little-endian bytes. Values inside
// the safe range delegate to WriteU64; everything else is reduced modulo
// 1<<64 first, so negatives emit their two's complement and magnitudes
// past 64 bits wrap rather than fault.
func WriteU64Big(data []byte, b *big.Int, off int) (int, error) {
	if fitsNativeU(b) {
		return WriteU64(data, b.Uint64(), off)
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint64(data[off:], word64FromBig(b))
	return off + 8, nil
}

// WriteU64BEBig is the big-endian WriteU64Big.
func WriteU64BEBig(data []byte, b *big.Int, off int) (int, error) {
	if fitsNativeU(b) {
		return WriteU64BE(data, b.Uint64(), off)
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint64(data[off:], word64FromBig(b))
	return off + 8, nil
}

// Write64Big writes b at off as 8 little-endian two's-complement bytes,
// delegating to Write64 inside the native window and masking to 64 bits
// outside it.
func Write64Big(data []byte, b *big.Int, off int) (int, error) {
	if fitsNative(b) {
		return Write64(data, b.Int64(), off)
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint64(data[off:], word64FromBig(b))
	return off + 8, nil
}

// Write64BEBig is the big-endian Write64Big.
func Write64BEBig(data []byte, b *big.Int, off int) (int, error) {
	if fitsNative(b) {
		return Write64BE(data, b.Int64(), off)
	}
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint64(data[off:], word64FromBig(b))
	return off + 8, nil
}
