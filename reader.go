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

// Reader decodes a caller-supplied buffer sequentially. Each method
// delegates to the matching package function and advances an internal
// offset. The first failure latches: later calls become no-ops
// returning zero values and the offset freezes, so a chain of reads
// needs a single error check at the end via Err.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	data []byte
	off  int
	err  Error
}

// NewReader returns a Reader positioned at the start of data. The
// buffer is not copied and stays caller-owned.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Err returns the latched error, or nil if every call so far succeeded.
func (r *Reader) Err() error {
	return r.err.CheckError()
}

// fail latches err and reports whether the reader is now unusable.
func (r *Reader) fail(err error) bool {
	if err != nil {
		r.err.SetError(err)
		return true
	}
	return false
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() uint8 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU8(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off++
	return v
}

// ReadU16 reads an unsigned little-endian 16-bit integer.
func (r *Reader) ReadU16() uint16 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU16(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 2
	return v
}

// ReadU16BE reads an unsigned big-endian 16-bit integer.
func (r *Reader) ReadU16BE() uint16 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU16BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 2
	return v
}

// ReadU32 reads an unsigned little-endian 32-bit integer.
func (r *Reader) ReadU32() uint32 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU32(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 4
	return v
}

// ReadU32BE reads an unsigned big-endian 32-bit integer.
func (r *Reader) ReadU32BE() uint32 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU32BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 4
	return v
}

// ReadU64 reads an unsigned little-endian 64-bit integer with the
// safe-range assertion of the package-level ReadU64.
func (r *Reader) ReadU64() uint64 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU64(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// ReadU64BE is the big-endian ReadU64.
func (r *Reader) ReadU64BE() uint64 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU64BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// ReadU53 reads an unsigned little-endian 64-bit integer truncated to
// 53 bits.
func (r *Reader) ReadU53() uint64 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU53(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// ReadU53BE is the big-endian ReadU53.
func (r *Reader) ReadU53BE() uint64 {
	if r.err.HasError() {
		return 0
	}
	v, err := ReadU53BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// Read8 reads a signed 8-bit integer.
func (r *Reader) Read8() int8 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read8(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off++
	return v
}

// Read16 reads a signed little-endian 16-bit integer.
func (r *Reader) Read16() int16 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read16(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 2
	return v
}

// Read16BE reads a signed big-endian 16-bit integer.
func (r *Reader) Read16BE() int16 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read16BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 2
	return v
}

// Read32 reads a signed little-endian 32-bit integer.
func (r *Reader) Read32() int32 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read32(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 4
	return v
}

// Read32BE reads a signed big-endian 32-bit integer.
func (r *Reader) Read32BE() int32 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read32BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 4
	return v
}

// Read64 reads a signed little-endian 64-bit integer with the
// safe-range assertion of the package-level Read64.
func (r *Reader) Read64() int64 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read64(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// Read64BE is the big-endian Read64.
func (r *Reader) Read64BE() int64 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read64BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// Read53 reads a signed little-endian 64-bit integer with the
// magnitude truncated to 53 bits.
func (r *Reader) Read53() int64 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read53(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// Read53BE is the big-endian Read53.
func (r *Reader) Read53BE() int64 {
	if r.err.HasError() {
		return 0
	}
	v, err := Read53BE(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += 8
	return v
}

// ReadU64Big reads an unsigned little-endian 64-bit integer with full
// 64-bit fidelity.
func (r *Reader) ReadU64Big() *big.Int {
	if r.err.HasError() {
		return nil
	}
	v, err := ReadU64Big(r.data, r.off)
	if r.fail(err) {
		return nil
	}
	r.off += 8
	return v
}

// ReadU64BEBig is the big-endian ReadU64Big.
func (r *Reader) ReadU64BEBig() *big.Int {
	if r.err.HasError() {
		return nil
	}
	v, err := ReadU64BEBig(r.data, r.off)
	if r.fail(err) {
		return nil
	}
	r.off += 8
	return v
}

// Read64Big reads a signed little-endian 64-bit two's-complement
// integer with full 64-bit fidelity.
func (r *Reader) Read64Big() *big.Int {
	if r.err.HasError() {
		return nil
	}
	v, err := Read64Big(r.data, r.off)
	if r.fail(err) {
		return nil
	}
	r.off += 8
	return v
}

// Read64BEBig is the big-endian Read64Big.
func (r *Reader) Read64BEBig() *big.Int {
	if r.err.HasError() {
		return nil
	}
	v, err := Read64BEBig(r.data, r.off)
	if r.fail(err) {
		return nil
	}
	r.off += 8
	return v
}

// ReadVarint reads a compact-size varint.
func (r *Reader) ReadVarint() uint64 {
	if r.err.HasError() {
		return 0
	}
	v, size, err := ReadVarint(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += size
	return v
}

// ReadVarintBig reads a compact-size varint with full 64-bit fidelity.
func (r *Reader) ReadVarintBig() *big.Int {
	if r.err.HasError() {
		return nil
	}
	v, size, err := ReadVarintBig(r.data, r.off)
	if r.fail(err) {
		return nil
	}
	r.off += size
	return v
}

// ReadBase128 reads a base-128 varint.
func (r *Reader) ReadBase128() uint64 {
	if r.err.HasError() {
		return 0
	}
	v, size, err := ReadBase128(r.data, r.off)
	if r.fail(err) {
		return 0
	}
	r.off += size
	return v
}

// ReadBase128Big reads a base-128 varint with the ceiling raised to
// the full 64-bit range.
func (r *Reader) ReadBase128Big() *big.Int {
	if r.err.HasError() {
		return nil
	}
	v, size, err := ReadBase128Big(r.data, r.off)
	if r.fail(err) {
		return nil
	}
	r.off += size
	return v
}

// ReadBytes reads n bytes and returns a copy, so the result stays
// valid however the caller reuses the underlying buffer.
func (r *Reader) ReadBytes(n int) []byte {
	if r.err.HasError() {
		return nil
	}
	if n < 0 {
		r.err.SetError(OutOfRangeErrorf("negative byte count %d", n))
		return nil
	}
	if err := checkBounds(r.data, r.off, n); r.fail(err) {
		return nil
	}
	out := make([]byte, n)
	copy(out, r.data[r.off:])
	r.off += n
	return out
}

// ReadVarBytes reads a compact-size length prefix followed by that
// many bytes.
func (r *Reader) ReadVarBytes() []byte {
	n := r.ReadVarint()
	if r.err.HasError() {
		return nil
	}
	return r.ReadBytes(int(n))
}

// ReadVarString reads a length-prefixed string and decodes it from
// enc.
func (r *Reader) ReadVarString(enc StringEncoding) string {
	b := r.ReadVarBytes()
	if r.err.HasError() {
		return ""
	}
	s, err := decodeString(b, enc)
	if r.fail(err) {
		return ""
	}
	return s
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int) {
	if r.err.HasError() {
		return
	}
	if n < 0 {
		r.err.SetError(OutOfRangeErrorf("negative byte count %d", n))
		return
	}
	if err := checkBounds(r.data, r.off, n); r.fail(err) {
		return
	}
	r.off += n
}

// SkipVarint advances past a compact-size varint without decoding it.
func (r *Reader) SkipVarint() {
	if r.err.HasError() {
		return
	}
	next, err := SkipVarint(r.data, r.off)
	if r.fail(err) {
		return
	}
	r.off = next
}

// SkipBase128 advances past a base-128 varint without decoding it.
func (r *Reader) SkipBase128() {
	if r.err.HasError() {
		return
	}
	next, err := SkipBase128(r.data, r.off)
	if r.fail(err) {
		return
	}
	r.off = next
}
