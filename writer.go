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

// Writer encodes into a caller-supplied buffer sequentially. The
// buffer is never grown; size it up front with the Size helpers. Like
// Reader, the first failure latches and freezes the offset, so a chain
// of writes needs a single error check at the end via Err.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	data []byte
	off  int
	err  Error
}

// NewWriter returns a Writer positioned at the start of data. The
// buffer stays caller-owned.
func NewWriter(data []byte) *Writer {
	return &Writer{data: data}
}

// Offset returns the current write position.
func (w *Writer) Offset() int {
	return w.off
}

// Bytes returns the written prefix of the underlying buffer.
func (w *Writer) Bytes() []byte {
	return w.data[:w.off]
}

// Err returns the latched error, or nil if every call so far succeeded.
func (w *Writer) Err() error {
	return w.err.CheckError()
}

// apply latches err or advances to next.
func (w *Writer) apply(next int, err error) {
	if err != nil {
		w.err.SetError(err)
		return
	}
	w.off = next
}

// WriteU8 writes an unsigned 8-bit integer.
func (w *Writer) WriteU8(v uint8) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU8(w.data, v, w.off))
}

// WriteU16 writes an unsigned little-endian 16-bit integer.
func (w *Writer) WriteU16(v uint16) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU16(w.data, v, w.off))
}

// WriteU16BE writes an unsigned big-endian 16-bit integer.
func (w *Writer) WriteU16BE(v uint16) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU16BE(w.data, v, w.off))
}

// WriteU32 writes an unsigned little-endian 32-bit integer.
func (w *Writer) WriteU32(v uint32) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU32(w.data, v, w.off))
}

// WriteU32BE writes an unsigned big-endian 32-bit integer.
func (w *Writer) WriteU32BE(v uint32) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU32BE(w.data, v, w.off))
}

// WriteU64 writes an unsigned little-endian 64-bit integer with the
// safe-range assertion of the package-level WriteU64.
func (w *Writer) WriteU64(v uint64) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU64(w.data, v, w.off))
}

// WriteU64BE is the big-endian WriteU64.
func (w *Writer) WriteU64BE(v uint64) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU64BE(w.data, v, w.off))
}

// Write8 writes a signed 8-bit integer.
func (w *Writer) Write8(v int8) {
	if w.err.HasError() {
		return
	}
	w.apply(Write8(w.data, v, w.off))
}

// Write16 writes a signed little-endian 16-bit integer.
func (w *Writer) Write16(v int16) {
	if w.err.HasError() {
		return
	}
	w.apply(Write16(w.data, v, w.off))
}

// Write16BE writes a signed big-endian 16-bit integer.
func (w *Writer) Write16BE(v int16) {
	if w.err.HasError() {
		return
	}
	w.apply(Write16BE(w.data, v, w.off))
}

// Write32 writes a signed little-endian 32-bit integer.
func (w *Writer) Write32(v int32) {
	if w.err.HasError() {
		return
	}
	w.apply(Write32(w.data, v, w.off))
}

// Write32BE writes a signed big-endian 32-bit integer.
func (w *Writer) Write32BE(v int32) {
	if w.err.HasError() {
		return
	}
	w.apply(Write32BE(w.data, v, w.off))
}

// Write64 writes a signed little-endian 64-bit integer as two's
// complement, inside the native safe window.
func (w *Writer) Write64(v int64) {
	if w.err.HasError() {
		return
	}
	w.apply(Write64(w.data, v, w.off))
}

// Write64BE is the big-endian Write64.
func (w *Writer) Write64BE(v int64) {
	if w.err.HasError() {
		return
	}
	w.apply(Write64BE(w.data, v, w.off))
}

// WriteU64Big writes an unsigned little-endian 64-bit integer with
// full 64-bit fidelity.
func (w *Writer) WriteU64Big(b *big.Int) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU64Big(w.data, b, w.off))
}

// WriteU64BEBig is the big-endian WriteU64Big.
func (w *Writer) WriteU64BEBig(b *big.Int) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteU64BEBig(w.data, b, w.off))
}

// Write64Big writes a signed little-endian 64-bit two's-complement
// integer with full 64-bit fidelity.
func (w *Writer) Write64Big(b *big.Int) {
	if w.err.HasError() {
		return
	}
	w.apply(Write64Big(w.data, b, w.off))
}

// Write64BEBig is the big-endian Write64Big.
func (w *Writer) Write64BEBig(b *big.Int) {
	if w.err.HasError() {
		return
	}
	w.apply(Write64BEBig(w.data, b, w.off))
}

// WriteVarint writes a compact-size varint.
func (w *Writer) WriteVarint(v uint64) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteVarint(w.data, v, w.off))
}

// WriteVarintBig writes a compact-size varint with full 64-bit
// fidelity.
func (w *Writer) WriteVarintBig(b *big.Int) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteVarintBig(w.data, b, w.off))
}

// WriteBase128 writes a base-128 varint.
func (w *Writer) WriteBase128(v uint64) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteBase128(w.data, v, w.off))
}

// WriteBase128Big writes a base-128 varint with the ceiling raised to
// the full 64-bit range.
func (w *Writer) WriteBase128Big(b *big.Int) {
	if w.err.HasError() {
		return
	}
	w.apply(WriteBase128Big(w.data, b, w.off))
}

// WriteBytes writes p verbatim.
func (w *Writer) WriteBytes(p []byte) {
	if w.err.HasError() {
		return
	}
	if err := checkBounds(w.data, w.off, len(p)); err != nil {
		w.err.SetError(err)
		return
	}
	copy(w.data[w.off:], p)
	w.off += len(p)
}

// WriteVarBytes writes a compact-size length prefix followed by p.
func (w *Writer) WriteVarBytes(p []byte) {
	if w.err.HasError() {
		return
	}
	if err := checkBounds(w.data, w.off, SizeVarBytes(p)); err != nil {
		w.err.SetError(err)
		return
	}
	w.WriteVarint(uint64(len(p)))
	w.WriteBytes(p)
}

// WriteVarString encodes s under enc and writes it as a
// length-prefixed payload.
func (w *Writer) WriteVarString(s string, enc StringEncoding) {
	if w.err.HasError() {
		return
	}
	b, err := encodeString(s, enc)
	if err != nil {
		w.err.SetError(err)
		return
	}
	w.WriteVarBytes(b)
}
