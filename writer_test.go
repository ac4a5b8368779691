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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterChained(t *testing.T) {
	payload := []byte{1, 2, 3}
	strSize, err := SizeVarString("héllo", Latin1)
	require.NoError(t, err)
	total := 1 + 2 + SizeVarint(300) + SizeBase128(16512) + 8 +
		SizeVarBytes(payload) + strSize

	buf := make([]byte, total)
	w := NewWriter(buf)
	w.WriteU8(0x2a)
	w.WriteU16BE(0xbeef)
	w.WriteVarint(300)
	w.WriteBase128(16512)
	w.Write64(-42)
	w.WriteVarBytes(payload)
	w.WriteVarString("héllo", Latin1)
	require.NoError(t, w.Err())
	assert.Equal(t, total, w.Offset())
	assert.Equal(t, buf, w.Bytes())

	r := NewReader(w.Bytes())
	assert.Equal(t, uint8(0x2a), r.ReadU8())
	assert.Equal(t, uint16(0xbeef), r.ReadU16BE())
	assert.Equal(t, uint64(300), r.ReadVarint())
	assert.Equal(t, uint64(16512), r.ReadBase128())
	assert.Equal(t, int64(-42), r.Read64())
	assert.Equal(t, payload, r.ReadVarBytes())
	assert.Equal(t, "héllo", r.ReadVarString(Latin1))
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
}

func TestWriterLatching(t *testing.T) {
	buf := make([]byte, 3)
	w := NewWriter(buf)

	w.WriteU16(0x0102)
	require.NoError(t, w.Err())

	// Needs four bytes, one available: this latches.
	w.WriteU32(7)
	require.Error(t, w.Err())
	assert.True(t, IsOutOfBounds(w.Err()))
	assert.Equal(t, 2, w.Offset())

	// Later calls are no-ops, even ones that would have fit.
	w.WriteU8(9)
	w.WriteVarint(1)
	assert.Equal(t, 2, w.Offset())
	assert.Equal(t, []byte{0x02, 0x01}, w.Bytes())
	assert.Equal(t, byte(0), buf[2], "bytes past the latch point stay untouched")
}

func TestWriterRangeLatch(t *testing.T) {
	buf := make([]byte, 8)
	w := NewWriter(buf)
	w.WriteU64(MaxSafeInt + 1)
	assert.True(t, IsOutOfRange(w.Err()))
	assert.Equal(t, 0, w.Offset())
	assert.Equal(t, make([]byte, 8), buf)
}

func TestWriterBigWrites(t *testing.T) {
	buf := make([]byte, 16+MaxBase128Len)
	w := NewWriter(buf)
	w.WriteU64Big(new(big.Int).SetUint64(^uint64(0)))
	w.Write64BEBig(big.NewInt(-1))
	w.WriteBase128Big(new(big.Int).Lsh(bigOne, 53))
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())
	assert.Equal(t, ^uint64(0), r.ReadU64Big().Uint64())
	assert.Equal(t, int64(-1), r.Read64BEBig().Int64())
	assert.Equal(t, uint64(1)<<53, r.ReadBase128Big().Uint64())
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
}

func TestWriterVarStringFault(t *testing.T) {
	buf := make([]byte, 16)
	w := NewWriter(buf)
	w.WriteVarString("日本", Latin1)
	assert.True(t, IsOutOfRange(w.Err()))
	assert.Equal(t, 0, w.Offset())
	assert.Equal(t, make([]byte, 16), buf, "a faulting encode writes nothing")
}

func TestWriterVarBytesAtomic(t *testing.T) {
	// The prefix alone fits but prefix+payload does not: nothing may be
	// written, not even the prefix.
	buf := make([]byte, 3)
	w := NewWriter(buf)
	w.WriteVarBytes([]byte{1, 2, 3})
	assert.True(t, IsOutOfBounds(w.Err()))
	assert.Equal(t, 0, w.Offset())
	assert.Equal(t, make([]byte, 3), buf)
}

func TestWriterExactFit(t *testing.T) {
	strSize, err := SizeVarString("日本", UTF16LE)
	require.NoError(t, err)
	total := SizeVarint(0x100000000) + strSize + SizeBase128(MaxSafeInt)

	buf := make([]byte, total)
	w := NewWriter(buf)
	w.WriteVarint(0x100000000)
	w.WriteVarString("日本", UTF16LE)
	w.WriteBase128(MaxSafeInt)
	require.NoError(t, w.Err())
	assert.Equal(t, total, w.Offset())

	r := NewReader(w.Bytes())
	assert.Equal(t, uint64(0x100000000), r.ReadVarint())
	assert.Equal(t, "日本", r.ReadVarString(UTF16LE))
	assert.Equal(t, uint64(MaxSafeInt), r.ReadBase128())
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
}
