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

func TestVarintBigRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value *big.Int
		size  int
	}{
		{"Zero", big.NewInt(0), 1},
		{"Literal", big.NewInt(0xfc), 1},
		{"Tag16", big.NewInt(300), 3},
		{"Tag32", new(big.Int).SetUint64(0xffffffff), 5},
		{"MaxSafe", big.NewInt(MaxSafeInt), 9},
		{"AboveSafe", new(big.Int).Lsh(big.NewInt(1), 53), 9},
		{"MaxUint64", new(big.Int).SetUint64(^uint64(0)), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := SizeVarintBig(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.size, size)

			buf := make([]byte, tt.size)
			next, err := WriteVarintBig(buf, tt.value, 0)
			require.NoError(t, err)
			require.Equal(t, tt.size, next)

			v, size, err := ReadVarintBig(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, 0, tt.value.Cmp(v))
			assert.Equal(t, tt.size, size)
		})
	}
}

func TestVarintBigDelegation(t *testing.T) {
	// Values within the safe range must produce the identical
	// encoding on both paths.
	values := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, MaxSafeInt}
	for _, v := range values {
		size := SizeVarint(v)
		native := make([]byte, size)
		_, err := WriteVarint(native, v, 0)
		require.NoError(t, err)

		viaBig := make([]byte, size)
		_, err = WriteVarintBig(viaBig, new(big.Int).SetUint64(v), 0)
		require.NoError(t, err)
		assert.Equal(t, native, viaBig)
	}
}

func TestVarintBigRejects(t *testing.T) {
	buf := make([]byte, MaxVarintLen)

	negative := big.NewInt(-1)
	_, err := WriteVarintBig(buf, negative, 0)
	assert.True(t, IsOutOfRange(err))
	_, err = SizeVarintBig(negative)
	assert.True(t, IsOutOfRange(err))

	tooWide := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err = WriteVarintBig(buf, tooWide, 0)
	assert.True(t, IsOutOfRange(err))
	_, err = SizeVarintBig(tooWide)
	assert.True(t, IsOutOfRange(err))
}

func TestVarintBigFullWidth(t *testing.T) {
	// The big path carries the full 64-bit range that the native
	// path refuses.
	max := new(big.Int).SetUint64(^uint64(0))
	buf := make([]byte, MaxVarintLen)
	next, err := WriteVarintBig(buf, max, 0)
	require.NoError(t, err)
	require.Equal(t, 9, next)
	assert.Equal(t, byte(0xff), buf[0])

	v, size, err := ReadVarintBig(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, size)
	assert.Equal(t, 0, max.Cmp(v))

	_, _, err = ReadVarint(buf, 0)
	assert.True(t, IsOutOfRange(err))
}
