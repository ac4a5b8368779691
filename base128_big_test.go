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

func TestBase128BigRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value *big.Int
		size  int
	}{
		{"Zero", big.NewInt(0), 1},
		{"TwoPow32", new(big.Int).Lsh(bigOne, 32), 5},
		{"MaxSafe", big.NewInt(MaxSafeInt), 8},
		{"AboveSafe", new(big.Int).Lsh(bigOne, 53), 8},
		{"MaxUint64", new(big.Int).SetUint64(^uint64(0)), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := SizeBase128Big(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.size, size)

			buf := make([]byte, size)
			next, err := WriteBase128Big(buf, tt.value, 0)
			require.NoError(t, err)
			require.Equal(t, size, next)

			v, gotSize, err := ReadBase128Big(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, 0, tt.value.Cmp(v))
			assert.Equal(t, size, gotSize)
		})
	}
}

func TestBase128BigGolden(t *testing.T) {
	max := new(big.Int).SetUint64(^uint64(0))
	want := mustHex(t, "80fefefefefefefefe7f")

	buf := make([]byte, MaxBase128Len)
	next, err := WriteBase128Big(buf, max, 0)
	require.NoError(t, err)
	require.Equal(t, MaxBase128Len, next)
	assert.Equal(t, want, buf)

	v, size, err := ReadBase128Big(want, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxBase128Len, size)
	assert.Equal(t, 0, max.Cmp(v))

	// The native path refuses the same bytes.
	_, _, err = ReadBase128(want, 0)
	assert.True(t, IsOutOfRange(err))
}

func TestBase128BigCeiling(t *testing.T) {
	// Ten continuation-heavy bytes accumulate past 1<<64 on the last
	// fold, which the big path rejects rather than wrapping.
	data := mustHex(t, "ffffffffffffffffff7f")
	_, _, err := ReadBase128Big(data, 0)
	assert.True(t, IsOutOfRange(err))
}

func TestBase128BigDelegation(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16511, 16512, 2113664, MaxSafeInt}
	for _, v := range values {
		size := SizeBase128(v)
		native := make([]byte, size)
		_, err := WriteBase128(native, v, 0)
		require.NoError(t, err)

		viaBig := make([]byte, size)
		_, err = WriteBase128Big(viaBig, new(big.Int).SetUint64(v), 0)
		require.NoError(t, err)
		assert.Equal(t, native, viaBig, "value %d", v)

		bigSize, err := SizeBase128Big(new(big.Int).SetUint64(v))
		require.NoError(t, err)
		assert.Equal(t, size, bigSize)
	}
}

func TestBase128BigRejects(t *testing.T) {
	buf := make([]byte, MaxBase128Len)

	negative := big.NewInt(-1)
	_, err := WriteBase128Big(buf, negative, 0)
	assert.True(t, IsOutOfRange(err))
	_, err = SizeBase128Big(negative)
	assert.True(t, IsOutOfRange(err))

	tooWide := new(big.Int).Lsh(bigOne, 64)
	_, err = WriteBase128Big(buf, tooWide, 0)
	assert.True(t, IsOutOfRange(err))
	_, err = SizeBase128Big(tooWide)
	assert.True(t, IsOutOfRange(err))
}

func TestBase128BigWriteDoesNotMutate(t *testing.T) {
	// The encoder recurrence is destructive, so the writer must run it
	// on a copy.
	v := new(big.Int).Lsh(bigOne, 60)
	want := new(big.Int).Set(v)

	buf := make([]byte, MaxBase128Len)
	_, err := WriteBase128Big(buf, v, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(v))

	_, err = SizeBase128Big(v)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(v))
}
