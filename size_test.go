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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodedLen(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		enc     StringEncoding
		want    int
		wantErr bool
	}{
		{"EmptyUTF8", "", UTF8, 0, false},
		{"EmptyLatin1", "", Latin1, 0, false},
		{"EmptyUTF16", "", UTF16LE, 0, false},
		{"AsciiUTF8", "abc", UTF8, 3, false},
		{"AsciiLatin1", "abc", Latin1, 3, false},
		{"AsciiUTF16", "abc", UTF16LE, 6, false},
		{"AccentedUTF8", "héllo", UTF8, 6, false},
		{"AccentedLatin1", "héllo", Latin1, 5, false},
		{"AccentedUTF16", "héllo", UTF16LE, 10, false},
		{"CJKUTF8", "日本", UTF8, 6, false},
		{"CJKLatin1", "日本", Latin1, 0, true},
		{"CJKUTF16", "日本", UTF16LE, 4, false},
		{"SurrogateUTF8", "𝄞", UTF8, 4, false},
		{"SurrogateLatin1", "𝄞", Latin1, 0, true},
		{"SurrogateUTF16", "𝄞", UTF16LE, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := EncodedLen(tt.s, tt.enc)
			if tt.wantErr {
				assert.True(t, IsOutOfRange(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestEncodedLenInvalidEncoding(t *testing.T) {
	_, err := EncodedLen("abc", StringEncoding(99))
	assert.True(t, IsOutOfRange(err))
}

func TestStringTranscode(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  StringEncoding
		hex  string
	}{
		{"AsciiUTF8", "abc", UTF8, "616263"},
		{"AccentedLatin1", "héllo", Latin1, "68e96c6c6f"},
		{"AsciiUTF16", "ab", UTF16LE, "61006200"},
		{"CJKUTF16", "日本", UTF16LE, "e5652c67"},
		{"SurrogateUTF16", "𝄞", UTF16LE, "34d81edd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := encodeString(tt.s, tt.enc)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tt.hex), b)

			n, err := EncodedLen(tt.s, tt.enc)
			require.NoError(t, err)
			assert.Equal(t, n, len(b))

			s, err := decodeString(b, tt.enc)
			require.NoError(t, err)
			assert.Equal(t, tt.s, s)
		})
	}
}

func TestStringTranscodeFaults(t *testing.T) {
	_, err := encodeString("日本", Latin1)
	assert.True(t, IsOutOfRange(err))

	_, err = decodeString([]byte{0x41}, UTF16LE)
	assert.True(t, IsOutOfRange(err))

	_, err = encodeString("abc", StringEncoding(99))
	assert.True(t, IsOutOfRange(err))
	_, err = decodeString([]byte("abc"), StringEncoding(99))
	assert.True(t, IsOutOfRange(err))
}

func TestSizeVarlen(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 2},
		{0xfc, 1 + 0xfc},
		{0xfd, 3 + 0xfd},
		{0xffff, 3 + 0xffff},
		{0x10000, 5 + 0x10000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeVarlen(tt.n), "payload length %d", tt.n)
	}
}

func TestSizeVarBytes(t *testing.T) {
	assert.Equal(t, 1, SizeVarBytes(nil))
	assert.Equal(t, 4, SizeVarBytes([]byte("abc")))

	long := make([]byte, 0xfd)
	assert.Equal(t, 3+0xfd, SizeVarBytes(long))
}

func TestSizeVarString(t *testing.T) {
	n, err := SizeVarString("abc", UTF8)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = SizeVarString("日本", UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = SizeVarString("日本", Latin1)
	assert.True(t, IsOutOfRange(err))
}
