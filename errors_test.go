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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	var ok Error
	assert.True(t, ok.Ok())
	assert.False(t, ok.HasError())
	assert.Equal(t, ErrKindOK, ok.Kind())
	assert.Equal(t, "", ok.Error())

	oob := OutOfBoundsError(7, 8, 10)
	assert.False(t, oob.Ok())
	assert.True(t, oob.HasError())
	assert.Equal(t, ErrKindOutOfBounds, oob.Kind())
	assert.Equal(t, "out of bounds: offset=7, need=8, size=10", oob.Error())

	oor := OutOfRangeError("value too large")
	assert.Equal(t, ErrKindOutOfRange, oor.Kind())
	assert.Equal(t, "value too large", oor.Error())

	oorf := OutOfRangeErrorf("value %d exceeds safe integer range", 1<<54)
	assert.Contains(t, oorf.Error(), "18014398509481984")
}

func TestErrorPredicates(t *testing.T) {
	oob := error(OutOfBoundsError(0, 8, 4))
	oor := error(OutOfRangeError("bad"))

	assert.True(t, IsOutOfBounds(oob))
	assert.False(t, IsOutOfRange(oob))
	assert.True(t, IsOutOfRange(oor))
	assert.False(t, IsOutOfBounds(oor))

	// Wrapped errors still classify.
	wrapped := fmt.Errorf("decoding header: %w", oob)
	assert.True(t, IsOutOfBounds(wrapped))

	assert.False(t, IsOutOfBounds(nil))
	assert.False(t, IsOutOfRange(fmt.Errorf("plain")))
}

func TestErrorLatching(t *testing.T) {
	var e Error
	require.Nil(t, e.CheckError())

	first := OutOfBoundsError(1, 2, 3)
	second := OutOfRangeError("later")

	e.SetError(first)
	e.SetError(second) // first error wins
	require.NotNil(t, e.CheckError())
	assert.Equal(t, ErrKindOutOfBounds, e.Kind())

	taken := e.TakeError()
	require.NotNil(t, taken)
	assert.True(t, IsOutOfBounds(taken))
	assert.Nil(t, e.CheckError())
	assert.True(t, e.Ok())

	// Non-codec errors are carried as out-of-range messages.
	e.SetError(fmt.Errorf("external failure"))
	require.NotNil(t, e.CheckError())
	assert.Equal(t, ErrKindOutOfRange, e.Kind())
	assert.Equal(t, "external failure", e.Error())

	// Setting nil never latches.
	var fresh Error
	fresh.SetError(nil)
	assert.Nil(t, fresh.CheckError())
}
