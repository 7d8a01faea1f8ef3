// Copyright 2026 The sb2dot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parseerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorNamesOffset(t *testing.T) {
	err := New(CodeShortRead, 0x30)
	assert.Equal(t, "sb2dot: short read at offset 48/0x30", err.Error())
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeBadHeader, 2)
	assert.True(t, errors.Is(err, New(CodeBadHeader, 99)))
	assert.False(t, errors.Is(err, New(CodeShortRead, 2)))
}

func TestRecoverCapturesParseError(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		Panic(CodeShortRead, 16)
		return nil
	}
	err := run()
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 16, pe.Offset)
}

func TestRecoverLetsOtherPanicsThrough(t *testing.T) {
	assert.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("unrelated")
	})
}
