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

package bincur

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sektioneins/sb2dot/internal/parseerr"
)

func TestTypedReads(t *testing.T) {
	blob := []byte{0x01, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xde, 0xad, 0xbe, 0xef}
	c := New(blob)
	assert.Equal(t, uint8(1), c.U8())
	assert.Equal(t, uint16(0x1234), c.U16())
	assert.Equal(t, uint32(0x12345678), c.U32())
	assert.Equal(t, uint32(0xdeadbeef), c.RegexVersionU32())
	assert.Equal(t, 11, c.Pos())
}

func TestReadStringAtSkipsPadByte(t *testing.T) {
	// word 1 = byte 8: u32 len=5, one pad byte, "hello", trailing NUL
	blob := make([]byte, 24)
	binary.LittleEndian.PutUint32(blob[8:], 5)
	copy(blob[13:], "hello\x00")
	c := New(blob)
	assert.Equal(t, "hello", string(c.ReadStringAt(1)))
}

func TestReadStringNoPadAt(t *testing.T) {
	// Same layout minus the pad byte; the string starts right after the length.
	blob := make([]byte, 24)
	binary.LittleEndian.PutUint32(blob[8:], 5)
	copy(blob[12:], "hello")
	c := New(blob)
	assert.Equal(t, "hello", string(c.ReadStringNoPadAt(1)))
}

func TestReadNetworkAtAdvancesFullStruct(t *testing.T) {
	blob := make([]byte, 16)
	blob[8] = 0x07
	blob[9] = 0x01
	binary.LittleEndian.PutUint16(blob[10:], 80)
	c := New(blob)
	n := c.ReadNetworkAt(1)
	assert.Equal(t, NetworkDescriptor{Type: 0x07, Addr: 0x01, Port: 80}, n)
	// The two trailing u16 fields are discarded but still consumed.
	assert.Equal(t, 16, c.Pos())
}

func TestShortReadPanicsWithParseError(t *testing.T) {
	c := New([]byte{0x01})
	defer func() {
		r := recover()
		require.NotNil(t, r)
		pe, ok := r.(*parseerr.Error)
		require.True(t, ok)
		assert.Equal(t, parseerr.CodeShortRead, pe.Code)
	}()
	c.U32()
}
