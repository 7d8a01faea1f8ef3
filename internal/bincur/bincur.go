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

// Package bincur is the random-access byte cursor over a profile blob.
//
// All multi-byte integers are little-endian, except [Cursor.RegexVersionU32],
// which reads the regex-program version as big-endian, the one
// endianness foot-gun in the format.
//
// All "offsets" accepted by the word-scaled readers are 16-bit values scaled
// by 8: byte offset = word offset * 8.
//
// A short read within a well-formed profile should never happen; when it
// does, the read panics with a *[parseerr.Error] rather than returning one,
// since every caller in this module is expected to recover at its own
// public boundary.
package bincur

import (
	"encoding/binary"

	"github.com/sektioneins/sb2dot/internal/parseerr"
)

// Cursor is a random-access little-endian reader over an in-memory profile
// blob. The blob itself is never mutated; every read starts at the current
// position and advances it past the bytes consumed.
type Cursor struct {
	data []byte
	pos  int
}

// New wraps data for random-access reading.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the number of bytes in the underlying blob.
func (c *Cursor) Len() int { return len(c.data) }

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to an absolute byte offset.
func (c *Cursor) Seek(byteOff int) {
	c.pos = byteOff
}

// WordSeek moves the cursor to the byte offset addressed by a word offset
// (byte offset = word * 8).
func (c *Cursor) WordSeek(word uint16) {
	c.Seek(int(word) * 8)
}

func (c *Cursor) require(n int) {
	if c.pos < 0 || n < 0 || c.pos+n > len(c.data) {
		parseerr.Panic(parseerr.CodeShortRead, c.pos)
	}
}

// Read returns the next n bytes and advances the cursor.
func (c *Cursor) Read(n int) []byte {
	c.require(n)
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

// U8 reads one byte.
func (c *Cursor) U8() uint8 {
	return c.Read(1)[0]
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() uint16 {
	return binary.LittleEndian.Uint16(c.Read(2))
}

// U32 reads a little-endian uint32.
func (c *Cursor) U32() uint32 {
	return binary.LittleEndian.Uint32(c.Read(4))
}

// RegexVersionU32 reads a big-endian uint32; the regex-program version
// field is the sole big-endian value in the format.
func (c *Cursor) RegexVersionU32() uint32 {
	return binary.BigEndian.Uint32(c.Read(4))
}

func trimTrailingNUL(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}

// ReadStringAt seeks to word*8, reads a u32 length n, skips one padding
// byte, then reads n bytes, stripping trailing NULs.
func (c *Cursor) ReadStringAt(word uint16) []byte {
	c.WordSeek(word)
	n := c.U32()
	c.Read(1) // padding byte
	return trimTrailingNUL(c.Read(int(n)))
}

// ReadStringNoPadAt is identical to [Cursor.ReadStringAt] but without the
// one-byte padding skip. The format applies this variant to exactly two
// filter kinds (extension, entitlement); preserved exactly, not
// rationalized.
func (c *Cursor) ReadStringNoPadAt(word uint16) []byte {
	c.WordSeek(word)
	n := c.U32()
	return trimTrailingNUL(c.Read(int(n)))
}

// NetworkDescriptor is the structured argument for the local/remote network
// filters.
type NetworkDescriptor struct {
	Type uint8
	Addr uint8
	Port uint16
}

// ReadNetworkAt reads a `B B H H H` (8 byte) struct and discards the
// trailing two u16 fields. The 8-byte advance is preserved even though only
// the first 4 bytes are used, in case downstream code depends on the
// resulting cursor position.
func (c *Cursor) ReadNetworkAt(word uint16) NetworkDescriptor {
	c.WordSeek(word)
	typ := c.U8()
	addr := c.U8()
	port := c.U16()
	c.U16() // unused
	c.U16() // unused
	return NetworkDescriptor{Type: typ, Addr: addr, Port: port}
}
