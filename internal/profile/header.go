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

package profile

import "github.com/sektioneins/sb2dot/internal/bincur"

// FlagCollection is the header flags value denoting a profile collection
// rather than a single profile. Other observed values (0, 1, 2) are
// all "single profile".
const FlagCollection = 0x8000

// Header is the 6-byte container header.
type Header struct {
	Flags         uint16
	RETableOffset uint16
	RETableCount  uint16
}

// IsCollection reports whether this header describes a profile collection.
func (h Header) IsCollection() bool { return h.Flags == FlagCollection }

func readHeader(c *bincur.Cursor) Header {
	c.Seek(0)
	return Header{
		Flags:         c.U16(),
		RETableOffset: c.U16(),
		RETableCount:  c.U16(),
	}
}
