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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sektioneins/sb2dot/internal/bincur"
)

func TestReadHeaderCollection(t *testing.T) {
	blob := []byte{0x00, 0x80, 0x05, 0x00, 0x02, 0x00}
	h := readHeader(bincur.New(blob))
	assert.True(t, h.IsCollection())
	assert.Equal(t, uint16(5), h.RETableOffset)
	assert.Equal(t, uint16(2), h.RETableCount)
}

func TestReadHeaderSingleProfile(t *testing.T) {
	for _, flags := range []uint16{0, 1, 2} {
		blob := []byte{byte(flags), byte(flags >> 8), 0, 0, 0, 0}
		h := readHeader(bincur.New(blob))
		assert.False(t, h.IsCollection())
	}
}
