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

package profiledump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sektioneins/sb2dot/internal/bincur"
	"github.com/sektioneins/sb2dot/internal/decision"
	"github.com/sektioneins/sb2dot/internal/filter"
)

func TestCollectAndMarshal(t *testing.T) {
	blob := make([]byte, 24)
	blob[1] = uint8(filter.KindXattr)
	blob[2] = 5
	blob[4] = 1
	blob[6] = 2
	blob[8] = 1
	blob[16] = 1
	blob[18] = 1

	g := decision.NewGraph()
	decision.Parse(g, bincur.New(blob), nil, 0)

	dump := Collect(g, 0)
	require.Len(t, dump.Nodes, 3)
	assert.Equal(t, "(xattr 5)", dump.Nodes[0].Label)
	assert.False(t, dump.Nodes[0].Terminal)
	require.NotNil(t, dump.Nodes[0].Match)
	assert.Equal(t, 8, *dump.Nodes[0].Match)

	out, err := Marshal(dump)
	require.NoError(t, err)
	assert.Contains(t, string(out), "xattr 5")
}
