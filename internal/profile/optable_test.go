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
	"github.com/stretchr/testify/require"
)

// TestGroupOpsStableFirstAppearance covers property 7: offsets
// [A, B, A, C, B] with names [n0..n4] group by first-appearance order,
// combining names of every later index that repeats a non-default offset.
func TestGroupOpsStableFirstAppearance(t *testing.T) {
	const A, B, C = 10, 20, 30
	opTable := []uint16{A, B, A, C, B}
	names := []string{"n0", "n1", "n2", "n3", "n4"}

	groups := GroupOps(opTable, names)
	require.Len(t, groups, 3)

	assert.True(t, groups[0].Default)
	assert.Equal(t, uint16(A), groups[0].Offset)

	assert.Equal(t, uint16(B), groups[1].Offset)
	assert.Equal(t, "n1 n4", groups[1].FilenamePart)
	assert.Equal(t, "n1\nn4", groups[1].Label)

	assert.Equal(t, uint16(C), groups[2].Offset)
	assert.Equal(t, "n3", groups[2].FilenamePart)
}

func TestGroupOpsAllDefault(t *testing.T) {
	opTable := []uint16{5, 5, 5}
	names := []string{"a", "b", "c"}

	groups := GroupOps(opTable, names)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Default)
}
