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

package filter

import (
	"fmt"

	"github.com/sektioneins/sb2dot/internal/bincur"
	"github.com/sektioneins/sb2dot/internal/parseerr"
	"github.com/sektioneins/sb2dot/internal/sblog"
)

// Decode resolves one non-terminal filter node's (filterID, filterArg) pair
// into a [Filter], reading from the string pool or network-struct area of c
// as the kind demands, and from regexTable for the regex-table kinds.
//
// A filterArg that indexes outside regexTable is a fatal malformed-profile
// condition; everything else about a filter's shape is determined
// solely by its kind and always succeeds.
func Decode(c *bincur.Cursor, regexTable []string, filterID uint8, filterArg uint16) *Filter {
	k := Kind(filterID)
	f := &Filter{Kind: k, Arg: filterArg}

	switch {
	case k.NeedsRegexTable():
		if int(filterArg) >= len(regexTable) {
			parseerr.Panic(parseerr.CodeBadRegexIndex, c.Pos())
		}
		f.Str = regexTable[filterArg]
	case k.NeedsStringPool():
		if k.NoPad() {
			f.Str = string(c.ReadStringNoPadAt(filterArg))
		} else {
			f.Str = string(c.ReadStringAt(filterArg))
		}
	case k.NeedsNetwork():
		n := c.ReadNetworkAt(filterArg)
		f.Net = NewNetworkArg(n.Type, n.Addr, n.Port)
	}

	switch {
	case !k.Known():
		sblog.L.Warn("unknown filter ID, lowering to generic form",
			"filter", fmt.Sprintf("%#x", filterID), "arg", fmt.Sprintf("%#x", filterArg))
	case !enumValueKnown(k, filterArg):
		sblog.L.Warn("unknown enum value in filter",
			"filter", fmt.Sprintf("%#x", filterID), "value", filterArg)
	}

	return f
}

// GenericFixme renders the fallback form directly, for callers that only
// have a raw, unrecognized kind byte and want the exact same text [Filter]'s
// default case would produce.
func GenericFixme(kindByte uint8, arg uint16) string {
	return fmt.Sprintf("(generic-fixme-filter 0x%2x 0x%04x)", kindByte, arg)
}
