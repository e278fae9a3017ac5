// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package treematch

// seqFlags records how a DP cell (i, j) was reached. A cell can be
// reachable via several strategies at once (e.g. a multi-item placeholder
// can simultaneously "open" at a cell and be "extended" into it from a
// different predecessor), so this is a bitset rather than a single enum.
type seqFlags uint8

const (
	// flagInit marks a boundary cell: (0,0), or (0,*) in ModeSearch.
	flagInit seqFlags = 1 << iota
	// flagItem: the last step matched Atom vs Atom by T equality.
	flagItem
	// flagTree: the last step matched Group vs Group with equal tags and a
	// successful recursive Full match of children.
	flagTree
	// flagPlaceholderSingle: the last step consumed one item via a
	// single-item placeholder.
	flagPlaceholderSingle
	// flagPlaceholderMulti: a multi-item placeholder opened with an empty
	// capture (pattern advanced, items did not).
	flagPlaceholderMulti
	// flagPlaceholderMultiExtend: a multi-item placeholder extended by one
	// more item (items advanced, pattern did not).
	flagPlaceholderMultiExtend

	// flagUnknown is the memo sentinel: not yet computed. It never appears
	// combined with any other flag in a computed result.
	flagUnknown seqFlags = 1 << 7
)

func (f seqFlags) has(bit seqFlags) bool { return f&bit != 0 }

// hasMatch reports whether any match strategy reached this cell.
func (f seqFlags) hasMatch() bool { return f != 0 && f != flagUnknown }
