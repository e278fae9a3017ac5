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

// Package treematch implements a tree-aware find-and-replace engine over a
// generic algebraic tree structure: sequences whose elements are atoms,
// tagged groups of sub-sequences, or named placeholders that capture matched
// fragments.
//
// It generalizes re.match / re.findall / re.sub to heterogeneous trees
// instead of flat character sequences. The element payload is a generic
// type parameter; the package has no dependency on any particular token
// type or lexer.
package treematch
