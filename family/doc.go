/*
   Copyright 2026 The VCheck Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package family provides the two-member context-family set for violations
// and the parsing/validation logic around it.
//
// Every violation belongs to exactly one family:
//
//   - family.Value — the violation names a value or collection that failed;
//   - family.Argument — the violation names a caller-supplied parameter.
//
// The families are behaviorally symmetric: for every kind present in both,
// the rendered messages differ only in the noun naming the offending entity.
// Keyed lookups and aborted operations have no argument-specific semantics
// and exist only in the value family; see kind.HasArgumentFamily.
package family
