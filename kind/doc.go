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

// Package kind provides the closed set of contract-violation categories and
// the parsing, normalization and validation logic around it.
//
// A "kind" is the machine-readable classification of a violation, such as
// "empty_value", "item_nulls" or "item_not_found". Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON/proto payloads and for lookup in catalogs.
//
// IMPORTANT: the set is closed. Arbitrary strings are NOT valid kinds, and
// every violation MUST carry one of the kinds declared here.
//
// Besides validation, the package classifies kinds (Class) by the context
// fields their rendered messages branch on, and reports which kinds exist in
// the argument-context family (HasArgumentFamily).
package kind
