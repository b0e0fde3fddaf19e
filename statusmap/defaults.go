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

package statusmap

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"vcheck.dev/verrors/kind"
)

// defaultHTTP defines the library's built-in HTTP mappings for every
// violation kind. These are only defaults: callers are expected to override
// them at the boundary where HTTP is actually produced.
//
// Violations describe contract failures of the caller's input, so almost
// everything is a 400. The exceptions are lookups that found nothing (404)
// and operations that stopped midway (409).
var defaultHTTP = map[kind.Kind]int{
	kind.EmptyValue:         http.StatusBadRequest,
	kind.CollectionEmpty:    http.StatusBadRequest,
	kind.ItemEmptyString:    http.StatusBadRequest,
	kind.ItemWhitespace:     http.StatusBadRequest,
	kind.ItemNulls:          http.StatusBadRequest,
	kind.ItemFailsPredicate: http.StatusBadRequest,
	kind.ValueOutOfRange:    http.StatusBadRequest,
	kind.InvalidURI:         http.StatusBadRequest,

	kind.ItemNotFound:     http.StatusNotFound,
	kind.OperationAborted: http.StatusConflict,
}

// defaultGRPC defines the library's built-in gRPC mappings for every
// violation kind, chosen to align with canonical gRPC status semantics.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.EmptyValue:         codes.InvalidArgument,
	kind.CollectionEmpty:    codes.InvalidArgument,
	kind.ItemEmptyString:    codes.InvalidArgument,
	kind.ItemWhitespace:     codes.InvalidArgument,
	kind.ItemNulls:          codes.InvalidArgument,
	kind.ItemFailsPredicate: codes.InvalidArgument,
	kind.InvalidURI:         codes.InvalidArgument,

	// gRPC distinguishes range violations from other bad arguments.
	kind.ValueOutOfRange: codes.OutOfRange,

	kind.ItemNotFound:     codes.NotFound,
	kind.OperationAborted: codes.Aborted,
}
