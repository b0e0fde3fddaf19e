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

// Package grpcx adapts violations to gRPC status errors and back.
//
// The interceptor maps a *verrors.Violation into a gRPC error whose code
// comes from an apis.StatusMapper and whose details carry the full portable
// record, so a client can reconstruct the violation losslessly with
// ExtractViolation. Errors of any other type pass through untouched.
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"vcheck.dev/verrors"
	"vcheck.dev/verrors/apis"
	"vcheck.dev/verrors/codec"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *verrors.Violation into gRPC errors.
//
// The status code is resolved through the provided apis.StatusMapper; the
// status message is the violation's rendered display string. The violation's
// wire record is attached as a status detail so the other side can rebuild
// the full violation, cause chain included.
func UnaryServerInterceptor(m apis.StatusMapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		v, ok := err.(*verrors.Violation)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		base := gstatus.New(m.GRPCStatus(v.Kind()), v.Render())

		// Try to attach the wire record as details. If it fails — return base.
		if s, err := codec.ToStruct(v); err == nil {
			if anyRec, err := anypb.New(s); err == nil {
				if with, err := base.WithDetails(anyRec); err == nil {
					return nil, with.Err()
				}
			}
		}

		return nil, base.Err()
	}
}

// ExtractViolation pulls a violation out of a gRPC error, if one was
// attached by the interceptor. Useful in tests and client code.
func ExtractViolation(err error) (*verrors.Violation, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		v, err := codec.FromStruct(s)
		if err != nil {
			continue
		}
		return v, true
	}
	return nil, false
}
