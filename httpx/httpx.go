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

// Package httpx turns violations into JSON HTTP responses.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"vcheck.dev/verrors"
	"vcheck.dev/verrors/adapter"
	"vcheck.dev/verrors/apis"
)

// Writer is a thin adapter that knows how to turn a *verrors.Violation into
// an HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.StatusMapper
}

// Write resolves the violation's HTTP status via the Mapper and writes the
// client-facing view as a JSON body.
//
// The body is the apis.View shape: kind, family, the rendered message, the
// resolved statuses, and the context fields that were actually supplied. No
// redaction is performed here; higher-level handlers should apply policies
// if needed.
func (w Writer) Write(rw http.ResponseWriter, v *verrors.Violation) {
	if v == nil {
		return
	}

	st := w.Mapper.Status(v.Kind())
	view := adapter.ToView(v, st)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: the body goes through structpb + protojson rather than
	// encoding/json so the serialization rules match the codec's JSON form
	// (explicit nulls, well-known type handling).
	s, err := viewStruct(view)
	if err != nil {
		return
	}
	b, _ := protojson.Marshal(s)
	_, _ = rw.Write(b)
}

// viewStruct lowers a view into a structpb.Struct for protojson.
func viewStruct(view apis.View) (*structpb.Struct, error) {
	m := map[string]any{
		"kind":        view.Kind,
		"family":      view.Family,
		"message":     view.Message,
		"http_status": view.HTTPStatus,
		"grpc_code":   view.GRPCCode,
	}
	if len(view.Fields) > 0 {
		fields := make(map[string]any, len(view.Fields))
		for k, v := range view.Fields {
			fields[k] = v
		}
		m["fields"] = fields
	}
	return structpb.NewStruct(m)
}
