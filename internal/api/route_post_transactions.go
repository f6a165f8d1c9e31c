// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package api

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

var postTransactions = func(s *server) *ffapi.Route {
	return &ffapi.Route{
		Name:           "postTransactions",
		Path:           "/transactions",
		Method:         http.MethodPost,
		PathParams:     nil,
		QueryParams:    nil,
		Description:    tmmsgs.APIEndpointPostTransactions,
		JSONInputValue: func() interface{} { return &apitypes.SubmitCallsRequest{} },
		JSONInputSchema: func(_ context.Context, schemaGen ffapi.SchemaGenerator) (*openapi3.SchemaRef, error) {
			return schemaGen(&apitypes.SubmitCallsRequest{})
		},
		JSONOutputSchema: func(_ context.Context, schemaGen ffapi.SchemaGenerator) (*openapi3.SchemaRef, error) {
			return schemaGen(&apitypes.Submission{})
		},
		JSONOutputCodes: []int{http.StatusAccepted},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			req := r.Input.(*apitypes.SubmitCallsRequest)
			return s.transactions.SubmitAsync(r.Req.Context(), req.Calls, req.Capabilities)
		},
	}
}
