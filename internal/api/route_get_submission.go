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
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

var getSubmission = func(s *server) *ffapi.Route {
	return &ffapi.Route{
		Name:   "getSubmission",
		Path:   "/submissions/{submissionId}",
		Method: http.MethodGet,
		PathParams: []*ffapi.PathParam{
			{Name: "submissionId", Description: tmmsgs.APIParamSubmissionID},
		},
		QueryParams:     nil,
		Description:     tmmsgs.APIEndpointGetSubmission,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return &apitypes.Submission{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			id, err := fftypes.ParseUUID(r.Req.Context(), r.PP["submissionId"])
			if err != nil {
				return nil, err
			}
			return s.transactions.GetSubmission(r.Req.Context(), id)
		},
	}
}
