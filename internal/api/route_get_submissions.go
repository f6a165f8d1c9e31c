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
	"strconv"

	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

var getSubmissions = func(s *server) *ffapi.Route {
	return &ffapi.Route{
		Name:       "getSubmissions",
		Path:       "/submissions",
		Method:     http.MethodGet,
		PathParams: nil,
		QueryParams: []*ffapi.QueryParam{
			{Name: "limit", Description: tmmsgs.APIParamLimit},
			{Name: "after", Description: tmmsgs.APIParamAfter},
		},
		Description:     tmmsgs.APIEndpointGetSubmissions,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return []*apitypes.Submission{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return s.getSubmissions(r.Req.Context(), r.QP["after"], r.QP["limit"])
		},
	}
}

func (s *server) getSubmissions(ctx context.Context, afterStr, limitStr string) ([]*apitypes.Submission, error) {
	limit := 0
	if limitStr != "" {
		l, err := strconv.ParseUint(limitStr, 10, 32)
		if err != nil {
			return nil, i18n.NewError(ctx, tmmsgs.MsgInvalidLimit, limitStr, err)
		}
		limit = int(l)
	}
	var after *fftypes.UUID
	if afterStr != "" {
		var err error
		if after, err = fftypes.ParseUUID(ctx, afterStr); err != nil {
			return nil, err
		}
	}
	return s.transactions.ListSubmissions(ctx, after, limit)
}
