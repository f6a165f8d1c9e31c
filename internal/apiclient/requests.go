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
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swap"
)

func (c *txoClient) GetStatus(ctx context.Context) (*apitypes.LifecycleStatus, error) {
	var status apitypes.LifecycleStatus
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("status")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.New(string(resp.Body()))
	}
	return &status, nil
}

func (c *txoClient) GetStatusHistory(ctx context.Context) (*lifecycle.History, error) {
	var history lifecycle.History
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&history).
		Get("status/history")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.New(string(resp.Body()))
	}
	return &history, nil
}

func (c *txoClient) GetSubmission(ctx context.Context, submissionID string) (*apitypes.Submission, error) {
	var sub apitypes.Submission
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&sub).
		Get(fmt.Sprintf("submissions/%s", submissionID))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.New(string(resp.Body()))
	}
	return &sub, nil
}

func (c *txoClient) ListSubmissions(ctx context.Context, after string, limit int) ([]*apitypes.Submission, error) {
	var subs []*apitypes.Submission
	req := c.client.R().
		SetContext(ctx).
		SetResult(&subs)
	if after != "" {
		req = req.SetQueryParam("after", after)
	}
	if limit > 0 {
		req = req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	resp, err := req.Get("submissions")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.New(string(resp.Body()))
	}
	return subs, nil
}

func (c *txoClient) SubmitCalls(ctx context.Context, req *apitypes.SubmitCallsRequest) (*apitypes.Submission, error) {
	var sub apitypes.Submission
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&sub).
		Post("transactions")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.New(string(resp.Body()))
	}
	return &sub, nil
}

func (c *txoClient) GetSwapSides(ctx context.Context) (*swap.Sides, error) {
	var sides swap.Sides
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&sides).
		Get("swap/sides")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.New(string(resp.Body()))
	}
	return &sides, nil
}
