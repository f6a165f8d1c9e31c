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

	resty "github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swap"
)

type TXOClient interface {
	GetStatus(ctx context.Context) (*apitypes.LifecycleStatus, error)
	GetStatusHistory(ctx context.Context) (*lifecycle.History, error)
	GetSubmission(ctx context.Context, submissionID string) (*apitypes.Submission, error)
	ListSubmissions(ctx context.Context, after string, limit int) ([]*apitypes.Submission, error)
	SubmitCalls(ctx context.Context, req *apitypes.SubmitCallsRequest) (*apitypes.Submission, error)
	GetSwapSides(ctx context.Context) (*swap.Sides, error)
}

type txoClient struct {
	client *resty.Client
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
}

func NewTXOClient(ctx context.Context, staticConfig config.Section) (TXOClient, error) {
	client, err := ffresty.New(ctx, staticConfig)
	if err != nil {
		return nil, err
	}
	return &txoClient{
		client: client,
	}, nil
}
