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

package swapapi

import (
	"context"
	"encoding/json"
	"strings"

	resty "github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"golang.org/x/time/rate"
)

const (
	quotePath = "quote"
	tradePath = "trade"
)

// API is the quote and trade building service. Errors reported by the service itself are
// returned as a SwapError, distinct from a failure to reach or understand the service.
type API interface {
	GetQuote(ctx context.Context, req *apitypes.QuoteRequest) (*apitypes.Quote, *apitypes.SwapError, error)
	BuildSwapTransaction(ctx context.Context, req *apitypes.BuildSwapRequest) (*apitypes.SwapTransaction, *apitypes.SwapError, error)
}

type swapClient struct {
	client  *resty.Client
	limiter *rate.Limiter
}

func New(ctx context.Context, conf config.Section) (API, error) {
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	limit := rate.Inf
	if rps := conf.GetFloat64(tmconfig.QuoteAPIRateLimit); rps > 0 {
		limit = rate.Limit(rps)
	}
	burst := conf.GetInt(tmconfig.QuoteAPIRateBurst)
	if burst < 1 {
		burst = 1
	}
	return &swapClient{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

func (c *swapClient) GetQuote(ctx context.Context, req *apitypes.QuoteRequest) (*apitypes.Quote, *apitypes.SwapError, error) {
	var quote apitypes.Quote
	swapErr, err := c.post(ctx, quotePath, req, &quote)
	if err != nil || swapErr != nil {
		return nil, swapErr, err
	}
	return &quote, nil, nil
}

func (c *swapClient) BuildSwapTransaction(ctx context.Context, req *apitypes.BuildSwapRequest) (*apitypes.SwapTransaction, *apitypes.SwapError, error) {
	var tx apitypes.SwapTransaction
	swapErr, err := c.post(ctx, tradePath, req, &tx)
	if err != nil || swapErr != nil {
		return nil, swapErr, err
	}
	return &tx, nil, nil
}

func (c *swapClient) post(ctx context.Context, path string, body, result interface{}) (*apitypes.SwapError, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgQuoteAPIFailed, path, err)
	}
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgQuoteAPIFailed, path, err)
	}

	contentType := res.Header().Get("Content-Type")
	isJSON := strings.HasPrefix(contentType, "application/json")

	// The service reports failures as an error-shaped body, with any HTTP status
	if isJSON {
		var swapErr apitypes.SwapError
		if json.Unmarshal(res.Body(), &swapErr) == nil && swapErr.Error != "" {
			log.L(ctx).Warnf("Quote API '%s' returned error code=%s: %s", path, swapErr.Code, swapErr.Error)
			return &swapErr, nil
		}
	}
	if res.IsError() {
		return nil, i18n.NewError(ctx, tmmsgs.MsgQuoteAPIStatus, path, res.StatusCode(), res.String())
	}
	if !isJSON {
		return nil, i18n.NewError(ctx, tmmsgs.MsgQuoteAPIInvalidContentType, path, contentType)
	}
	if err := json.Unmarshal(res.Body(), result); err != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgQuoteAPIFailed, path, err)
	}
	return nil, nil
}
