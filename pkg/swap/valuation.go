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

package swap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

// scheduleValuation values an amount of a token in the reference currency after a delay,
// writing the result to the USD amount of the side. Failures leave the USD amount empty.
func (o *orchestrator) scheduleValuation(ctx context.Context, gen uint64, side apitypes.ExchangeSide, token *apitypes.Token, amount string, delay time.Duration) {
	if token == nil {
		return
	}
	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			log.L(ctx).Debugf("Valuation of %s %s cancelled", amount, token.Symbol)
			return
		}
		o.setAmountUSD(gen, side, "")
		usd, err := o.valuation(ctx, token, amount)
		if err != nil {
			log.L(ctx).Debugf("Valuation of %s %s failed: %s", amount, token.Symbol, err)
			o.metrics.RecordValuationFetch(ctx, metrics.OutcomeFailed)
			return
		}
		if o.setAmountUSD(gen, side, usd) {
			o.metrics.RecordValuationFetch(ctx, metrics.OutcomeSuccess)
		} else {
			o.metrics.RecordValuationFetch(ctx, metrics.OutcomeStale)
		}
	}()
}

func (o *orchestrator) setAmountUSD(gen uint64, side apitypes.ExchangeSide, usd string) bool {
	o.mux.Lock()
	defer o.mux.Unlock()
	if o.gen.id != gen {
		return false
	}
	o.side(side).AmountUSD = usd
	return true
}

func (o *orchestrator) valuation(ctx context.Context, token *apitypes.Token, amount string) (string, error) {
	formatted, err := FormatTokenAmount(ctx, amount, token.Decimals)
	if err != nil {
		return "", err
	}
	if token.ChainID == o.reference.ChainID && strings.EqualFold(token.Address, o.reference.Address) {
		return formatted, nil
	}

	cacheKey := fmt.Sprintf("%s:%s", token.Key(), formatted)
	if usd, ok := o.valuations.Get(cacheKey); ok {
		return usd, nil
	}

	quote, swapErr, err := o.api.GetQuote(ctx, &apitypes.QuoteRequest{
		Amount:        formatted,
		From:          token,
		To:            o.reference,
		MaxSlippage:   "0",
		UseAggregator: o.useAggregator,
	})
	if err != nil {
		return "", err
	}
	if swapErr != nil {
		return "", i18n.NewError(ctx, tmmsgs.MsgQuoteAPIFailed, swapErr.Code, swapErr.Error)
	}
	usd, err := FormatTokenAmount(ctx, quote.ToAmount, o.reference.Decimals)
	if err != nil {
		return "", err
	}
	o.valuations.Add(cacheKey, usd)
	return usd, nil
}
