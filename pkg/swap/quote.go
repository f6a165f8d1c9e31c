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
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

func (o *orchestrator) OnAmountChange(ctx context.Context, side apitypes.ExchangeSide, amount string, sourceToken, destToken *apitypes.Token) error {
	if side != apitypes.ExchangeSideFrom && side != apitypes.ExchangeSideTo {
		return i18n.NewError(ctx, tmmsgs.MsgInvalidExchangeSide, side)
	}

	o.mux.Lock()
	gen, quoteCtx, tasksCtx := o.nextGenerationLocked(ctx)
	source, destination := o.sides(side)
	if sourceToken != nil {
		source.Token = sourceToken
	}
	if destToken != nil {
		destination.Token = destToken
	}
	source.Amount = amount

	if source.Token == nil || destination.Token == nil {
		update := o.amountChangeLocked(true)
		o.mux.Unlock()
		o.publish(ctx, gen, update)
		return nil
	}
	if isEmptyAmount(amount) {
		destination.Amount = ""
		o.mux.Unlock()
		return nil
	}

	destination.Loading = true
	// The previous amount of the opposite side no longer applies while quoting
	destination.Amount = ""
	update := o.amountChangeLocked(true)
	req := &apitypes.QuoteRequest{
		Amount:          amount,
		AmountReference: apitypes.ExchangeSideFrom,
		From:            source.Token,
		To:              destination.Token,
		UseAggregator:   o.useAggregator,
	}
	o.mux.Unlock()

	o.publish(ctx, gen, update)
	req.MaxSlippage = o.currentMaxSlippage()
	o.quote(quoteCtx, tasksCtx, gen, side, req)
	return nil
}

func (o *orchestrator) quote(ctx, tasksCtx context.Context, gen uint64, side apitypes.ExchangeSide, req *apitypes.QuoteRequest) {
	defer o.clearLoading(gen, side.Opposite())

	startTime := time.Now()
	quote, swapErr, err := o.api.GetQuote(ctx, req)
	secs := time.Since(startTime).Seconds()
	if !o.isCurrent(gen) {
		log.L(ctx).Debugf("Discarding superseded quote of %s %s", req.Amount, req.From.Symbol)
		o.metrics.RecordQuoteRequest(ctx, metrics.OutcomeStale, secs)
		return
	}

	switch {
	case err != nil:
		log.L(ctx).Errorf("Quote of %s %s failed: %s", req.Amount, req.From.Symbol, err)
		o.metrics.RecordQuoteRequest(ctx, metrics.OutcomeError, secs)
		o.publish(ctx, gen, apitypes.NewStatusUpdate(&apitypes.ErrorData{
			Code:  ErrorCodeQuote,
			Error: err.Error(),
		}))
	case swapErr != nil:
		o.metrics.RecordQuoteRequest(ctx, metrics.OutcomeFailed, secs)
		o.publish(ctx, gen, apitypes.NewStatusUpdate(&apitypes.ErrorData{
			Code:  swapErr.Code,
			Error: swapErr.Error,
		}))
	default:
		o.metrics.RecordQuoteRequest(ctx, metrics.OutcomeSuccess, secs)
		o.applyQuote(ctx, tasksCtx, gen, side, quote)
	}
}

func (o *orchestrator) applyQuote(ctx, tasksCtx context.Context, gen uint64, side apitypes.ExchangeSide, quote *apitypes.Quote) {
	formatted := ""
	if quote.To != nil {
		var err error
		if formatted, err = FormatTokenAmount(ctx, quote.ToAmount, quote.To.Decimals); err != nil {
			o.publish(ctx, gen, apitypes.NewStatusUpdate(&apitypes.ErrorData{
				Code:  ErrorCodeQuote,
				Error: err.Error(),
			}))
			return
		}
	}

	o.mux.Lock()
	if o.gen.id != gen {
		o.mux.Unlock()
		return
	}
	o.side(side.Opposite()).Amount = formatted
	update := o.amountChangeLocked(formatted == "")
	o.mux.Unlock()

	if !o.publish(ctx, gen, update) {
		return
	}
	log.L(ctx).Debugf("Quoted %s %s as %s %s", quote.FromAmount, tokenSymbol(quote.From), quote.ToAmount, tokenSymbol(quote.To))

	o.scheduleValuation(tasksCtx, gen, side.Opposite(), quote.To, quote.ToAmount, o.destinationDelay)
	o.scheduleValuation(tasksCtx, gen, side, quote.From, quote.FromAmount, o.sourceDelay)
}

func (o *orchestrator) clearLoading(gen uint64, side apitypes.ExchangeSide) {
	o.mux.Lock()
	defer o.mux.Unlock()
	if o.gen.id == gen {
		o.side(side).Loading = false
	}
}

func (o *orchestrator) Toggle(ctx context.Context) {
	o.mux.Lock()
	gen, _, _ := o.nextGenerationLocked(ctx)
	o.from.Token, o.to.Token = o.to.Token, o.from.Token
	o.from.Amount, o.to.Amount = o.to.Amount, o.from.Amount
	o.from.AmountUSD, o.to.AmountUSD = o.to.AmountUSD, o.from.AmountUSD
	update := o.amountChangeLocked(o.from.Token == nil || o.to.Token == nil || o.from.Amount == "" || o.to.Amount == "")
	o.mux.Unlock()

	o.publish(ctx, gen, update)
}

func tokenSymbol(t *apitypes.Token) string {
	if t == nil {
		return ""
	}
	return t.Symbol
}
