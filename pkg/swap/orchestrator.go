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
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/swapapi"
)

// Diagnostic codes set on the error status
const (
	ErrorCodeQuote  = "TmSPc01"
	ErrorCodeSubmit = "TmSPc02"
)

// SideState is a snapshot of one side of the exchange
type SideState struct {
	Token     *apitypes.Token `json:"token,omitempty"`
	Amount    string          `json:"amount"`
	AmountUSD string          `json:"amountUSD"`
	Loading   bool            `json:"loading"`
}

// Sides is a snapshot of both sides of the exchange
type Sides struct {
	From *SideState `json:"from"`
	To   *SideState `json:"to"`
}

// Orchestrator drives the two sides of an exchange from user input, publishing every
// transition to the lifecycle store.
type Orchestrator interface {
	// OnAmountChange sets the amount of one side, optionally changing the tokens, and quotes the other side.
	// Quote failures are reported through the lifecycle store. An error is only returned for an invalid side.
	OnAmountChange(ctx context.Context, side apitypes.ExchangeSide, amount string, sourceToken, destToken *apitypes.Token) error
	// Toggle swaps the tokens and amounts of the two sides
	Toggle(ctx context.Context)
	// Submit builds and sends the swap for the current amounts, returning once it has completed
	Submit(ctx context.Context) error
	// SubmitAsync checks the swap can be built, and sends it in the background
	SubmitAsync(ctx context.Context) error
	From() *SideState
	To() *SideState
	// Close waits for background work, which exits when the context passed to NewOrchestrator is cancelled
	Close()
}

type generation struct {
	id          uint64
	cancelQuote context.CancelFunc
	cancelTasks context.CancelFunc
}

type orchestrator struct {
	ctx     context.Context
	api     swapapi.API
	chain   chain.API
	store   lifecycle.Store
	metrics metrics.SwapMetrics

	maxSlippage      float64
	useAggregator    bool
	destinationDelay time.Duration
	sourceDelay      time.Duration
	reference        *apitypes.Token
	valuations       *expirable.LRU[string, string]

	mux  sync.Mutex
	from SideState
	to   SideState
	gen  generation

	// serializes the freshness check with the publish it guards
	publishMux sync.Mutex

	tasks sync.WaitGroup
}

func NewOrchestrator(ctx context.Context, api swapapi.API, chainAPI chain.API, store lifecycle.Store, mm metrics.SwapMetrics) (Orchestrator, error) {
	refAddress := config.GetString(tmconfig.SwapValuationReferenceAddress)
	if !common.IsHexAddress(refAddress) {
		return nil, i18n.NewError(ctx, tmmsgs.MsgInvalidReferenceToken, refAddress)
	}
	symbol := config.GetString(tmconfig.SwapValuationReferenceSymbol)
	return &orchestrator{
		ctx:              ctx,
		api:              api,
		chain:            chainAPI,
		store:            store,
		metrics:          mm,
		maxSlippage:      config.GetFloat64(tmconfig.SwapMaxSlippage),
		useAggregator:    config.GetBool(tmconfig.SwapUseAggregator),
		destinationDelay: config.GetDuration(tmconfig.SwapValuationDestinationDelay),
		sourceDelay:      config.GetDuration(tmconfig.SwapValuationSourceDelay),
		reference: &apitypes.Token{
			Address:  refAddress,
			ChainID:  config.GetInt64(tmconfig.SwapValuationReferenceChainID),
			Decimals: int32(config.GetInt(tmconfig.SwapValuationReferenceDecimals)),
			Name:     symbol,
			Symbol:   symbol,
		},
		valuations: expirable.NewLRU[string, string](
			config.GetInt(tmconfig.SwapValuationCacheSize),
			nil,
			config.GetDuration(tmconfig.SwapValuationCacheTTL),
		),
	}, nil
}

// InitialStatus is the status of an exchange before any input
func InitialStatus() *apitypes.LifecycleStatusUpdate {
	return apitypes.NewStatusUpdate(&apitypes.InitData{
		IsMissingRequiredField: true,
		MaxSlippage:            config.GetFloat64(tmconfig.SwapMaxSlippage),
	})
}

func (o *orchestrator) From() *SideState {
	o.mux.Lock()
	defer o.mux.Unlock()
	s := o.from
	return &s
}

func (o *orchestrator) To() *SideState {
	o.mux.Lock()
	defer o.mux.Unlock()
	s := o.to
	return &s
}

func (o *orchestrator) Close() {
	o.mux.Lock()
	o.supersedeLocked()
	o.mux.Unlock()
	o.tasks.Wait()
}

// sides returns the edited side and its opposite
func (o *orchestrator) sides(side apitypes.ExchangeSide) (source, destination *SideState) {
	if side == apitypes.ExchangeSideFrom {
		return &o.from, &o.to
	}
	return &o.to, &o.from
}

func (o *orchestrator) side(side apitypes.ExchangeSide) *SideState {
	source, _ := o.sides(side)
	return source
}

// supersedeLocked cancels the in-flight quote and valuations of the current generation.
// Nothing from a superseded generation is written to the sides, or published.
func (o *orchestrator) supersedeLocked() {
	if o.gen.cancelQuote != nil {
		o.gen.cancelQuote()
		o.gen.cancelTasks()
	}
	o.gen.cancelQuote = nil
	o.gen.cancelTasks = nil
	o.gen.id++
	o.from.Loading = false
	o.to.Loading = false
}

// nextGenerationLocked supersedes the current generation, returning a context for the
// quote bound to the caller, and one for background tasks bound to the orchestrator
func (o *orchestrator) nextGenerationLocked(ctx context.Context) (id uint64, quoteCtx, tasksCtx context.Context) {
	o.supersedeLocked()
	quoteCtx, o.gen.cancelQuote = context.WithCancel(ctx)
	tasksCtx, o.gen.cancelTasks = context.WithCancel(o.ctx)
	return o.gen.id, quoteCtx, tasksCtx
}

func (o *orchestrator) isCurrent(id uint64) bool {
	o.mux.Lock()
	defer o.mux.Unlock()
	return o.gen.id == id
}

// publish updates the lifecycle store, unless the generation has been superseded
func (o *orchestrator) publish(ctx context.Context, id uint64, update *apitypes.LifecycleStatusUpdate) bool {
	o.publishMux.Lock()
	defer o.publishMux.Unlock()
	if !o.isCurrent(id) {
		return false
	}
	o.store.Update(ctx, update)
	return true
}

func (o *orchestrator) amountChangeLocked(isMissingRequiredField bool) *apitypes.LifecycleStatusUpdate {
	return apitypes.NewStatusUpdate(&apitypes.AmountChangeData{
		AmountFrom:             o.from.Amount,
		AmountTo:               o.to.Amount,
		TokenFrom:              o.from.Token,
		TokenTo:                o.to.Token,
		IsMissingRequiredField: isMissingRequiredField,
	})
}

// currentMaxSlippage prefers the slippage carried in the lifecycle status, as it can be
// updated independently of the configuration
func (o *orchestrator) currentMaxSlippage() string {
	if v, ok := o.store.Current().StatusData["maxSlippage"].(float64); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(o.maxSlippage, 'f', -1, 64)
}
