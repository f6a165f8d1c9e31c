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

package transaction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
)

// ReceiptAggregator waits for the receipts of individually submitted calls, and promotes
// the lifecycle to success once every wait has settled
type ReceiptAggregator interface {
	Await(ctx context.Context, hashes []common.Hash, expectedCount int) *AggregateResult
}

// AggregateResult describes the outcome of one Await
type AggregateResult struct {
	// Promoted is true if the lifecycle was moved to success
	Promoted bool
	// Receipts holds every receipt that resolved, in the order of the input hashes
	Receipts []*types.Receipt
	// Failed holds the hashes whose wait failed
	Failed []common.Hash
	// Err is set when the lifecycle was moved to error instead
	Err error
}

type receiptAggregator struct {
	chain   chain.API
	store   lifecycle.Store
	metrics metrics.SubmissionMetrics
	workers int
	chainID int64
}

func NewReceiptAggregator(chainAPI chain.API, store lifecycle.Store, mm metrics.SubmissionMetrics, workers int, chainID int64) ReceiptAggregator {
	if workers <= 0 {
		workers = 1
	}
	return &receiptAggregator{
		chain:   chainAPI,
		store:   store,
		metrics: mm,
		workers: workers,
		chainID: chainID,
	}
}

func (ra *receiptAggregator) Await(ctx context.Context, hashes []common.Hash, expectedCount int) *AggregateResult {
	if expectedCount <= 0 || len(hashes) != expectedCount {
		log.L(ctx).Debugf("Not waiting for receipts: have %d hashes for %d calls", len(hashes), expectedCount)
		return &AggregateResult{}
	}
	if expectedCount == 1 {
		return ra.awaitOne(ctx, hashes[0])
	}
	return ra.awaitAll(ctx, hashes)
}

func (ra *receiptAggregator) wait(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	startTime := time.Now()
	receipt, err := ra.chain.WaitForReceipt(ctx, hash, ra.chainID)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	ra.metrics.RecordReceiptWait(ctx, outcome, time.Since(startTime).Seconds())
	return receipt, err
}

func (ra *receiptAggregator) awaitOne(ctx context.Context, hash common.Hash) *AggregateResult {
	receipt, err := ra.wait(ctx, hash)
	if err != nil {
		log.L(ctx).Errorf("Receipt wait for %s failed: %s", hash, err)
		if ctx.Err() == nil {
			ra.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.ErrorData{
				Code:    ErrorCodeReceipt,
				Error:   err.Error(),
				Message: chain.GenericErrorMessage,
			}))
		}
		return &AggregateResult{Failed: []common.Hash{hash}, Err: err}
	}
	receipts := []*types.Receipt{receipt}
	ra.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.SuccessData{
		TransactionReceipts: receipts,
	}))
	return &AggregateResult{Promoted: true, Receipts: receipts}
}

func (ra *receiptAggregator) awaitAll(ctx context.Context, hashes []common.Hash) *AggregateResult {
	results := make([]*types.Receipt, len(hashes))
	failed := make([]bool, len(hashes))
	slots := make(chan struct{}, ra.workers)
	var wg sync.WaitGroup
	for i, hash := range hashes {
		wg.Add(1)
		go func(i int, hash common.Hash) {
			defer wg.Done()
			slots <- struct{}{}
			defer func() { <-slots }()
			wctx := log.WithLogField(ctx, "job", fmt.Sprintf("receipt_%.3d", i))
			receipt, err := ra.wait(wctx, hash)
			if err != nil {
				log.L(wctx).Errorf("Receipt wait for %s failed: %s", hash, err)
				failed[i] = true
				return
			}
			results[i] = receipt
		}(i, hash)
	}
	wg.Wait()

	res := &AggregateResult{}
	for i, receipt := range results {
		if failed[i] {
			res.Failed = append(res.Failed, hashes[i])
		} else {
			res.Receipts = append(res.Receipts, receipt)
		}
	}
	if ctx.Err() != nil {
		log.L(ctx).Infof("Receipt waits cancelled with %d of %d resolved", len(res.Receipts), len(hashes))
		res.Err = ctx.Err()
		return res
	}
	log.L(ctx).Infof("All %d receipt waits settled (%d failed)", len(hashes), len(res.Failed))
	ra.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.SuccessData{
		TransactionReceipts: res.Receipts,
	}))
	res.Promoted = true
	return res
}
