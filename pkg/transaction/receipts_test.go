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
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-transaction-orchestrator/mocks/chainmocks"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestAggregator(t *testing.T, workers int) (context.Context, *receiptAggregator, *chainmocks.API, *statusRecorder, func()) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	ra := NewReceiptAggregator(mca, o.store, o.metrics, workers, 0).(*receiptAggregator)
	return ctx, ra, mca, sr, cancel
}

func TestAwaitShortHashListNoPromotion(t *testing.T) {
	ctx, ra, _, sr, cancel := newTestAggregator(t, 10)
	defer cancel()

	res := ra.Await(ctx, []common.Hash{testHash(0), testHash(1)}, 3)
	assert.False(t, res.Promoted)
	assert.Empty(t, sr.names())

	res = ra.Await(ctx, nil, 0)
	assert.False(t, res.Promoted)
}

func TestAwaitAllPromotesOnlyAfterEverySettled(t *testing.T) {
	ctx, ra, mca, sr, cancel := newTestAggregator(t, 10)
	defer cancel()

	gate := make(chan struct{})
	waiting := make(chan struct{})
	mca.On("WaitForReceipt", mock.Anything, testHash(0), int64(0)).Return(testReceipt(0), nil)
	mca.On("WaitForReceipt", mock.Anything, testHash(1), int64(0)).Return(testReceipt(1), nil)
	mca.On("WaitForReceipt", mock.Anything, testHash(2), int64(0)).Return(
		func(_ context.Context, _ common.Hash, _ int64) (*types.Receipt, error) {
			close(waiting)
			<-gate
			return testReceipt(2), nil
		},
	)

	done := make(chan *AggregateResult)
	go func() {
		done <- ra.Await(ctx, []common.Hash{testHash(0), testHash(1), testHash(2)}, 3)
	}()

	<-waiting
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, sr.names())
	select {
	case <-done:
		assert.Fail(t, "promoted before every receipt settled")
	default:
	}

	close(gate)
	res := <-done
	assert.True(t, res.Promoted)
	assert.Len(t, res.Receipts, 3)
	assert.Equal(t, []apitypes.LifecycleStatusName{apitypes.StatusSuccess}, sr.names())
}

func TestAwaitAllToleratesFailedWait(t *testing.T) {
	ctx, ra, mca, sr, cancel := newTestAggregator(t, 2)
	defer cancel()

	mca.On("WaitForReceipt", mock.Anything, testHash(0), int64(0)).Return(testReceipt(0), nil).After(10 * time.Millisecond)
	mca.On("WaitForReceipt", mock.Anything, testHash(1), int64(0)).Return(nil, fmt.Errorf("pop"))
	mca.On("WaitForReceipt", mock.Anything, testHash(2), int64(0)).Return(testReceipt(2), nil)

	res := ra.Await(ctx, []common.Hash{testHash(0), testHash(1), testHash(2)}, 3)
	assert.True(t, res.Promoted)
	assert.Equal(t, []common.Hash{testHash(1)}, res.Failed)
	assert.Len(t, res.Receipts, 2)
	assert.Equal(t, testHash(0), res.Receipts[0].TxHash)
	assert.Equal(t, testHash(2), res.Receipts[1].TxHash)

	assert.Len(t, sr.success, 1)
	assert.Len(t, sr.success[0], 2)
	assert.Empty(t, sr.errors)
}

func TestAwaitAllCancelled(t *testing.T) {
	ctx, ra, mca, sr, cancel := newTestAggregator(t, 10)
	defer cancel()

	mca.On("WaitForReceipt", mock.Anything, mock.Anything, int64(0)).Return(nil, fmt.Errorf("cancelled")).Run(func(args mock.Arguments) {
		cancel()
	})

	res := ra.Await(ctx, []common.Hash{testHash(0), testHash(1)}, 2)
	assert.False(t, res.Promoted)
	assert.Error(t, res.Err)
	assert.Empty(t, sr.names())
}

func TestAwaitOneCancelledNoError(t *testing.T) {
	ctx, ra, mca, sr, cancel := newTestAggregator(t, 0)
	defer cancel()

	mca.On("WaitForReceipt", mock.Anything, testHash(0), int64(0)).Return(nil, fmt.Errorf("cancelled")).Run(func(args mock.Arguments) {
		cancel()
	})

	res := ra.Await(ctx, []common.Hash{testHash(0)}, 1)
	assert.False(t, res.Promoted)
	assert.Error(t, res.Err)
	assert.Empty(t, sr.names())
}
