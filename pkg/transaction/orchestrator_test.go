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
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/mocks/chainmocks"
	"github.com/hyperledger/firefly-transaction-orchestrator/mocks/persistencemocks"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type codeError struct {
	code int
	msg  string
}

func (e *codeError) Error() string  { return e.msg }
func (e *codeError) ErrorCode() int { return e.code }

type statusRecorder struct {
	mux      sync.Mutex
	statuses []*apitypes.LifecycleStatus
	errors   []*apitypes.ErrorData
	success  [][]*types.Receipt
}

func (sr *statusRecorder) OnStatus(_ context.Context, status *apitypes.LifecycleStatus) {
	sr.mux.Lock()
	defer sr.mux.Unlock()
	sr.statuses = append(sr.statuses, status)
}

func (sr *statusRecorder) OnError(_ context.Context, errData *apitypes.ErrorData) {
	sr.mux.Lock()
	defer sr.mux.Unlock()
	sr.errors = append(sr.errors, errData)
}

func (sr *statusRecorder) OnSuccess(_ context.Context, receipts []*types.Receipt) {
	sr.mux.Lock()
	defer sr.mux.Unlock()
	sr.success = append(sr.success, receipts)
}

func (sr *statusRecorder) names() []apitypes.LifecycleStatusName {
	sr.mux.Lock()
	defer sr.mux.Unlock()
	names := make([]apitypes.LifecycleStatusName, len(sr.statuses))
	for i, s := range sr.statuses {
		names[i] = s.StatusName
	}
	return names
}

func newTestOrchestrator(t *testing.T, chainID int64) (context.Context, *orchestrator, *chainmocks.API, *statusRecorder, func()) {
	tmconfig.Reset()
	config.Set(tmconfig.TransactionsChainID, chainID)
	config.Set(tmconfig.TransactionsBatchPollInterval, "1ms")
	config.Set(tmconfig.TransactionsRetryInitDelay, "1ms")
	config.Set(tmconfig.TransactionsRetryMaxDelay, "5ms")

	ctx, cancel := context.WithCancel(context.Background())
	mca := chainmocks.NewAPI(t)
	store := lifecycle.NewStore(ctx, apitypes.NewStatusUpdate(&apitypes.InitData{
		IsMissingRequiredField: true,
		MaxSlippage:            3,
	}))
	sr := &statusRecorder{}
	store.AddListener(sr)
	o := NewOrchestrator(ctx, mca, store, nil, metrics.NewMetricsManager(ctx)).(*orchestrator)
	return ctx, o, mca, sr, cancel
}

func testCalls(n int) []*apitypes.Call {
	calls := make([]*apitypes.Call, n)
	for i := range calls {
		to := common.BigToAddress(big.NewInt(int64(1000 + i)))
		calls[i] = &apitypes.Call{To: &to, Data: []byte{byte(i)}}
	}
	return calls
}

func testHash(i int) common.Hash {
	return common.BigToHash(big.NewInt(int64(0xaa00 + i)))
}

func testReceipt(i int) *types.Receipt {
	return &types.Receipt{
		TxHash:      testHash(i),
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(int64(100 + i)),
	}
}

var methodNotSupported = fmt.Errorf("wallet_sendCalls: This request method is not supported")

func TestSubmitBatchConfirmed(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(2)
	caps := &apitypes.Capabilities{PaymasterService: &apitypes.PaymasterService{URL: "https://paymaster.example.com"}}
	mca.On("SubmitBatch", mock.Anything, calls, caps).Return("batch1", nil)
	mca.On("CallsStatus", mock.Anything, "batch1").Return(&chain.CallsStatus{
		ID: "batch1", Status: chain.BatchStatusPending,
	}, nil).Once()
	mca.On("CallsStatus", mock.Anything, "batch1").Return(nil, fmt.Errorf("pop")).Once()
	mca.On("CallsStatus", mock.Anything, "batch1").Return(&chain.CallsStatus{
		ID: "batch1", Status: chain.BatchStatusConfirmed,
		Receipts: []*types.Receipt{testReceipt(1)},
	}, nil).Once()

	sub, err := o.Submit(ctx, calls, caps)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.SubmissionPathBatch, sub.Path)
	assert.Equal(t, "batch1", sub.BatchID)
	assert.Equal(t, testHash(1), *sub.TransactionHash)
	assert.Equal(t, apitypes.StatusSuccess, sub.Status)

	assert.Equal(t, []apitypes.LifecycleStatusName{
		apitypes.StatusTransactionPending,
		apitypes.StatusSuccess,
	}, sr.names())
	assert.Len(t, sr.success, 1)
	assert.Equal(t, testHash(1), sr.success[0][0].TxHash)
	assert.Empty(t, sr.errors)
}

func TestSubmitBatchReverted(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(2)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("batch1", nil)
	mca.On("CallsStatus", mock.Anything, "batch1").Return(&chain.CallsStatus{
		ID: "batch1", Status: chain.BatchStatusReverted,
	}, nil)

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusError, sub.Status)
	assert.Regexp(t, "FF21106", sub.Error)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeBatchSettlement, ed.Code)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
	assert.Len(t, sr.errors, 1)
}

func TestSubmitBatchCancelledWhilePending(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()
	config.Set(tmconfig.TransactionsBatchPollInterval, "10s")
	o = NewOrchestrator(ctx, mca, o.store, nil, o.metrics).(*orchestrator)

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("batch1", nil)
	mca.On("CallsStatus", mock.Anything, "batch1").Return(&chain.CallsStatus{
		ID: "batch1", Status: chain.BatchStatusPending,
	}, nil).Run(func(args mock.Arguments) {
		cancel()
	})

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusTransactionPending, sub.Status)
	assert.Equal(t, []apitypes.LifecycleStatusName{apitypes.StatusTransactionPending}, sr.names())
}

func TestSubmitBatchRejected(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(2)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", &chain.RejectedError{})

	_, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeWriteContracts, ed.Code)
	assert.Equal(t, "Request denied.", ed.Message)
	assert.Equal(t, "User rejected the request.", ed.Error)
	assert.Len(t, sr.errors, 1)
	mca.AssertNotCalled(t, "SubmitSingle", mock.Anything, mock.Anything)
}

func TestSubmitBatchRejectedByCode(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", &codeError{code: 4001, msg: "denied"})

	_, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Request denied.", o.store.Current().ErrorData().Message)
}

func TestSubmitBatchGenericFailure(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", fmt.Errorf("insufficient funds"))

	_, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeWriteContracts, ed.Code)
	assert.Equal(t, "insufficient funds", ed.Error)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
}

func TestSubmitInvalidCalls(t *testing.T) {
	ctx, o, _, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	_, err := o.Submit(ctx, nil, nil)
	assert.Regexp(t, "FF21100", err)

	_, err = o.SubmitAsync(ctx, []*apitypes.Call{{}}, nil)
	assert.Regexp(t, "FF21101", err)

	assert.Empty(t, sr.names())
}

func TestSubmitSwitchChain(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 8453)
	defer cancel()

	calls := testCalls(1)
	mca.On("Account", mock.Anything).Return(&chain.Account{ChainID: 1}, nil)
	mca.On("SwitchChain", mock.Anything, int64(8453)).Return(nil)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("batch1", nil)
	mca.On("CallsStatus", mock.Anything, "batch1").Return(&chain.CallsStatus{
		ID: "batch1", Status: chain.BatchStatusConfirmed,
		Receipts: []*types.Receipt{testReceipt(1)},
	}, nil)

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(8453), sub.ChainID)
	assert.Equal(t, apitypes.StatusSuccess, o.store.Current().StatusName)
}

func TestSubmitSwitchChainNotRequired(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 8453)
	defer cancel()

	calls := testCalls(1)
	mca.On("Account", mock.Anything).Return(&chain.Account{ChainID: 8453}, nil)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", fmt.Errorf("pop"))

	_, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	mca.AssertNotCalled(t, "SwitchChain", mock.Anything, mock.Anything)
}

func TestSubmitSwitchChainRejected(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 8453)
	defer cancel()

	mca.On("Account", mock.Anything).Return(&chain.Account{ChainID: 1}, nil)
	mca.On("SwitchChain", mock.Anything, int64(8453)).Return(&chain.RejectedError{})

	sub, err := o.Submit(ctx, testCalls(2), nil)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusError, sub.Status)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeSwitchChain, ed.Code)
	assert.Equal(t, "Request denied.", ed.Message)
	assert.Len(t, sr.errors, 1)
	mca.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitSwitchChainFailed(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 8453)
	defer cancel()

	mca.On("Account", mock.Anything).Return(&chain.Account{ChainID: 1}, nil)
	mca.On("SwitchChain", mock.Anything, int64(8453)).Return(&codeError{code: 4902, msg: "Unrecognized chain ID"})

	_, err := o.Submit(ctx, testCalls(1), nil)
	assert.NoError(t, err)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeSwitchChain, ed.Code)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
}

func TestSubmitAccountFailed(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 8453)
	defer cancel()

	mca.On("Account", mock.Anything).Return(nil, fmt.Errorf("pop"))

	_, err := o.Submit(ctx, testCalls(1), nil)
	assert.NoError(t, err)
	assert.Equal(t, ErrorCodeSwitchChain, o.store.Current().ErrorData().Code)
}

func TestSubmitFallbackPreservesOrder(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(3)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", methodNotSupported)
	var submitted []int
	for i, c := range calls {
		idx := i
		mca.On("SubmitSingle", mock.Anything, c).Return(testHash(i), nil).Run(func(args mock.Arguments) {
			submitted = append(submitted, idx)
		}).Once()
	}
	// The first receipt is the slowest to arrive
	mca.On("WaitForReceipt", mock.Anything, testHash(0), int64(0)).Return(testReceipt(0), nil).After(50 * time.Millisecond)
	mca.On("WaitForReceipt", mock.Anything, testHash(1), int64(0)).Return(testReceipt(1), nil).After(20 * time.Millisecond)
	mca.On("WaitForReceipt", mock.Anything, testHash(2), int64(0)).Return(testReceipt(2), nil)

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, submitted)
	assert.Equal(t, apitypes.SubmissionPathSequential, sub.Path)
	assert.Equal(t, []common.Hash{testHash(0), testHash(1), testHash(2)}, sub.TransactionHashes)
	assert.Equal(t, apitypes.StatusSuccess, sub.Status)

	assert.Equal(t, []apitypes.LifecycleStatusName{
		apitypes.StatusTransactionPending,
		apitypes.StatusTransactionLegacyExecuted,
		apitypes.StatusSuccess,
	}, sr.names())
	assert.Equal(t, []common.Hash{testHash(0), testHash(1), testHash(2)}, sr.statuses[1].StatusData["transactionHashList"])
	assert.Len(t, sr.success, 1)
	receipts := sr.success[0]
	assert.Len(t, receipts, 3)
	for i, r := range receipts {
		assert.Equal(t, testHash(i), r.TxHash)
	}
	// The hash list accumulated by the legacy status survives into success
	assert.NotNil(t, o.store.Current().StatusData["transactionHashList"])
}

func TestSubmitFallbackOnUnsupportedMethodCode(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", &codeError{code: -32601, msg: "the method wallet_sendCalls does not exist"})
	mca.On("SubmitSingle", mock.Anything, calls[0]).Return(testHash(0), nil)
	mca.On("WaitForReceipt", mock.Anything, testHash(0), int64(0)).Return(testReceipt(0), nil)

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusSuccess, sub.Status)

	sd := o.store.Current().SuccessData()
	assert.Len(t, sd.TransactionReceipts, 1)
}

func TestSubmitFallbackSingleReceiptFailure(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", methodNotSupported)
	mca.On("SubmitSingle", mock.Anything, calls[0]).Return(testHash(0), nil)
	mca.On("WaitForReceipt", mock.Anything, testHash(0), int64(0)).Return(nil, fmt.Errorf("dropped"))

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusError, sub.Status)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeReceipt, ed.Code)
	assert.Equal(t, "dropped", ed.Error)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
	assert.Empty(t, sr.success)
}

func TestSubmitFallbackPartialFailureNoPromotion(t *testing.T) {
	ctx, o, mca, sr, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(3)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", methodNotSupported)
	mca.On("SubmitSingle", mock.Anything, calls[0]).Return(testHash(0), nil)
	mca.On("SubmitSingle", mock.Anything, calls[1]).Return(common.Hash{}, fmt.Errorf("nonce too low"))
	mca.On("SubmitSingle", mock.Anything, calls[2]).Return(testHash(2), nil)

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, []common.Hash{testHash(0), testHash(2)}, sub.TransactionHashes)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeWriteTransaction, ed.Code)
	assert.Equal(t, "nonce too low", ed.Error)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
	assert.Len(t, sr.errors, 1)
	assert.Empty(t, sr.success)
	mca.AssertNotCalled(t, "WaitForReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitFallbackRejectionTakesPrecedence(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(3)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", methodNotSupported)
	mca.On("SubmitSingle", mock.Anything, calls[0]).Return(common.Hash{}, fmt.Errorf("pop"))
	mca.On("SubmitSingle", mock.Anything, calls[1]).Return(common.Hash{}, &chain.RejectedError{Message: "User denied transaction signature."})
	mca.On("SubmitSingle", mock.Anything, calls[2]).Return(common.Hash{}, fmt.Errorf("pop again"))

	_, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, "Request denied.", ed.Message)
	assert.Equal(t, "User denied transaction signature.", ed.Error)
	assert.Equal(t, ErrorCodeWriteTransaction, ed.Code)
	mca.AssertNumberOfCalls(t, "SubmitSingle", 3)
}

func TestSubmitFallbackEmptyHash(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", methodNotSupported)
	mca.On("SubmitSingle", mock.Anything, calls[0]).Return(common.Hash{}, nil)

	_, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)

	ed := o.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeUncaughtWriteTransaction, ed.Code)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
}

func TestSubmitClearsPreviousError(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", &chain.RejectedError{}).Once()
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("batch2", nil).Once()
	mca.On("CallsStatus", mock.Anything, "batch2").Return(&chain.CallsStatus{
		ID: "batch2", Status: chain.BatchStatusConfirmed,
		Receipts: []*types.Receipt{testReceipt(1)},
	}, nil)

	_, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusError, o.store.Current().StatusName)

	_, err = o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	status := o.store.Current()
	assert.Equal(t, apitypes.StatusSuccess, status.StatusName)
	for _, k := range []string{apitypes.StatusDataCode, apitypes.StatusDataError, apitypes.StatusDataMessage} {
		assert.NotContains(t, status.StatusData, k)
	}
	// Accumulated from the initial status
	assert.Equal(t, float64(3), status.StatusData["maxSlippage"])
}

func TestSubmitAsyncAndGetSubmission(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("batch1", nil)
	mca.On("CallsStatus", mock.Anything, "batch1").Return(&chain.CallsStatus{
		ID: "batch1", Status: chain.BatchStatusConfirmed,
		Receipts: []*types.Receipt{testReceipt(1)},
	}, nil)

	accepted, err := o.SubmitAsync(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusTransactionPending, accepted.Status)
	o.Close()

	sub, err := o.GetSubmission(ctx, accepted.ID)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.StatusSuccess, sub.Status)
	assert.Equal(t, "batch1", sub.BatchID)

	_, err = o.GetSubmission(ctx, fftypes.NewUUID())
	assert.Regexp(t, "FF21114", err)
}

func TestSubmissionPersistence(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()
	mp := persistencemocks.NewPersistence(t)
	o = NewOrchestrator(ctx, mca, o.store, mp, o.metrics).(*orchestrator)

	calls := testCalls(1)
	mca.On("SubmitBatch", mock.Anything, calls, (*apitypes.Capabilities)(nil)).Return("", fmt.Errorf("pop"))
	var written []apitypes.LifecycleStatusName
	mp.On("WriteSubmission", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full")).Run(func(args mock.Arguments) {
		written = append(written, args[1].(*apitypes.Submission).Status)
	})

	sub, err := o.Submit(ctx, calls, nil)
	assert.NoError(t, err)
	assert.Equal(t, []apitypes.LifecycleStatusName{
		apitypes.StatusTransactionPending,
		apitypes.StatusError,
	}, written)

	mp.On("GetSubmission", mock.Anything, sub.ID).Return(sub, nil)
	mp.On("GetSubmission", mock.Anything, mock.Anything).Return(nil, nil)
	got, err := o.GetSubmission(ctx, sub.ID)
	assert.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)

	_, err = o.GetSubmission(ctx, fftypes.NewUUID())
	assert.Regexp(t, "FF21114", err)
}

func TestGetSubmissionPersistenceFailure(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()
	mp := persistencemocks.NewPersistence(t)
	o = NewOrchestrator(ctx, mca, o.store, mp, o.metrics).(*orchestrator)

	mp.On("GetSubmission", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("pop"))
	_, err := o.GetSubmission(ctx, fftypes.NewUUID())
	assert.Regexp(t, "pop", err)
}

func TestListSubmissionsInMemory(t *testing.T) {
	ctx, o, _, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()

	subs := make([]*apitypes.Submission, 3)
	for i := range subs {
		subs[i] = o.newSubmission(testCalls(1))
		o.writeSubmission(ctx, subs[i])
	}
	// Touch the oldest, so cache order no longer matches creation order
	_, err := o.GetSubmission(ctx, subs[0].ID)
	assert.NoError(t, err)

	list, err := o.ListSubmissions(ctx, nil, 0)
	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, subs[2].ID, list[0].ID)
	assert.Equal(t, subs[1].ID, list[1].ID)
	assert.Equal(t, subs[0].ID, list[2].ID)

	list, err = o.ListSubmissions(ctx, subs[2].ID, 1)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, subs[1].ID, list[0].ID)
}

func TestListSubmissionsPersistence(t *testing.T) {
	ctx, o, mca, _, cancel := newTestOrchestrator(t, 0)
	defer cancel()
	mp := persistencemocks.NewPersistence(t)
	o = NewOrchestrator(ctx, mca, o.store, mp, o.metrics).(*orchestrator)

	after := apitypes.NewSubmissionID()
	mp.On("ListSubmissions", mock.Anything, after, 10, persistence.SortDirectionDescending).Return([]*apitypes.Submission{}, nil)

	list, err := o.ListSubmissions(ctx, after, 10)
	assert.NoError(t, err)
	assert.Empty(t, list)
}
