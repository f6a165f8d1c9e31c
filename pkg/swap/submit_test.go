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
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	testAccount = &chain.Account{
		Address: common.HexToAddress("0x4a1f0e4b4a1f0e4b4a1f0e4b4a1f0e4b4a1f0e4b"),
		ChainID: 8453,
	}
	testRouter = common.HexToAddress("0x6131B5fae19EA4f9D964eAc0408E4408b66337b5")
)

func testSwapHash(i int) common.Hash {
	return common.BigToHash(big.NewInt(int64(0xbb00 + i)))
}

func testSwapReceipt(i int, status uint64) *types.Receipt {
	return &types.Receipt{
		TxHash:      testSwapHash(i),
		Status:      status,
		BlockNumber: big.NewInt(int64(200 + i)),
	}
}

func testSwapTransaction(withApproval bool) *apitypes.SwapTransaction {
	tx := &apitypes.SwapTransaction{
		Quote: &apitypes.Quote{
			From:       testUSDC,
			FromAmount: "30000000",
			To:         testETH,
			ToAmount:   "10000000000000000",
		},
		Transaction: &apitypes.SwapTransactionCall{
			ChainID: 8453,
			Data:    []byte{0xe4, 0x49, 0x02, 0x2e},
			To:      testRouter,
		},
	}
	if withApproval {
		tx.ApproveTransaction = &apitypes.SwapTransactionCall{
			ChainID: 8453,
			Data:    []byte{0x09, 0x5e, 0xa7, 0xb3},
			To:      common.HexToAddress(testUSDC.Address),
		}
	}
	return tx
}

func callTo(addr common.Address) interface{} {
	return mock.MatchedBy(func(call *apitypes.Call) bool {
		return call.To != nil && *call.To == addr
	})
}

func (ts *testSwap) readyToSubmit() {
	ts.o.from = SideState{Token: testUSDC, Amount: "30", AmountUSD: "30"}
	ts.o.to = SideState{Token: testETH, Amount: "0.01", AmountUSD: "30"}
}

func TestSubmitPermit2ApprovalOK(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.MatchedBy(func(req *apitypes.BuildSwapRequest) bool {
		return req.Amount == "30" && req.FromAddress == testAccount.Address &&
			req.From == testUSDC && req.To == testETH && req.MaxSlippage == "3"
	})).Return(testSwapTransaction(true), nil, nil)

	ts.chain.On("SubmitSingle", mock.Anything, callTo(common.HexToAddress(testUSDC.Address))).Return(testSwapHash(1), nil)
	ts.chain.On("SubmitSingle", mock.Anything, callTo(Permit2Address)).Return(func(_ context.Context, call *apitypes.Call) (common.Hash, error) {
		permit2, err := abi.JSON(strings.NewReader(permit2ABI))
		assert.NoError(t, err)
		method := permit2.Methods["approve"]
		assert.Equal(t, method.ID, []byte(call.Data[:4]))
		args, err := method.Inputs.Unpack(call.Data[4:])
		assert.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testUSDC.Address), args[0])
		assert.Equal(t, UniversalRouterAddress, args[1])
		assert.Equal(t, "30000000", args[2].(*big.Int).String())
		assert.Equal(t, "20000000000000", args[3].(*big.Int).String())
		assert.Equal(t, int64(0), call.Value.ToInt().Int64())
		return testSwapHash(2), nil
	})
	ts.chain.On("SubmitSingle", mock.Anything, callTo(testRouter)).Return(testSwapHash(3), nil)
	for i := 1; i <= 3; i++ {
		ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(i), int64(8453)).Return(testSwapReceipt(i, types.ReceiptStatusSuccessful), nil)
	}

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)

	assert.Equal(t, []apitypes.LifecycleStatusName{
		apitypes.StatusTransactionPending,
		apitypes.StatusTransactionApproved,
		apitypes.StatusTransactionPending,
		apitypes.StatusTransactionApproved,
		apitypes.StatusTransactionPending,
		apitypes.StatusTransactionApproved,
		apitypes.StatusSuccess,
		apitypes.StatusInit,
	}, ts.sr.names())

	ts.sr.mux.Lock()
	approvals := []string{}
	var success *apitypes.LifecycleStatus
	for _, s := range ts.sr.statuses {
		switch s.StatusName {
		case apitypes.StatusTransactionApproved:
			v, _ := s.Variant()
			approvals = append(approvals, v.(*apitypes.TransactionApprovedData).TransactionType)
		case apitypes.StatusSuccess:
			success = s
		}
	}
	ts.sr.mux.Unlock()
	assert.Equal(t, []string{ApprovalTypePermit2, ApprovalTypeERC20, ApprovalTypeERC20}, approvals)
	assert.Equal(t, testSwapHash(3), success.Receipts()[0].TxHash)

	// Amounts reset after success, keeping the tokens
	resetStatus := ts.sr.last()
	assert.Equal(t, true, resetStatus.StatusData["isMissingRequiredField"])
	assert.Equal(t, float64(3), resetStatus.StatusData["maxSlippage"])
	assert.Equal(t, "", ts.o.From().Amount)
	assert.Equal(t, "", ts.o.From().AmountUSD)
	assert.Equal(t, "", ts.o.To().Amount)
	assert.Equal(t, "", ts.o.To().AmountUSD)
	assert.Equal(t, testUSDC, ts.o.From().Token)
	assert.Equal(t, testETH, ts.o.To().Token)
}

func TestSubmitAggregatorApprovalOK(t *testing.T) {
	ts, done := newTestSwap(t, func() {
		config.Set(tmconfig.SwapUseAggregator, true)
	})
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.MatchedBy(func(req *apitypes.BuildSwapRequest) bool {
		return req.UseAggregator
	})).Return(testSwapTransaction(true), nil, nil)
	ts.chain.On("SubmitSingle", mock.Anything, callTo(common.HexToAddress(testUSDC.Address))).Return(testSwapHash(1), nil).Once()
	ts.chain.On("SubmitSingle", mock.Anything, callTo(testRouter)).Return(testSwapHash(3), nil).Once()
	ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(1), int64(8453)).Return(testSwapReceipt(1, types.ReceiptStatusSuccessful), nil)
	ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(3), int64(8453)).Return(testSwapReceipt(3, types.ReceiptStatusSuccessful), nil)

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	assert.Len(t, ts.sr.names(), 6)
	assert.Equal(t, apitypes.StatusInit, ts.store.Current().StatusName)
}

func TestSubmitNoApprovalOK(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(testSwapTransaction(false), nil, nil)
	ts.chain.On("SubmitSingle", mock.Anything, callTo(testRouter)).Return(testSwapHash(3), nil).Once()
	// A reverted swap is still reported as completed, with its receipt
	ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(3), int64(8453)).Return(testSwapReceipt(3, types.ReceiptStatusFailed), nil)

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	assert.Equal(t, []apitypes.LifecycleStatusName{
		apitypes.StatusTransactionPending,
		apitypes.StatusTransactionApproved,
		apitypes.StatusSuccess,
		apitypes.StatusInit,
	}, ts.sr.names())
}

func TestSubmitMissingFields(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)

	ts.o.from = SideState{Token: testUSDC}
	ts.o.to = SideState{Token: testETH}
	err := ts.o.Submit(ts.ctx)
	assert.Regexp(t, "FF21113", err)

	ts.o.from = SideState{Amount: "1"}
	err = ts.o.SubmitAsync(ts.ctx)
	assert.Regexp(t, "FF21113", err)
	assert.Empty(t, ts.sr.names())
}

func TestSubmitNoAccount(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(nil, fmt.Errorf("FF21104: no accounts"))

	err := ts.o.Submit(ts.ctx)
	assert.Regexp(t, "FF21113", err)
}

func TestSubmitBuildSwapError(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(nil, &apitypes.SwapError{
		Code:    "SwErr",
		Error:   "insufficient balance",
		Message: "Insufficient balance",
	}, nil)

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	ed := ts.store.Current().ErrorData()
	assert.Equal(t, "SwErr", ed.Code)
	assert.Equal(t, "insufficient balance", ed.Error)
	assert.Equal(t, "Insufficient balance", ed.Message)
	assert.Equal(t, "30", ts.o.From().Amount)
}

func TestSubmitBuildFailure(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(nil, nil, fmt.Errorf("pop"))

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	ed := ts.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeSubmit, ed.Code)
	assert.Equal(t, "pop", ed.Error)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
}

func TestSubmitRejected(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(testSwapTransaction(true), nil, nil)
	ts.chain.On("SubmitSingle", mock.Anything, mock.Anything).Return(common.Hash{}, fmt.Errorf("wallet: %w", &chain.RejectedError{}))

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	ed := ts.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeSubmit, ed.Code)
	assert.Equal(t, chain.UserRejectedMessage, ed.Message)
	assert.Equal(t, "Request denied.", ed.Message)
	assert.Equal(t, []apitypes.LifecycleStatusName{
		apitypes.StatusTransactionPending,
		apitypes.StatusError,
	}, ts.sr.names())
}

func TestSubmitApprovalReverted(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(testSwapTransaction(true), nil, nil)
	ts.chain.On("SubmitSingle", mock.Anything, mock.Anything).Return(testSwapHash(1), nil).Once()
	ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(1), int64(8453)).Return(testSwapReceipt(1, types.ReceiptStatusFailed), nil)

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	ed := ts.store.Current().ErrorData()
	assert.Equal(t, ErrorCodeSubmit, ed.Code)
	assert.Regexp(t, "FF21115", ed.Error)
	assert.Equal(t, chain.GenericErrorMessage, ed.Message)
}

func TestSubmitReceiptFailure(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(testSwapTransaction(false), nil, nil)
	ts.chain.On("SubmitSingle", mock.Anything, mock.Anything).Return(testSwapHash(3), nil)
	ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(3), int64(8453)).Return(nil, fmt.Errorf("pop"))

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	assert.Equal(t, ErrorCodeSubmit, ts.store.Current().ErrorData().Code)
}

func TestSubmitBadPermit2Amount(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	tx := testSwapTransaction(true)
	tx.Quote.FromAmount = "lots"
	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(tx, nil, nil)
	ts.chain.On("SubmitSingle", mock.Anything, mock.Anything).Return(testSwapHash(1), nil).Once()
	ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(1), int64(8453)).Return(testSwapReceipt(1, types.ReceiptStatusSuccessful), nil)

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	assert.Regexp(t, "FF21111", ts.store.Current().ErrorData().Error)
}

func TestSubmitMissingTransaction(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(&apitypes.SwapTransaction{}, nil, nil)

	err := ts.o.Submit(ts.ctx)
	assert.NoError(t, err)
	assert.Equal(t, ErrorCodeSubmit, ts.store.Current().ErrorData().Code)
}

func TestSubmitAsyncOK(t *testing.T) {
	ts, done := newTestSwap(t)
	defer done()
	ts.readyToSubmit()

	ts.chain.On("Account", mock.Anything).Return(testAccount, nil)
	ts.api.On("BuildSwapTransaction", mock.Anything, mock.Anything).Return(testSwapTransaction(false), nil, nil)
	ts.chain.On("SubmitSingle", mock.Anything, mock.Anything).Return(testSwapHash(3), nil)
	ts.chain.On("WaitForReceipt", mock.Anything, testSwapHash(3), int64(8453)).Return(testSwapReceipt(3, types.ReceiptStatusSuccessful), nil)

	err := ts.o.SubmitAsync(ts.ctx)
	assert.NoError(t, err)
	assert.Eventually(t, func() bool {
		return ts.store.Current().StatusName == apitypes.StatusInit && ts.o.From().Amount == ""
	}, 5*time.Second, time.Millisecond)
}
