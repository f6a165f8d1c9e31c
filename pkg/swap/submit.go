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
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
)

// Transaction types reported on transactionApproved
const (
	ApprovalTypeERC20   = "ERC20"
	ApprovalTypePermit2 = "Permit2"
)

var (
	Permit2Address         = common.HexToAddress("0x000000000022D473030F116dDEE9F6B43aC78BA3")
	UniversalRouterAddress = common.HexToAddress("0x6fF5693b99212Da76ad316178A184AB56D299b43")

	// Expiry far enough in the future that the Permit2 allowance does not lapse
	permit2Expiration = big.NewInt(20_000_000_000_000)
)

const permit2ABI = `[{
	"type": "function",
	"name": "approve",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "token", "type": "address"},
		{"name": "spender", "type": "address"},
		{"name": "amount", "type": "uint160"},
		{"name": "expiration", "type": "uint48"}
	],
	"outputs": []
}]`

func (o *orchestrator) Submit(ctx context.Context) error {
	req, err := o.buildRequest(ctx)
	if err != nil {
		return err
	}
	o.submit(ctx, req)
	return nil
}

func (o *orchestrator) SubmitAsync(ctx context.Context) error {
	req, err := o.buildRequest(ctx)
	if err != nil {
		return err
	}
	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		o.submit(log.WithLogField(o.ctx, "swap", req.From.Symbol+"->"+req.To.Symbol), req)
	}()
	return nil
}

func (o *orchestrator) buildRequest(ctx context.Context) (*apitypes.BuildSwapRequest, error) {
	account, err := o.chain.Account(ctx)
	if err != nil {
		log.L(ctx).Errorf("No connected account for swap: %s", err)
		return nil, i18n.NewError(ctx, tmmsgs.MsgSwapMissingFields)
	}

	o.mux.Lock()
	from, to := o.from, o.to
	o.mux.Unlock()
	if from.Token == nil || to.Token == nil || from.Amount == "" {
		return nil, i18n.NewError(ctx, tmmsgs.MsgSwapMissingFields)
	}
	return &apitypes.BuildSwapRequest{
		QuoteRequest: apitypes.QuoteRequest{
			Amount:        from.Amount,
			From:          from.Token,
			To:            to.Token,
			MaxSlippage:   o.currentMaxSlippage(),
			UseAggregator: o.useAggregator,
		},
		FromAddress: account.Address,
	}, nil
}

func (o *orchestrator) submit(ctx context.Context, req *apitypes.BuildSwapRequest) {
	tx, swapErr, err := o.api.BuildSwapTransaction(ctx, req)
	if err == nil && swapErr != nil {
		o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.ErrorData{
			Code:    swapErr.Code,
			Error:   swapErr.Error,
			Message: swapErr.Message,
		}))
		return
	}
	var receipt *types.Receipt
	if err == nil {
		receipt, err = o.processSwapTransaction(ctx, tx)
	}
	if err != nil {
		log.L(ctx).Errorf("Swap of %s %s failed: %s", req.Amount, req.From.Symbol, err)
		o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.ErrorData{
			Code:    ErrorCodeSubmit,
			Error:   err.Error(),
			Message: chain.ErrorMessage(err),
		}))
		return
	}

	o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.SuccessData{
		TransactionReceipts: []*types.Receipt{receipt},
	}))
	o.reset(ctx)
}

func (o *orchestrator) processSwapTransaction(ctx context.Context, tx *apitypes.SwapTransaction) (*types.Receipt, error) {
	if tx.Transaction == nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgCallMissingTarget, 0)
	}
	if tx.ApproveTransaction != nil && len(tx.ApproveTransaction.Data) > 0 {
		approvalType := ApprovalTypeERC20
		if !o.useAggregator {
			approvalType = ApprovalTypePermit2
		}
		if err := o.sendApproval(ctx, tx.ApproveTransaction.Call(), tx.ApproveTransaction.ChainID, approvalType); err != nil {
			return nil, err
		}

		// Without the aggregator the router spends through Permit2, which needs its own allowance
		if !o.useAggregator {
			call, err := o.permit2Approval(ctx, tx.Quote)
			if err != nil {
				return nil, err
			}
			if err := o.sendApproval(ctx, call, tx.ApproveTransaction.ChainID, ApprovalTypeERC20); err != nil {
				return nil, err
			}
		}
	}

	return o.sendAndWait(ctx, tx.Transaction.Call(), tx.Transaction.ChainID, ApprovalTypeERC20)
}

func (o *orchestrator) sendApproval(ctx context.Context, call *apitypes.Call, chainID int64, approvalType string) error {
	receipt, err := o.sendAndWait(ctx, call, chainID, approvalType)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return i18n.NewError(ctx, tmmsgs.MsgReceiptReverted, receipt.TxHash)
	}
	return nil
}

// sendAndWait moves through transactionPending and transactionApproved as the call is
// submitted, then waits for it to be mined
func (o *orchestrator) sendAndWait(ctx context.Context, call *apitypes.Call, chainID int64, transactionType string) (*types.Receipt, error) {
	o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.TransactionPendingData{}))
	hash, err := o.chain.SubmitSingle(ctx, call)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Swap transaction %s submitted", hash)
	o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.TransactionApprovedData{
		TransactionHash: hash,
		TransactionType: transactionType,
	}))
	return o.chain.WaitForReceipt(ctx, hash, chainID)
}

func (o *orchestrator) permit2Approval(ctx context.Context, quote *apitypes.Quote) (*apitypes.Call, error) {
	if quote == nil || quote.From == nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgSwapMissingFields)
	}
	amount, ok := new(big.Int).SetString(quote.FromAmount, 10)
	if !ok {
		return nil, i18n.NewError(ctx, tmmsgs.MsgInvalidAmount, quote.FromAmount)
	}
	permit2, err := abi.JSON(strings.NewReader(permit2ABI))
	if err != nil {
		return nil, err
	}
	data, err := permit2.Pack("approve", common.HexToAddress(quote.From.Address), UniversalRouterAddress, amount, permit2Expiration)
	if err != nil {
		return nil, err
	}
	to := Permit2Address
	return &apitypes.Call{
		To:    &to,
		Data:  data,
		Value: (*hexutil.Big)(big.NewInt(0)),
	}, nil
}

// reset returns the exchange to its initial state, keeping the selected tokens
func (o *orchestrator) reset(ctx context.Context) {
	o.mux.Lock()
	o.supersedeLocked()
	gen := o.gen.id
	for _, s := range []*SideState{&o.from, &o.to} {
		s.Amount = ""
		s.AmountUSD = ""
	}
	o.mux.Unlock()

	maxSlippage := o.maxSlippage
	if v, ok := o.store.Current().StatusData["maxSlippage"].(float64); ok {
		maxSlippage = v
	}
	o.publish(ctx, gen, apitypes.NewStatusUpdate(&apitypes.InitData{
		IsMissingRequiredField: true,
		MaxSlippage:            maxSlippage,
	}))
}
