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

package walletrpc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/retry"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
)

// sendCallsVersion is the EIP-5792 request version sent with wallet_sendCalls
const sendCallsVersion = "1.0"

// Client implements chain.API over the JSON-RPC interface of a wallet, using the
// EIP-5792 methods for batches and eth_sendTransaction for single calls.
type Client struct {
	rpc          *rpc.Client
	eth          *ethclient.Client
	retry        *retry.Retry
	pollInterval time.Duration
}

// New connects to the wallet configured in the supplied section
func New(ctx context.Context, conf config.Section) (*Client, error) {
	url := conf.GetString(tmconfig.WalletURL)
	if url == "" {
		return nil, i18n.NewError(ctx, tmmsgs.MsgWalletURLMissing)
	}
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgWalletRPCFailed, "dial", err)
	}
	return NewWithClient(c), nil
}

// NewWithClient wraps an existing connection, for example an in-process one
func NewWithClient(c *rpc.Client) *Client {
	return &Client{
		rpc: c,
		eth: ethclient.NewClient(c),
		retry: &retry.Retry{
			InitialDelay: config.GetDuration(tmconfig.TransactionsRetryInitDelay),
			MaximumDelay: config.GetDuration(tmconfig.TransactionsRetryMaxDelay),
			Factor:       config.GetFloat64(tmconfig.TransactionsRetryFactor),
		},
		pollInterval: config.GetDuration(tmconfig.TransactionsBatchPollInterval),
	}
}

func (w *Client) Close() {
	w.rpc.Close()
}

func (w *Client) Account(ctx context.Context) (*chain.Account, error) {
	var accounts []common.Address
	if err := w.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgWalletRPCFailed, "eth_accounts", err)
	}
	if len(accounts) == 0 {
		return nil, i18n.NewError(ctx, tmmsgs.MsgWalletNoAccounts)
	}
	chainID, err := w.eth.ChainID(ctx)
	if err != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgWalletRPCFailed, "eth_chainId", err)
	}
	return &chain.Account{
		Address: accounts[0],
		ChainID: chainID.Int64(),
	}, nil
}

type switchChainParams struct {
	ChainID hexutil.Uint64 `json:"chainId"`
}

// SwitchChain returns the error of the wallet unwrapped, so a rejection can be classified
func (w *Client) SwitchChain(ctx context.Context, chainID int64) error {
	err := w.rpc.CallContext(ctx, nil, "wallet_switchEthereumChain", &switchChainParams{
		ChainID: hexutil.Uint64(uint64(chainID)),
	})
	if err != nil {
		log.L(ctx).Errorf("wallet_switchEthereumChain to %d failed: %s", chainID, err)
		return err
	}
	return nil
}

type sendCallsParams struct {
	Version      string                 `json:"version"`
	ChainID      hexutil.Uint64         `json:"chainId"`
	From         common.Address         `json:"from"`
	Calls        []*apitypes.Call       `json:"calls"`
	Capabilities *apitypes.Capabilities `json:"capabilities,omitempty"`
}

type sendCallsResult struct {
	ID string `json:"id"`
}

func (w *Client) SubmitBatch(ctx context.Context, calls []*apitypes.Call, capabilities *apitypes.Capabilities) (string, error) {
	account, err := w.Account(ctx)
	if err != nil {
		return "", err
	}
	var res json.RawMessage
	err = w.rpc.CallContext(ctx, &res, "wallet_sendCalls", &sendCallsParams{
		Version:      sendCallsVersion,
		ChainID:      hexutil.Uint64(uint64(account.ChainID)),
		From:         account.Address,
		Calls:        calls,
		Capabilities: capabilities,
	})
	if err != nil {
		log.L(ctx).Errorf("wallet_sendCalls failed: %s", err)
		return "", err
	}
	// Earlier revisions of EIP-5792 return the identifier as a bare string
	var batchID string
	if err := json.Unmarshal(res, &batchID); err != nil {
		var result sendCallsResult
		if err := json.Unmarshal(res, &result); err != nil {
			return "", i18n.NewError(ctx, tmmsgs.MsgWalletRPCFailed, "wallet_sendCalls", err)
		}
		batchID = result.ID
	}
	log.L(ctx).Infof("Submitted batch of %d calls as %s", len(calls), batchID)
	return batchID, nil
}

type sendTransactionArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
}

func (w *Client) SubmitSingle(ctx context.Context, call *apitypes.Call) (common.Hash, error) {
	account, err := w.Account(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	var hash common.Hash
	err = w.rpc.CallContext(ctx, &hash, "eth_sendTransaction", &sendTransactionArgs{
		From:  account.Address,
		To:    call.To,
		Data:  call.Data,
		Value: call.Value,
	})
	if err != nil {
		log.L(ctx).Errorf("eth_sendTransaction failed: %s", err)
		return common.Hash{}, err
	}
	log.L(ctx).Infof("Submitted transaction %s", hash)
	return hash, nil
}

type callLog struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
	Data    hexutil.Bytes  `json:"data"`
}

type callReceipt struct {
	Logs            []*callLog     `json:"logs"`
	Status          hexutil.Uint64 `json:"status"`
	BlockHash       common.Hash    `json:"blockHash"`
	BlockNumber     hexutil.Big    `json:"blockNumber"`
	GasUsed         hexutil.Uint64 `json:"gasUsed"`
	TransactionHash common.Hash    `json:"transactionHash"`
}

type callsStatusResult struct {
	ID       string          `json:"id,omitempty"`
	Status   json.RawMessage `json:"status"`
	Receipts []*callReceipt  `json:"receipts"`
}

func (cr *callReceipt) toReceipt() *types.Receipt {
	bn := cr.BlockNumber.ToInt()
	r := &types.Receipt{
		Status:      uint64(cr.Status),
		BlockHash:   cr.BlockHash,
		BlockNumber: bn,
		GasUsed:     uint64(cr.GasUsed),
		TxHash:      cr.TransactionHash,
		Logs:        make([]*types.Log, len(cr.Logs)),
	}
	for i, l := range cr.Logs {
		r.Logs[i] = &types.Log{
			Address:     l.Address,
			Topics:      l.Topics,
			Data:        l.Data,
			BlockNumber: bn.Uint64(),
			TxHash:      cr.TransactionHash,
			BlockHash:   cr.BlockHash,
		}
	}
	return r
}

func parseBatchStatus(raw json.RawMessage) (chain.BatchStatus, bool) {
	var code int
	if err := json.Unmarshal(raw, &code); err == nil {
		switch {
		case code >= 100 && code < 200:
			return chain.BatchStatusPending, true
		case code >= 200 && code < 300:
			return chain.BatchStatusConfirmed, true
		case code >= 400 && code < 500:
			return chain.BatchStatusFailed, true
		case code >= 500 && code < 600:
			return chain.BatchStatusReverted, true
		case code >= 600 && code < 700:
			return chain.BatchStatusPartiallyReverted, true
		}
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch s {
		case "PENDING":
			return chain.BatchStatusPending, true
		case "CONFIRMED":
			return chain.BatchStatusConfirmed, true
		}
	}
	return "", false
}

func (w *Client) CallsStatus(ctx context.Context, batchID string) (*chain.CallsStatus, error) {
	var res callsStatusResult
	if err := w.rpc.CallContext(ctx, &res, "wallet_getCallsStatus", batchID); err != nil {
		return nil, i18n.NewError(ctx, tmmsgs.MsgWalletRPCFailed, "wallet_getCallsStatus", err)
	}
	status, ok := parseBatchStatus(res.Status)
	if !ok {
		return nil, i18n.NewError(ctx, tmmsgs.MsgUnsupportedWalletCapability, batchID, string(res.Status))
	}
	cs := &chain.CallsStatus{
		ID:       batchID,
		Status:   status,
		Receipts: make([]*types.Receipt, len(res.Receipts)),
	}
	for i, r := range res.Receipts {
		cs.Receipts[i] = r.toReceipt()
	}
	return cs, nil
}

// WaitForReceipt polls for the receipt until it is available. Failures of the node are
// retried with backoff, while a receipt that is not yet available is re-checked on the
// poll interval. The wallet connection serves a single chain, so chainID is informational.
func (w *Client) WaitForReceipt(ctx context.Context, hash common.Hash, chainID int64) (*types.Receipt, error) {
	ctx = log.WithLogField(ctx, "tx", hash.String())
	for {
		var receipt *types.Receipt
		err := w.retry.Do(ctx, "receipt check", func(_ int) (bool, error) {
			r, err := w.eth.TransactionReceipt(ctx, hash)
			if err != nil {
				if errors.Is(err, ethereum.NotFound) {
					log.L(ctx).Debugf("Receipt for transaction %s not yet available", hash)
					return false, nil
				}
				return true, err
			}
			receipt = r
			return false, nil
		})
		if err != nil {
			return nil, i18n.NewError(ctx, tmmsgs.MsgReceiptWaitFailed, hash, err)
		}
		if receipt != nil {
			log.L(ctx).Infof("Receipt for transaction %s on chain %d in block %s status=%d", hash, chainID, receipt.BlockNumber, receipt.Status)
			return receipt, nil
		}
		select {
		case <-time.After(w.pollInterval):
		case <-ctx.Done():
			return nil, i18n.NewError(ctx, tmmsgs.MsgReceiptWaitFailed, hash, ctx.Err())
		}
	}
}
