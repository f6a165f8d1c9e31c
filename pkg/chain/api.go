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

package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

// API is the capability of a connected wallet, and the chain behind it, to accept
// and settle contract calls.
//
// The submission orchestrator consumes this interface. Signing, gas estimation and
// broadcast are all performed behind it.
type API interface {
	// Account returns the connected address and the chain the wallet is currently on
	Account(ctx context.Context) (*Account, error)

	// SwitchChain asks the wallet to move to another chain. This can be rejected by the user.
	SwitchChain(ctx context.Context, chainID int64) error

	// SubmitBatch submits all calls for atomic execution, returning an identifier to poll with CallsStatus.
	// Wallets that cannot batch return an error matched by IsMethodNotSupported.
	SubmitBatch(ctx context.Context, calls []*apitypes.Call, capabilities *apitypes.Capabilities) (batchID string, err error)

	// SubmitSingle submits one call as its own transaction
	SubmitSingle(ctx context.Context, call *apitypes.Call) (common.Hash, error)

	// CallsStatus returns the settlement state of a batch
	CallsStatus(ctx context.Context, batchID string) (*CallsStatus, error)

	// WaitForReceipt blocks until the transaction is mined, or the context is cancelled.
	// A chainID of zero means the chain the wallet is currently on.
	WaitForReceipt(ctx context.Context, hash common.Hash, chainID int64) (*types.Receipt, error)
}

type Account struct {
	Address common.Address `json:"address"`
	ChainID int64          `json:"chainId"`
}

// BatchStatus is the settlement state of a batch of calls
type BatchStatus string

const (
	BatchStatusPending           BatchStatus = "pending"
	BatchStatusConfirmed         BatchStatus = "confirmed"
	BatchStatusFailed            BatchStatus = "failed"
	BatchStatusReverted          BatchStatus = "reverted"
	BatchStatusPartiallyReverted BatchStatus = "partiallyReverted"
)

// Final is true once the batch will not change state again
func (bs BatchStatus) Final() bool {
	return bs != BatchStatusPending
}

type CallsStatus struct {
	ID       string           `json:"id"`
	Status   BatchStatus      `json:"status"`
	Receipts []*types.Receipt `json:"receipts,omitempty"`
}

// TransactionHash is the hash of the transaction that carried the batch, when the
// batch has been mined
func (cs *CallsStatus) TransactionHash() *common.Hash {
	if cs == nil || len(cs.Receipts) == 0 {
		return nil
	}
	h := cs.Receipts[0].TxHash
	return &h
}
