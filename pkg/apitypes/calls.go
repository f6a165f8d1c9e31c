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

package apitypes

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
)

// Call is a single contract invocation, with the calldata already ABI encoded.
// Calls are not modified once submitted.
type Call struct {
	To    *common.Address `json:"to"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
}

// ValidateCalls checks a submission has at least one call, and that every call has a target
func ValidateCalls(ctx context.Context, calls []*Call) error {
	if len(calls) == 0 {
		return i18n.NewError(ctx, tmmsgs.MsgNoCallsSupplied)
	}
	for i, c := range calls {
		if c == nil || c.To == nil {
			return i18n.NewError(ctx, tmmsgs.MsgCallMissingTarget, i)
		}
	}
	return nil
}

// PaymasterService requests sponsorship of a batch from an ERC-7677 paymaster
type PaymasterService struct {
	URL string `json:"url"`
}

// Capabilities are the EIP-5792 wallet capabilities requested for a batched submission
type Capabilities struct {
	PaymasterService *PaymasterService `json:"paymasterService,omitempty"`
}

func (c *Capabilities) HasPaymaster() bool {
	return c != nil && c.PaymasterService != nil && c.PaymasterService.URL != ""
}

// SubmissionPath records which channel was used to submit a set of calls
type SubmissionPath string

const (
	SubmissionPathBatch      SubmissionPath = "batch"
	SubmissionPathSequential SubmissionPath = "sequential"
)

// SubmissionResult is exactly one of a single transaction hash, an ordered list of hashes
// (one per call, on the sequential path) or the identifier of a batch
type SubmissionResult struct {
	TransactionHash   *common.Hash  `json:"transactionHash,omitempty"`
	TransactionHashes []common.Hash `json:"transactionHashes,omitempty"`
	BatchID           string        `json:"batchId,omitempty"`
}

// Submission is the record kept of each call to submit a set of calls
type Submission struct {
	ID      *fftypes.UUID       `json:"id"`
	Created *fftypes.FFTime     `json:"created"`
	Updated *fftypes.FFTime     `json:"updated"`
	ChainID int64               `json:"chainId,omitempty"`
	Calls   []*Call             `json:"calls"`
	Path    SubmissionPath      `json:"path,omitempty"`
	Status  LifecycleStatusName `json:"status"`
	Error   string              `json:"error,omitempty"`
	SubmissionResult
}

// Copy returns a copy safe to hand to another goroutine while the original is still being updated
func (s *Submission) Copy() *Submission {
	c := *s
	if s.TransactionHash != nil {
		h := *s.TransactionHash
		c.TransactionHash = &h
	}
	if s.TransactionHashes != nil {
		c.TransactionHashes = append([]common.Hash{}, s.TransactionHashes...)
	}
	return &c
}
