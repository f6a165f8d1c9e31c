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
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/retry"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/metrics"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/lifecycle"
)

// Diagnostic codes set on the error status, one per failure site
const (
	ErrorCodeSwitchChain              = "TmTPc01"
	ErrorCodeBatchSettlement          = "TmTPc02"
	ErrorCodeReceipt                  = "TmTPc03"
	ErrorCodeWriteContracts           = "WRITE_CONTRACTS_ERROR"
	ErrorCodeWriteTransaction         = "WRITE_TRANSACTION_ERROR"
	ErrorCodeUncaughtWriteTransaction = "UNCAUGHT_WRITE_TRANSACTION_ERROR"
)

const recentSubmissionsCacheSize = 100

// Orchestrator submits contract calls to the wallet, preferring a single batch and falling
// back to one transaction per call. Every outcome is reported through the lifecycle store.
type Orchestrator interface {
	// Submit runs a submission to completion. An error is only returned for invalid input.
	Submit(ctx context.Context, calls []*apitypes.Call, capabilities *apitypes.Capabilities) (*apitypes.Submission, error)
	// SubmitAsync validates the calls and returns, leaving the submission running in the background
	SubmitAsync(ctx context.Context, calls []*apitypes.Call, capabilities *apitypes.Capabilities) (*apitypes.Submission, error)
	GetSubmission(ctx context.Context, id *fftypes.UUID) (*apitypes.Submission, error)
	// ListSubmissions returns submissions newest first, starting before the "after" ID when set
	ListSubmissions(ctx context.Context, after *fftypes.UUID, limit int) ([]*apitypes.Submission, error)
	// Close waits for background submissions, which exit when the context passed to NewOrchestrator is cancelled
	Close()
}

type orchestrator struct {
	ctx         context.Context
	chain       chain.API
	store       lifecycle.Store
	persistence persistence.Persistence
	metrics     metrics.SubmissionMetrics
	receipts    ReceiptAggregator
	batch       *batchTracker
	chainID     int64
	recent      *lru.Cache[string, *apitypes.Submission]
	inflight    sync.WaitGroup
}

// NewOrchestrator builds an orchestrator. The persistence is optional, and when nil only
// the most recent submissions are kept in memory.
func NewOrchestrator(ctx context.Context, chainAPI chain.API, store lifecycle.Store, p persistence.Persistence, mm metrics.SubmissionMetrics) Orchestrator {
	chainID := config.GetInt64(tmconfig.TransactionsChainID)
	recent, _ := lru.New[string, *apitypes.Submission](recentSubmissionsCacheSize)
	return &orchestrator{
		ctx:         ctx,
		chain:       chainAPI,
		store:       store,
		persistence: p,
		metrics:     mm,
		receipts:    NewReceiptAggregator(chainAPI, store, mm, config.GetInt(tmconfig.TransactionsReceiptWorkers), chainID),
		batch: &batchTracker{
			chain: chainAPI,
			retry: &retry.Retry{
				InitialDelay: config.GetDuration(tmconfig.TransactionsRetryInitDelay),
				MaximumDelay: config.GetDuration(tmconfig.TransactionsRetryMaxDelay),
				Factor:       config.GetFloat64(tmconfig.TransactionsRetryFactor),
			},
			pollInterval: config.GetDuration(tmconfig.TransactionsBatchPollInterval),
		},
		chainID: chainID,
		recent:  recent,
	}
}

func (o *orchestrator) newSubmission(calls []*apitypes.Call) *apitypes.Submission {
	now := fftypes.Now()
	return &apitypes.Submission{
		ID:      apitypes.NewSubmissionID(),
		Created: now,
		Updated: now,
		ChainID: o.chainID,
		Calls:   calls,
		Status:  apitypes.StatusTransactionPending,
	}
}

func (o *orchestrator) Submit(ctx context.Context, calls []*apitypes.Call, capabilities *apitypes.Capabilities) (*apitypes.Submission, error) {
	if err := apitypes.ValidateCalls(ctx, calls); err != nil {
		return nil, err
	}
	sub := o.newSubmission(calls)
	o.run(ctx, sub, capabilities)
	return sub, nil
}

func (o *orchestrator) SubmitAsync(ctx context.Context, calls []*apitypes.Call, capabilities *apitypes.Capabilities) (*apitypes.Submission, error) {
	if err := apitypes.ValidateCalls(ctx, calls); err != nil {
		return nil, err
	}
	sub := o.newSubmission(calls)
	o.writeSubmission(ctx, sub)
	accepted := sub.Copy()
	o.inflight.Add(1)
	go func() {
		defer o.inflight.Done()
		o.run(o.ctx, sub, capabilities)
	}()
	return accepted, nil
}

func (o *orchestrator) GetSubmission(ctx context.Context, id *fftypes.UUID) (*apitypes.Submission, error) {
	if o.persistence != nil {
		sub, err := o.persistence.GetSubmission(ctx, id)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return sub, nil
		}
	} else if sub, ok := o.recent.Get(id.String()); ok {
		return sub.Copy(), nil
	}
	return nil, i18n.NewError(ctx, tmmsgs.MsgSubmissionNotFound, id)
}

func (o *orchestrator) ListSubmissions(ctx context.Context, after *fftypes.UUID, limit int) ([]*apitypes.Submission, error) {
	if o.persistence != nil {
		return o.persistence.ListSubmissions(ctx, after, limit, persistence.SortDirectionDescending)
	}
	// The cache orders by use, so sort on the ID
	recent := o.recent.Values()
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].ID.String() > recent[j].ID.String()
	})
	subs := make([]*apitypes.Submission, 0, len(recent))
	for _, sub := range recent {
		if after != nil && sub.ID.String() >= after.String() {
			continue
		}
		if limit > 0 && len(subs) >= limit {
			break
		}
		subs = append(subs, sub.Copy())
	}
	return subs, nil
}

func (o *orchestrator) Close() {
	o.inflight.Wait()
}

func (o *orchestrator) writeSubmission(ctx context.Context, sub *apitypes.Submission) {
	sub.Updated = fftypes.Now()
	if o.persistence == nil {
		o.recent.Add(sub.ID.String(), sub.Copy())
		return
	}
	// The lifecycle status is authoritative, so a failure to record the submission is not fatal
	if err := o.persistence.WriteSubmission(ctx, sub); err != nil {
		log.L(ctx).Errorf("Failed to record submission %s: %s", sub.ID, err)
	}
}

func (o *orchestrator) run(ctx context.Context, sub *apitypes.Submission, capabilities *apitypes.Capabilities) {
	ctx = log.WithLogField(ctx, "submission", sub.ID.String())
	log.L(ctx).Infof("Submitting %d calls (paymaster=%t)", len(sub.Calls), capabilities.HasPaymaster())

	// Entering pending drops the fields of any earlier error
	o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.TransactionPendingData{}))
	o.writeSubmission(ctx, sub)

	if err := o.switchChain(ctx); err != nil {
		o.fail(ctx, sub, ErrorCodeSwitchChain, err)
		return
	}

	batchID, err := o.chain.SubmitBatch(ctx, sub.Calls, capabilities)
	switch {
	case err == nil:
		o.runBatch(ctx, sub, batchID)
	case chain.IsMethodNotSupported(err):
		log.L(ctx).Infof("Wallet does not support batching, submitting calls individually: %s", err)
		o.runSequential(ctx, sub)
	default:
		o.fail(ctx, sub, ErrorCodeWriteContracts, err)
	}
}

func (o *orchestrator) switchChain(ctx context.Context) error {
	if o.chainID == 0 {
		return nil
	}
	account, err := o.chain.Account(ctx)
	if err != nil {
		return err
	}
	if account.ChainID == o.chainID {
		return nil
	}
	log.L(ctx).Infof("Switching wallet from chain %d to %d", account.ChainID, o.chainID)
	return o.chain.SwitchChain(ctx, o.chainID)
}

func (o *orchestrator) runBatch(ctx context.Context, sub *apitypes.Submission, batchID string) {
	sub.Path = apitypes.SubmissionPathBatch
	sub.BatchID = batchID
	o.metrics.RecordSubmission(ctx, string(sub.Path))
	o.writeSubmission(ctx, sub)

	cs, err := o.batch.waitSettled(ctx, batchID)
	if err != nil {
		log.L(ctx).Infof("Stopped waiting for batch %s: %s", batchID, err)
		return
	}
	sub.TransactionHash = cs.TransactionHash()
	if cs.Status != chain.BatchStatusConfirmed {
		o.fail(ctx, sub, ErrorCodeBatchSettlement, i18n.NewError(ctx, tmmsgs.MsgBatchStatusFailed, batchID, cs.Status))
		return
	}
	o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.SuccessData{
		TransactionReceipts: cs.Receipts,
	}))
	sub.Status = apitypes.StatusSuccess
	o.writeSubmission(ctx, sub)
}

func (o *orchestrator) runSequential(ctx context.Context, sub *apitypes.Submission) {
	sub.Path = apitypes.SubmissionPathSequential
	o.metrics.RecordSubmission(ctx, string(sub.Path))

	// Every call is attempted in order, regardless of earlier failures
	hashes := make([]common.Hash, 0, len(sub.Calls))
	var failure error
	var failureCode string
	for i, call := range sub.Calls {
		code := ErrorCodeWriteTransaction
		hash, err := o.chain.SubmitSingle(ctx, call)
		if err == nil && hash == (common.Hash{}) {
			code = ErrorCodeUncaughtWriteTransaction
			err = i18n.NewError(ctx, tmmsgs.MsgWalletRPCFailed, "eth_sendTransaction", "empty transaction hash")
		}
		if err != nil {
			log.L(ctx).Errorf("Call %d of %d failed: %s", i+1, len(sub.Calls), err)
			o.metrics.RecordSubmissionError(ctx, classify(err))
			// A rejection is reported in preference to any other failure
			if failure == nil || (chain.IsUserRejected(err) && !chain.IsUserRejected(failure)) {
				failure, failureCode = err, code
			}
			continue
		}
		log.L(ctx).Infof("Call %d of %d submitted as %s", i+1, len(sub.Calls), hash)
		hashes = append(hashes, hash)
	}
	sub.TransactionHashes = hashes

	if failure != nil {
		o.publishError(ctx, sub, failureCode, failure)
		return
	}

	o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.TransactionLegacyExecutedData{
		TransactionHashList: hashes,
	}))
	sub.Status = apitypes.StatusTransactionLegacyExecuted
	o.writeSubmission(ctx, sub)

	res := o.receipts.Await(ctx, hashes, len(sub.Calls))
	switch {
	case res.Promoted:
		sub.Status = apitypes.StatusSuccess
		if len(res.Failed) > 0 {
			sub.Error = i18n.NewError(ctx, tmmsgs.MsgReceiptWaitFailed, res.Failed[0], chain.GenericErrorMessage).Error()
		}
	case res.Err != nil && ctx.Err() == nil:
		sub.Status = apitypes.StatusError
		sub.Error = res.Err.Error()
	}
	o.writeSubmission(ctx, sub)
}

func classify(err error) string {
	switch {
	case chain.IsUserRejected(err):
		return metrics.ClassificationUserRejected
	case chain.IsMethodNotSupported(err):
		return metrics.ClassificationMethodNotSupported
	default:
		return metrics.ClassificationGeneric
	}
}

func (o *orchestrator) fail(ctx context.Context, sub *apitypes.Submission, code string, err error) {
	o.metrics.RecordSubmissionError(ctx, classify(err))
	o.publishError(ctx, sub, code, err)
}

func (o *orchestrator) publishError(ctx context.Context, sub *apitypes.Submission, code string, err error) {
	log.L(ctx).Errorf("Submission failed [%s]: %s", code, err)
	o.store.Update(ctx, apitypes.NewStatusUpdate(&apitypes.ErrorData{
		Code:    code,
		Error:   err.Error(),
		Message: chain.ErrorMessage(err),
	}))
	sub.Status = apitypes.StatusError
	sub.Error = err.Error()
	o.writeSubmission(ctx, sub)
}
