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
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/retry"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/chain"
)

// batchTracker polls the wallet for the settlement of a batch.
//
// Errors querying the wallet are retried with backoff indefinitely, until the context
// is cancelled. A batch that is still pending is polled again after pollInterval.
type batchTracker struct {
	chain        chain.API
	retry        *retry.Retry
	pollInterval time.Duration
}

func (bt *batchTracker) waitSettled(ctx context.Context, batchID string) (*chain.CallsStatus, error) {
	ctx = log.WithLogField(ctx, "batch", batchID)
	for {
		var cs *chain.CallsStatus
		err := bt.retry.Do(ctx, "batch status", func(_ int) (bool, error) {
			var err error
			cs, err = bt.chain.CallsStatus(ctx, batchID)
			return err != nil, err
		})
		if err != nil {
			return nil, err
		}
		if cs.Status.Final() {
			log.L(ctx).Infof("Batch settled with status %s and %d receipts", cs.Status, len(cs.Receipts))
			return cs, nil
		}
		log.L(ctx).Debugf("Batch still %s", cs.Status)
		select {
		case <-time.After(bt.pollInterval):
		case <-ctx.Done():
			return nil, i18n.NewError(ctx, tmmsgs.MsgShuttingDown)
		}
	}
}
