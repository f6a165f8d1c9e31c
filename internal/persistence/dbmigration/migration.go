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


package dbmigration

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

const (
	paginationLimit = 50
)

type dbMigration struct {
	source persistence.Persistence
	target persistence.Persistence
}

func (m *dbMigration) run(ctx context.Context) error {

	log.L(ctx).Infof("Migrating submissions")
	var after *fftypes.UUID
	count := 0
	for {
		page, err := m.source.ListSubmissions(ctx, after, paginationLimit, persistence.SortDirectionAscending)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			log.L(ctx).Infof("Migrated %d submissions", count)
			return nil
		}
		for _, sub := range page {
			if err := m.migrateSubmission(ctx, sub); err != nil {
				return err
			}
			count++
		}
		after = page[len(page)-1].ID
	}

}

// migrateSubmission skips submissions already in the target, so an interrupted migration can be re-run
func (m *dbMigration) migrateSubmission(ctx context.Context, sub *apitypes.Submission) error {
	existing, err := m.target.GetSubmission(ctx, sub.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		log.L(ctx).Debugf("Submission %s already migrated", sub.ID)
		return nil
	}
	if sub.Created == nil {
		sub.Created = apitypes.SubmissionIDTime(sub.ID)
	}
	if sub.Updated == nil {
		sub.Updated = sub.Created
	}
	log.L(ctx).Infof("Writing submission %s to target", sub.ID)
	return m.target.WriteSubmission(ctx, sub)
}
