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

package persistence

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

type SortDirection int

const (
	SortDirectionDescending SortDirection = iota
	SortDirectionAscending
)

// Persistence stores the record of each submission.
// Submission IDs are ULIDs, so key order is creation order.
type Persistence interface {
	WriteSubmission(ctx context.Context, sub *apitypes.Submission) error
	GetSubmission(ctx context.Context, id *fftypes.UUID) (*apitypes.Submission, error)
	ListSubmissions(ctx context.Context, after *fftypes.UUID, limit int, dir SortDirection) ([]*apitypes.Submission, error)
	DeleteSubmission(ctx context.Context, id *fftypes.UUID) error

	Close(ctx context.Context)
}
