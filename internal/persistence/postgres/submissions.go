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


package postgres

import (
	"context"
	"encoding/json"

	"github.com/hyperledger/firefly-common/pkg/dbsql"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
)

// SubmissionFilters are the fields submissions can be queried on
var SubmissionFilters = &ffapi.QueryFields{
	"id":      &ffapi.UUIDField{},
	"created": &ffapi.TimeField{},
	"updated": &ffapi.TimeField{},
	"chainid": &ffapi.Int64Field{},
	"path":    &ffapi.StringField{},
	"status":  &ffapi.StringField{},
}

// submissionRecord is the row form of a submission. The calls and the result are
// stored as JSON, as they are only ever read back whole.
type submissionRecord struct {
	ID      *fftypes.UUID
	Created *fftypes.FFTime
	Updated *fftypes.FFTime
	ChainID int64
	Path    string
	Status  string
	Error   string
	Calls   *fftypes.JSONAny
	Result  *fftypes.JSONAny
}

func (r *submissionRecord) GetID() string {
	return r.ID.String()
}

func (r *submissionRecord) SetCreated(t *fftypes.FFTime) {
	r.Created = t
}

func (r *submissionRecord) SetUpdated(t *fftypes.FFTime) {
	r.Updated = t
}

func (p *sqlPersistence) newSubmissionsCollection() *dbsql.CrudBase[*submissionRecord] {
	collection := &dbsql.CrudBase[*submissionRecord]{
		DB:    p.db,
		Table: "submissions",
		Columns: []string{
			dbsql.ColumnID,
			dbsql.ColumnCreated,
			dbsql.ColumnUpdated,
			"chain_id",
			"path",
			"status",
			"error",
			"calls",
			"result",
		},
		FilterFieldMap: map[string]string{
			"sequence": p.db.SequenceColumn(),
			"chainid":  "chain_id",
		},
		PatchDisabled: true,
		NilValue:      func() *submissionRecord { return nil },
		NewInstance:   func() *submissionRecord { return &submissionRecord{} },
		GetFieldPtr: func(inst *submissionRecord, col string) interface{} {
			switch col {
			case dbsql.ColumnID:
				return &inst.ID
			case dbsql.ColumnCreated:
				return &inst.Created
			case dbsql.ColumnUpdated:
				return &inst.Updated
			case "chain_id":
				return &inst.ChainID
			case "path":
				return &inst.Path
			case "status":
				return &inst.Status
			case "error":
				return &inst.Error
			case "calls":
				return &inst.Calls
			case "result":
				return &inst.Result
			}
			return nil
		},
	}
	collection.Validate()
	return collection
}

func toRecord(ctx context.Context, sub *apitypes.Submission) (*submissionRecord, error) {
	calls, err := json.Marshal(sub.Calls)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceMarshalFailed)
	}
	result, err := json.Marshal(&sub.SubmissionResult)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceMarshalFailed)
	}
	return &submissionRecord{
		ID:      sub.ID,
		Created: sub.Created,
		Updated: sub.Updated,
		ChainID: sub.ChainID,
		Path:    string(sub.Path),
		Status:  string(sub.Status),
		Error:   sub.Error,
		Calls:   fftypes.JSONAnyPtrBytes(calls),
		Result:  fftypes.JSONAnyPtrBytes(result),
	}, nil
}

func fromRecord(ctx context.Context, r *submissionRecord) (*apitypes.Submission, error) {
	sub := &apitypes.Submission{
		ID:      r.ID,
		Created: r.Created,
		Updated: r.Updated,
		ChainID: r.ChainID,
		Path:    apitypes.SubmissionPath(r.Path),
		Status:  apitypes.LifecycleStatusName(r.Status),
		Error:   r.Error,
	}
	if r.Calls != nil {
		if err := json.Unmarshal(r.Calls.Bytes(), &sub.Calls); err != nil {
			return nil, i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceUnmarshalFailed)
		}
	}
	if r.Result != nil {
		if err := json.Unmarshal(r.Result.Bytes(), &sub.SubmissionResult); err != nil {
			return nil, i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceUnmarshalFailed)
		}
	}
	return sub, nil
}

// WriteSubmission replaces the whole row. Submissions are written once on creation
// then updated at each step, so the update is attempted first.
func (p *sqlPersistence) WriteSubmission(ctx context.Context, sub *apitypes.Submission) error {
	r, err := toRecord(ctx, sub)
	if err != nil {
		return err
	}
	_, err = p.submissions.Upsert(ctx, r, dbsql.UpsertOptimizationExisting)
	return err
}

func (p *sqlPersistence) GetSubmission(ctx context.Context, id *fftypes.UUID) (*apitypes.Submission, error) {
	r, err := p.submissions.GetByID(ctx, id.String())
	if r == nil || err != nil {
		return nil, err
	}
	return fromRecord(ctx, r)
}

// ListSubmissions pages on the ID, which sorts in creation order as IDs are ULIDs
func (p *sqlPersistence) ListSubmissions(ctx context.Context, after *fftypes.UUID, limit int, dir persistence.SortDirection) ([]*apitypes.Submission, error) {
	fb := SubmissionFilters.NewFilter(ctx)
	var filter ffapi.Filter
	switch {
	case after == nil:
		filter = fb.And()
	case dir == persistence.SortDirectionAscending:
		filter = fb.Gt("id", after.String())
	default:
		filter = fb.Lt("id", after.String())
	}
	if dir == persistence.SortDirectionAscending {
		filter = filter.Sort("id")
	} else {
		filter = filter.Sort("-id")
	}
	if limit > 0 {
		filter = filter.Limit(uint64(limit))
	}
	records, _, err := p.submissions.GetMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	submissions := make([]*apitypes.Submission, len(records))
	for i, r := range records {
		if submissions[i], err = fromRecord(ctx, r); err != nil {
			return nil, err
		}
	}
	return submissions, nil
}

func (p *sqlPersistence) DeleteSubmission(ctx context.Context, id *fftypes.UUID) error {
	return p.submissions.Delete(ctx, id.String())
}
