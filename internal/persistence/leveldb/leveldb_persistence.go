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

package leveldb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmmsgs"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type leveldbPersistence struct {
	db         *leveldb.DB
	syncWrites bool
}

func NewLevelDBPersistence(ctx context.Context) (persistence.Persistence, error) {
	dbPath := config.GetString(tmconfig.PersistenceLevelDBPath)
	if dbPath == "" {
		return nil, i18n.NewError(ctx, tmmsgs.MsgLevelDBPathMissing)
	}
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: config.GetInt(tmconfig.PersistenceLevelDBMaxHandles),
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceInitFailed, dbPath)
	}
	return &leveldbPersistence{
		db:         db,
		syncWrites: config.GetBool(tmconfig.PersistenceLevelDBSyncWrites),
	}, nil
}

const submissionsPrefix = "submissions_0/"
const submissionsEnd = "submissions_1"

func prefixedKey(prefix string, id fmt.Stringer) []byte {
	return []byte(fmt.Sprintf("%s%s", prefix, id))
}

func (p *leveldbPersistence) writeKeyValue(ctx context.Context, key, value []byte) error {
	err := p.db.Put(key, value, &opt.WriteOptions{Sync: p.syncWrites})
	if err != nil {
		return i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceWriteFailed, key)
	}
	return nil
}

func (p *leveldbPersistence) writeJSON(ctx context.Context, key []byte, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceMarshalFailed)
	}
	log.L(ctx).Debugf("Wrote %s", key)
	return p.writeKeyValue(ctx, key, b)
}

func (p *leveldbPersistence) getKeyValue(ctx context.Context, key []byte) ([]byte, error) {
	b, err := p.db.Get(key, &opt.ReadOptions{})
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, nil
		}
		return nil, i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceReadFailed, key)
	}
	return b, err
}

func (p *leveldbPersistence) readJSON(ctx context.Context, key []byte, target interface{}) error {
	b, err := p.getKeyValue(ctx, key)
	if err != nil || b == nil {
		return err
	}
	err = json.Unmarshal(b, target)
	if err != nil {
		return i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceUnmarshalFailed)
	}
	log.L(ctx).Debugf("Read %s", key)
	return nil
}

func (p *leveldbPersistence) listJSON(ctx context.Context, collectionPrefix, collectionEnd, after string, limit int,
	dir persistence.SortDirection,
	val func() interface{}, // return a pointer to a pointer variable, of the type to unmarshal
	add func(interface{}), // passes back the val() for adding to the list
) error {
	collectionRange := &util.Range{
		Start: []byte(collectionPrefix),
		Limit: []byte(collectionEnd),
	}
	var it iterator.Iterator
	switch dir {
	case persistence.SortDirectionAscending:
		afterKey := collectionPrefix + after
		if after != "" {
			collectionRange.Start = []byte(afterKey)
		}
		it = p.db.NewIterator(collectionRange, &opt.ReadOptions{DontFillCache: true})
		if after != "" && it.Next() {
			if !strings.HasPrefix(string(it.Key()), afterKey) {
				it.Prev() // skip back, as the first key was already after the "after" key
			}
		}
	default:
		if after != "" {
			collectionRange.Limit = []byte(collectionPrefix + after) // exclusive for limit, so no need to fiddle here
		}
		it = p.db.NewIterator(collectionRange, &opt.ReadOptions{DontFillCache: true})
	}
	defer it.Release()
	return p.iterateJSON(ctx, it, limit, dir, val, add)
}

func (p *leveldbPersistence) iterateJSON(ctx context.Context, it iterator.Iterator, limit int,
	dir persistence.SortDirection, val func() interface{}, add func(interface{}),
) error {
	count := 0
	next := it.Next // forwards we enter this function before the first key
	if dir == persistence.SortDirectionDescending {
		next = it.Last // reverse we enter this function
	}
	for next() {
		if dir == persistence.SortDirectionDescending {
			next = it.Prev
		} else {
			next = it.Next
		}
		v := val()
		err := json.Unmarshal(it.Value(), v)
		if err != nil {
			return i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceUnmarshalFailed)
		}
		add(v)
		count++
		if limit > 0 && count >= limit {
			break
		}
	}
	log.L(ctx).Debugf("Listed %d items", count)
	return it.Error()
}

func (p *leveldbPersistence) deleteKeys(ctx context.Context, keys ...[]byte) error {
	for _, key := range keys {
		err := p.db.Delete(key, &opt.WriteOptions{Sync: p.syncWrites})
		if err != nil && err != leveldb.ErrNotFound {
			return i18n.WrapError(ctx, err, tmmsgs.MsgPersistenceDeleteFailed, key)
		}
		log.L(ctx).Debugf("Deleted %s", key)
	}
	return nil
}

func (p *leveldbPersistence) WriteSubmission(ctx context.Context, sub *apitypes.Submission) error {
	return p.writeJSON(ctx, prefixedKey(submissionsPrefix, sub.ID), sub)
}

func (p *leveldbPersistence) GetSubmission(ctx context.Context, id *fftypes.UUID) (sub *apitypes.Submission, err error) {
	err = p.readJSON(ctx, prefixedKey(submissionsPrefix, id), &sub)
	return sub, err
}

func (p *leveldbPersistence) ListSubmissions(ctx context.Context, after *fftypes.UUID, limit int, dir persistence.SortDirection) ([]*apitypes.Submission, error) {
	afterStr := ""
	if after != nil {
		afterStr = after.String()
	}
	submissions := make([]*apitypes.Submission, 0)
	if err := p.listJSON(ctx, submissionsPrefix, submissionsEnd, afterStr, limit, dir,
		func() interface{} { var v *apitypes.Submission; return &v },
		func(v interface{}) { submissions = append(submissions, *(v.(**apitypes.Submission))) },
	); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (p *leveldbPersistence) DeleteSubmission(ctx context.Context, id *fftypes.UUID) error {
	return p.deleteKeys(ctx, prefixedKey(submissionsPrefix, id))
}

func (p *leveldbPersistence) Close(ctx context.Context) {
	err := p.db.Close()
	if err != nil {
		log.L(ctx).Warnf("Error closing leveldb: %s", err)
	}
}
