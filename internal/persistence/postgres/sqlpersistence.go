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

	"github.com/hyperledger/firefly-common/pkg/dbsql"
)

type sqlPersistence struct {
	db *dbsql.Database

	submissions *dbsql.CrudBase[*submissionRecord]
}

func newSQLPersistence(db *dbsql.Database) *sqlPersistence {
	p := &sqlPersistence{
		db: db,
	}
	p.submissions = p.newSubmissionsCollection()
	return p
}

func (p *sqlPersistence) Close(_ context.Context) {
	p.db.Close()
}
