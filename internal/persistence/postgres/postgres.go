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
	"database/sql"
	"fmt"
	"math/big"

	sq "github.com/Masterminds/squirrel"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/dbsql"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/persistence"

	// Import pq driver
	_ "github.com/lib/pq"
)

type Postgres struct {
	dbsql.Database
}

var psql *Postgres

// InitConfig gets called after config reset to initialize the config structure
func InitConfig(conf config.Section) {
	psql = &Postgres{}
	psql.Database.InitConfig(psql, conf)
}

func NewPostgresPersistence(ctx context.Context, conf config.Section) (persistence.Persistence, error) {
	if err := psql.Database.Init(ctx, psql, conf); err != nil {
		return nil, err
	}
	return newSQLPersistence(&psql.Database), nil
}

func (psql *Postgres) Name() string {
	return "postgres"
}

func (psql *Postgres) SequenceColumn() string {
	return "seq"
}

func (psql *Postgres) MigrationsDir() string {
	return psql.Name()
}

// Attempt to create a unique 64-bit int from the given name, by selecting 4 bytes from the
// beginning and end of the string.
func lockIndex(lockName string) int64 {
	if len(lockName) >= 4 {
		lockName = lockName[0:4] + lockName[len(lockName)-4:]
	}
	return big.NewInt(0).SetBytes([]byte(lockName)).Int64()
}

func (psql *Postgres) Features() dbsql.SQLFeatures {
	features := dbsql.DefaultSQLProviderFeatures()
	features.PlaceholderFormat = sq.Dollar
	features.UseILIKE = false // slower than lower()
	features.AcquireLock = func(lockName string) string {
		return fmt.Sprintf(`SELECT pg_advisory_xact_lock(%d);`, lockIndex(lockName))
	}
	features.MultiRowInsert = true
	return features
}

func (psql *Postgres) ApplyInsertQueryCustomizations(insert sq.InsertBuilder, requestConflictEmptyResult bool) (sq.InsertBuilder, bool) {
	suffix := " RETURNING seq"
	if requestConflictEmptyResult {
		// Caller wants us to return an empty result set on insert conflict, rather than an error
		suffix = fmt.Sprintf(" ON CONFLICT DO NOTHING%s", suffix)
	}
	return insert.Suffix(suffix), true
}

func (psql *Postgres) Open(url string) (*sql.DB, error) {
	return sql.Open(psql.Name(), url)
}

func (psql *Postgres) GetMigrationDriver(db *sql.DB) (migratedb.Driver, error) {
	return postgres.WithInstance(db, &postgres.Config{})
}
