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
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/dbsql"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
)

func newMockSQLPersistence(t *testing.T) (context.Context, *sqlPersistence, sqlmock.Sqlmock, func()) {

	ctx, cancelCtx := context.WithCancel(context.Background())
	db, dbm := dbsql.NewMockProvider().UTInit()

	config.RootConfigReset()
	dbconf := config.RootSection("utdb")
	InitConfig(dbconf)

	p := newSQLPersistence(&db.Database)

	return ctx, p, dbm, cancelCtx

}

// initTestPSQL creates a fresh database on a real PostgreSQL, found via the POSTGRES_* environment
func initTestPSQL(t *testing.T) (context.Context, *sqlPersistence, func()) {

	hostname := os.Getenv("POSTGRES_HOSTNAME")
	if hostname == "" {
		t.Skip("POSTGRES_HOSTNAME not set")
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	password := os.Getenv("POSTGRES_PASSWORD")
	if password == "" {
		password = "f1refly"
	}
	dbURL := func(dbname string) string {
		return fmt.Sprintf("postgres://postgres:%s@%s:%s/%s?sslmode=disable", password, hostname, port, dbname)
	}

	config.RootConfigReset()
	ctx, cancelCtx := context.WithCancel(context.Background())
	dbconf := config.RootSection("utdb")
	InitConfig(dbconf)

	utdbName := "ut_" + fftypes.NewUUID().String()
	adminDB, err := sql.Open("postgres", dbURL("postgres"))
	assert.NoError(t, err)
	_, err = adminDB.Exec(fmt.Sprintf(`CREATE DATABASE "%s";`, utdbName))
	assert.NoError(t, err)
	err = adminDB.Close()
	assert.NoError(t, err)

	dbconf.Set(dbsql.SQLConfDatasourceURL, dbURL(utdbName))
	p, err := NewPostgresPersistence(ctx, dbconf)
	assert.NoError(t, err)

	driver, err := psql.GetMigrationDriver(psql.DB())
	assert.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance(
		"file://../../../db/migrations/postgres",
		utdbName,
		driver,
	)
	assert.NoError(t, err)
	err = m.Up()
	assert.NoError(t, err)

	return ctx, p.(*sqlPersistence), func() {
		cancelCtx()
		err := m.Drop()
		assert.NoError(t, err)
		psql.Close()
	}
}

func TestPostgresProvider(t *testing.T) {
	InitConfig(config.RootSection("utdb"))

	assert.Equal(t, "postgres", psql.Name())
	assert.Equal(t, "seq", psql.SequenceColumn())
	assert.Equal(t, "postgres", psql.MigrationsDir())
	assert.Regexp(t, "pg_advisory_xact_lock", psql.Features().AcquireLock("submissions"))
	assert.Equal(t, lockIndex("submissions"), lockIndex("subm____ions"))

	insert, returning := psql.ApplyInsertQueryCustomizations(sq.Insert("submissions").Columns("id").Values("id1"), true)
	assert.True(t, returning)
	sqlStr, _, err := insert.ToSql()
	assert.NoError(t, err)
	assert.Regexp(t, "ON CONFLICT DO NOTHING RETURNING seq", sqlStr)

	db, err := psql.Open("postgres://localhost/ut")
	assert.NoError(t, err)
	_ = db.Close()
}
