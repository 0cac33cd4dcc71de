package pgqb_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	pgqb "github.com/felipeochoa/pgqb"
)

// Singleton PostgreSQL container state, shared across every test in
// this package via sync.Once so each test file doesn't pay container
// startup cost individually — following the same pattern as
// testutil.go's ensureSingleton.
var (
	singletonOnce sync.Once
	singletonDSN  string
	singletonErr  error
)

func ensureSingleton() (string, error) {
	singletonOnce.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("postgres"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithEnv(map[string]string{
				"POSTGRES_INITDB_ARGS": "--auth-host=trust",
			}),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			singletonErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			singletonErr = fmt.Errorf("failed to get connection string: %w", err)
			return
		}
		singletonDSN = dsn
	})
	return singletonDSN, singletonErr
}

// requireExplainable asserts that query parses and plans under a real
// PostgreSQL server by running it through EXPLAIN, catching anything
// this package's lexical rules got wrong that a purely textual test
// could not (reserved-word quoting, operator validity, clause
// ordering).
func requireExplainable(t *testing.T, query string) {
	t.Helper()
	dsn, err := ensureSingleton()
	require.NoError(t, err)
	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.ExecContext(context.Background(), "EXPLAIN "+query)
	require.NoError(t, err, "rendered SQL: %s", query)
}

func TestSerializeSimpleSelect_Explainable(t *testing.T) {
	type row struct {
		ID   pgqb.Expression[int64]
		Name pgqb.Expression[string]
	}
	def := pgqb.NewTable("pg_type", func(alias string, nullable bool) row {
		return row{
			ID:   pgqb.Field[int64](alias, "oid", pgqb.BigInt),
			Name: pgqb.Field[string](alias, "typname", pgqb.Text),
		}
	})
	tbl := def.As("t")
	q, err := pgqb.From(tbl).
		Where(func(r row) pgqb.Expression[bool] {
			return r.Name.Eq(pgqb.ConstLit("int4", pgqb.Text))
		}).
		Select(func(r row) []pgqb.Projected {
			return []pgqb.Projected{pgqb.Proj(r.ID, ""), pgqb.Proj(r.Name, "")}
		}).
		Build()
	require.NoError(t, err)

	sql := pgqb.Serialize(q)
	requireExplainable(t, sql)
}
