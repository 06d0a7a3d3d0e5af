package test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/graeme-hill/analyzee-go/lib"
	"github.com/stretchr/testify/require"
)

// Runs against a real database, e.g.
// ANALYZEE_TEST_DB="user=postgres password=password sslmode=disable".
func TestHistoryRoundTrip(t *testing.T) {
	connStr := os.Getenv("ANALYZEE_TEST_DB")
	if len(connStr) == 0 {
		t.Skip("ANALYZEE_TEST_DB not set")
	}

	ctx := context.Background()
	migrations, err := lib.ReadMigrationsDir("../migrations")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, lib.ApplyMigrations(ctx, db, migrations))
	defer func() {
		_, err := lib.RevertLastMigration(ctx, db, migrations)
		require.NoError(t, err)
	}()

	// Applying twice is a no-op.
	require.NoError(t, lib.ApplyMigrations(ctx, db, migrations))

	history := lib.NewPostgresHistory(db)
	analyzer := lib.NewAnalyzer(lib.NewSession(), history)

	_, err = analyzer.Run(ctx, lib.SelectSyntax, "int x = 5 ;")
	require.NoError(t, err)
	_, err = analyzer.Run(ctx, lib.SelectSemantics, "y = 1 ;")
	require.NoError(t, err)

	entries, err := history.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, lib.SelectSemantics, entries[0].Selector)
	require.Equal(t, "y = 1 ;", entries[0].Input)
	require.False(t, entries[0].OK)
	require.Equal(t, "Semantics are incorrect: Variable 'y' is not declared.", entries[0].Result)

	require.Equal(t, lib.SelectSyntax, entries[1].Selector)
	require.True(t, entries[1].OK)
}
