package lib

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type Migration struct {
	Name    string
	UpSQL   string
	DownSQL string
}

func ReadMigrationsDir(dir string) ([]*Migration, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	migrations := map[string]*Migration{}

	withMigration := func(name string) *Migration {
		m, ok := migrations[name]
		if !ok {
			m = &Migration{
				Name: name,
			}
			migrations[name] = m
		}
		return m
	}

	// Load all migration files into migrations map
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		filePath := path.Join(dir, file.Name())
		bytes, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}

		name, isUp := parseMigrationFileName(file.Name())
		migration := withMigration(name)
		if isUp {
			migration.UpSQL = string(bytes)
		} else {
			migration.DownSQL = string(bytes)
		}
	}

	// Sort keys lexicographically
	keys := []string{}
	for k := range migrations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []*Migration{}
	for _, k := range keys {
		result = append(result, migrations[k])
	}
	return result, nil
}

func parseMigrationFileName(fileName string) (string, bool) {
	return getMigrationName(fileName), getUpness(fileName)
}

func getMigrationName(fileName string) string {
	dotParts := strings.Split(fileName, ".")
	return dotParts[0]
}

func getUpness(fileName string) bool {
	return !strings.HasSuffix(fileName, ".down.sql")
}

// RunMigrations applies every migration in dir that the database has not seen
// yet, in name order.
func RunMigrations(ctx context.Context, dir string, connectionString string) error {
	migrations, err := ReadMigrationsDir(dir)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return err
	}
	defer db.Close()

	return ApplyMigrations(ctx, db, migrations)
}

func ApplyMigrations(ctx context.Context, db *sql.DB, migrations []*Migration) error {
	err := requireMigrationsTable(ctx, db)
	if err != nil {
		return err
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Name] {
			continue
		}
		err = execMigration(ctx, db, migration)
		if err != nil {
			return err
		}
	}

	return nil
}

// RevertLastMigration runs the down script of the most recently applied
// migration. It returns the reverted migration's name, or "" if nothing was
// applied.
func RevertLastMigration(ctx context.Context, db *sql.DB, migrations []*Migration) (string, error) {
	err := requireMigrationsTable(ctx, db)
	if err != nil {
		return "", err
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return "", err
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		migration := migrations[i]
		if !applied[migration.Name] {
			continue
		}
		if len(migration.DownSQL) == 0 {
			return "", fmt.Errorf("Migration '%s' has no down script", migration.Name)
		}
		return migration.Name, inTx(ctx, db, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, migration.DownSQL)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, "DELETE FROM migrations WHERE name = $1", migration.Name)
			return err
		})
	}

	return "", nil
}

func requireMigrationsTable(ctx context.Context, db *sql.DB) error {
	sql := "CREATE TABLE IF NOT EXISTS migrations (name VARCHAR(200) PRIMARY KEY, at TIMESTAMP WITH TIME ZONE NOT NULL)"
	_, err := db.ExecContext(ctx, sql)
	return err
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func execMigration(ctx context.Context, db *sql.DB, migration *Migration) error {
	err := inTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, migration.UpSQL)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "INSERT INTO migrations (name, at) VALUES ($1, $2)", migration.Name, time.Now())
		return err
	})
	if err != nil {
		return fmt.Errorf("Migration '%s' failed: %w", migration.Name, err)
	}
	return nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
