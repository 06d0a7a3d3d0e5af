package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/graeme-hill/analyzee-go/lib"
)

func main() {
	dir := flag.String("dir", "./migrations", "directory containing *.up.sql and *.down.sql files")
	conn := flag.String("db", os.Getenv("ANALYZEE_DB"), "postgres connection string (default $ANALYZEE_DB)")
	down := flag.Bool("down", false, "revert the most recently applied migration instead")
	flag.Parse()

	if len(*conn) == 0 {
		log.Fatal("no connection string: pass -db or set ANALYZEE_DB")
	}

	ctx := context.Background()

	if !*down {
		if err := lib.RunMigrations(ctx, *dir, *conn); err != nil {
			log.Fatal(err)
		}
		log.Printf("migrations in %s applied", *dir)
		return
	}

	migrations, err := lib.ReadMigrationsDir(*dir)
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", *conn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	name, err := lib.RevertLastMigration(ctx, db, migrations)
	if err != nil {
		log.Fatal(err)
	}
	if len(name) == 0 {
		log.Print("nothing to revert")
		return
	}
	log.Printf("reverted %s", name)
}
