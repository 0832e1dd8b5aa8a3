package main

import (
	"context"
	"flag"
	"log"

	"github.com/proplens/themescope/internal/export"
	"github.com/proplens/themescope/pkg/themescope/store/sqlite"
)

func main() {
	var (
		input = flag.String("input", "", "Path to JSON corpus export (required)")
		db    = flag.String("db", "", "Path to SQLite snapshot database (required)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *db == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	data, err := export.LoadFile(*input)
	if err != nil {
		log.Fatalf("load export: %v", err)
	}
	log.Printf("Loaded %d accounts, %d posts from %s", len(data), data.TotalPosts(), *input)

	st, err := sqlite.Open(ctx, *db)
	if err != nil {
		log.Fatalf("open snapshot %s: %v", *db, err)
	}
	defer st.Close()

	if err := st.SaveCorpus(ctx, data); err != nil {
		log.Fatalf("save snapshot: %v", err)
	}
	log.Printf("Snapshot written to %s", *db)
}
