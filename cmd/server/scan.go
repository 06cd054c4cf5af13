package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/metaconomy/phone-number/pkg/scan"
)

func cmdScan(args []string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	dbPath := fs.String("db", "phonescan.db", "path to the scan database")
	list := fs.Bool("list", false, "list recent scan runs instead of scanning")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := scan.OpenStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open scan db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *list {
		runs, err := store.ListRuns(20)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list runs: %v\n", err)
			os.Exit(1)
		}
		for _, r := range runs {
			fmt.Printf("  #%-4d %-30s lines=%-6d candidates=%-5d viable=%-5d %s\n",
				r.ID, r.Source, r.Lines, r.Candidates, r.Viable,
				time.Unix(r.StartedAt, 0).Format(time.RFC3339))
		}
		return
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: phonescan scan [--db <path>] <file>...")
		os.Exit(1)
	}

	scanner := scan.NewScanner(store, logger)
	ctx := context.Background()

	for _, path := range fs.Args() {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
			os.Exit(1)
		}
		sum, err := scanner.ScanReader(ctx, filepath.Base(path), f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "scan %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s: run #%d, %d lines, %d candidates, %d viable\n",
			path, sum.RunID, sum.Lines, sum.Candidates, sum.Viable)
	}
}
