package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/lksrz/mcpfinder"
	"github.com/lksrz/mcpfinder/fs"
	"github.com/lksrz/mcpfinder/sqlite"
	mcpslog "github.com/lksrz/mcpfinder/slog"
)

// Dependencies holds the shared services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Run  RunCmd  `cmd:"" help:"Fetch URLs and harvest MCP server definitions"`
	List ListCmd `cmd:"" help:"List harvested server definitions"`
	URLs URLsCmd `cmd:"" name:"urls" help:"Show the URLs a file would contribute to a run"`
}

// openStore selects the collection backend: a SQLite database when a
// path is given, the JSON collection file otherwise. The returned
// cleanup must be called when the command is done.
func openStore(deps *Dependencies, output, dbPath string) (mcpfinder.CollectionStore, func() error, error) {
	if dbPath != "" {
		db := sqlite.NewDB(dbPath)
		if err := db.Open(); err != nil {
			return nil, nil, err
		}
		store := mcpslog.NewLoggingStore(sqlite.NewStore(db), deps.Logger)
		return store, db.Close, nil
	}
	store := mcpslog.NewLoggingStore(fs.NewStore(output, fs.WithLogger(deps.Logger)), deps.Logger)
	return store, func() error { return nil }, nil
}
