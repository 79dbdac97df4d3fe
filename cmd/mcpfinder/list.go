package main

import (
	"encoding/json"
	"fmt"

	"github.com/lksrz/mcpfinder"
)

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Output string `short:"o" default:"mcp_servers.json" env:"MCPFINDER_OUTPUT" help:"Collection file path"`
	DB     string `env:"MCPFINDER_DB" help:"Read the collection from a SQLite database instead"`
	Full   bool   `help:"Show full definition bodies"`
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	store, closeStore, err := openStore(deps, c.Output, c.DB)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcpfinder.ErrorMessage(err))
		return err
	}
	defer closeStore()

	entries, err := store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcpfinder.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'mcpfinder run' to harvest some.")
		return nil
	}

	for _, e := range entries {
		if c.Full {
			body, err := json.MarshalIndent(e, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Stdout, string(body))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", e.ID, e.SourceURL)
	}

	return nil
}
