package main

import (
	"fmt"

	"github.com/lksrz/mcpfinder"
	"github.com/lksrz/mcpfinder/xurls"
)

// URLsCmd is the "urls" subcommand.
type URLsCmd struct {
	File string `arg:"" help:"Text file to extract URLs from"`
}

// Run executes the urls command.
func (c *URLsCmd) Run(deps *Dependencies) error {
	urls, err := xurls.NewFileSource(c.File).URLs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcpfinder.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs found.")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}
