package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/shopgrid"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	text, err := deps.Sources.ReadSource(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrid.ErrorMessage(err))
		return err
	}

	items, err := deps.Extractor.ExtractItems(text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrid.ErrorMessage(err))
		return err
	}

	for _, item := range items {
		if item.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip: %s\n", shopgrid.ErrorMessage(item.Err))
			continue
		}

		title := item.Raw.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintln(deps.Stdout, title)

		sections := deps.Sections.ParseSections(item.Raw.Description)
		keys := make([]string, 0, len(sections))
		for key := range sections {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", key, firstLine(sections[key]))
		}
	}

	return nil
}

// firstLine truncates a section body to its first line for display.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
