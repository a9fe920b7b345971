package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/event"
	"github.com/campusunite/backend/storage/catalogue"
)

func (cli *commandLine) listCatalogue(path string, width int) error {
	cat, err := catalogue.New(path)
	if err != nil {
		return errors.Wrap(err, "loading catalogue")
	}
	events, err := cat.Events(context.Background())
	if err != nil {
		return errors.Wrap(err, "reading catalogue")
	}

	for _, e := range events {
		fmt.Fprintln(cli.out, truncate(formatEvent(e), width))
	}
	fmt.Fprintf(cli.out, "%d events\n", len(events))
	return nil
}

func (cli *commandLine) checkCatalogue(path string) error {
	events, err := catalogue.Load(path)
	if err != nil {
		if vErr, ok := errors.Cause(err).(*core.ValidationError); ok {
			for _, fErr := range vErr.Fields {
				fmt.Fprintf(cli.out, "  %s: %s\n", fErr.Field, fErr.Error)
			}
		}
		return err
	}
	fmt.Fprintf(cli.out, "%s: %d events OK\n", path, len(events))
	return nil
}

func formatEvent(e event.Event) string {
	line := fmt.Sprintf("%-4s %-16s %s @ %s", e.ID, e.Date, e.Title, e.Location)
	if e.IsPast {
		line += " (past)"
	}
	if len(e.Tags) > 0 {
		line += " [" + strings.Join(e.Tags, ", ") + "]"
	}
	return line
}

// truncate cuts `s` down to `width` runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
