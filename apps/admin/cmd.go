package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	termSizeFunc = term.GetSize // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out         io.Writer
	defaultFile string // catalogue used when -file is omitted; empty: built-in sample events
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  catalogue [-file PATH] - list the events of a catalogue (default: the configured one)")
	fmt.Fprintln(cli.out, "  checkcatalogue -file PATH - validate a YAML event catalogue")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	catalogueCmd := flag.NewFlagSet("catalogue", flag.ExitOnError)
	catalogueCmd.SetOutput(cli.out)
	catalogueFile := catalogueCmd.String("file", cli.defaultFile, "Path to a YAML catalogue.")

	checkCatalogueCmd := flag.NewFlagSet("checkcatalogue", flag.ExitOnError)
	checkCatalogueCmd.SetOutput(cli.out)
	checkCatalogueFile := checkCatalogueCmd.String("file", "", "Path to the YAML catalogue to validate.")

	switch args[1] {
	case "catalogue":
		if err := catalogueCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listCatalogue(*catalogueFile, terminalWidth())
	case "checkcatalogue":
		if err := checkCatalogueCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *checkCatalogueFile == "" {
			checkCatalogueCmd.Usage()
			return errHelp
		}
		return cli.checkCatalogue(*checkCatalogueFile)
	default:
		cli.printUsage()
		return errHelp
	}
}

const defaultWidth = 80

func terminalWidth() int {
	width, _, err := termSizeFunc(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
