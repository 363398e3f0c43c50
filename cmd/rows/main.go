package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/podesmap/internal/dataset"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Input GeoJSON file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	var table *dataset.Table
	var err error

	if opts.Input != "" {
		table, err = dataset.Load(opts.Input)
	} else {
		table, err = dataset.Read(os.Stdin)
	}

	var missing *dataset.MissingResourceError
	if errors.As(err, &missing) {
		fmt.Fprintf(os.Stderr, "Error: file %s not found\n", missing.Path)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	outputData, err := encode(table, opts.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully flattened %d features into %d columns to %s (format: %s)\n",
			table.Len(), len(table.Columns), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}

// encode writes the whole table, columns and rows, in the requested format.
func encode(table *dataset.Table, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(table)
	}
	return json.MarshalIndent(table, "", "  ")
}
