/*
tracedump is a console utility parsing proof-trace files and dumping
the rule-application records. Usage is

	tracedump [-f text|json|yaml] <file> ...

-f <format> selects the output: "text" prints one statement per line in
concrete syntax, "json" and "yaml" dump the full record structure.

Processing stops at the first file that cannot be read or parsed.
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ava12/prooftrace/term"
	"github.com/ava12/prooftrace/trace"
)

var format string

func main() {
	cmd := &cobra.Command{
		Use:           "tracedump [-f text|json|yaml] <file> ...",
		Short:         "parse proof-trace files and dump the rule-application records",
		Args:          cobra.MinimumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, or yaml")

	if e := cmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	for _, name := range args {
		lines, e := trace.ReadFile(name)
		if e != nil {
			return e
		}
		if e = dump(lines); e != nil {
			return e
		}
	}
	return nil
}

func dump(lines []term.Line) error {
	switch format {
	case "text":
		for _, ln := range lines {
			fmt.Println(ln.String())
		}

	case "json":
		out, e := json.MarshalIndent(lines, "", "  ")
		if e != nil {
			return e
		}
		fmt.Println(string(out))

	case "yaml":
		out, e := yaml.Marshal(lines)
		if e != nil {
			return e
		}
		fmt.Print(string(out))

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
