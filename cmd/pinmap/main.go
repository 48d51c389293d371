// pinmap inspects the CO2-Ampel board table on the host.
package main

import (
	"flag"
	"fmt"
	"os"

	"co2ampel-go/cmd/pinmap/commands"

	"github.com/golang/glog"
)

func main() {
	// glog flags (-v, -logtostderr) come before the subcommand.
	flag.Usage = printUsage
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(commands.ExitCommandError)
	}

	cmd, rest := args[0], args[1:]
	glog.V(1).Infof("command %q args %q", cmd, rest)

	var code int
	switch cmd {
	case "show":
		code = commands.RunShow(rest, os.Stdout, os.Stderr)
	case "validate":
		code = commands.RunValidate(rest, os.Stdout, os.Stderr)
	case "init":
		code = commands.RunInit(rest, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		code = commands.ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		code = commands.ExitCommandError
	}
	glog.Flush()
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `pinmap - CO2-Ampel board table tool

Usage:
  pinmap [glog flags] <command> [options]

Commands:
  show       Print the pin table (-format text|yaml)
  validate   Check the pin table and bus routing
  init       Run the boot pin sequence on a simulated PORT and print it`)
}
