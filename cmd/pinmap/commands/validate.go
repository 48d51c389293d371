package commands

import (
	"flag"
	"fmt"
	"io"

	"co2ampel-go/variant"

	"github.com/golang/glog"
)

// RunValidate checks the shipped table and the bus routing.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}

	pins := variant.Pins()
	if err := variant.Validate(pins[:]); err != nil {
		glog.Errorf("table: %v", err)
		fmt.Fprintf(stdout, "FAIL table: %v\n", err)
		return ExitValidation
	}
	if err := variant.ValidateRouting(); err != nil {
		glog.Errorf("routing: %v", err)
		fmt.Fprintf(stdout, "FAIL routing: %v\n", err)
		return ExitValidation
	}
	fmt.Fprintf(stdout, "OK %d pins, %d bus interfaces\n", variant.Count(), len(variant.Interfaces()))
	return ExitSuccess
}
