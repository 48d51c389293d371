package commands

import (
	"flag"
	"fmt"
	"io"

	"co2ampel-go/port"
	"co2ampel-go/variant"

	"github.com/golang/glog"
)

// RunInit runs the boot sequence on a simulated PORT and prints each step
// and the final group registers.
func RunInit(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}

	s := port.NewSim()
	variant.InitPort(s)
	glog.V(1).Infof("init: %d register writes", s.Writes())

	for _, st := range variant.InitSteps() {
		fmt.Fprintf(stdout, "%-16s %s  %s\n", variant.Role(st.Pin), variant.Pin(st.Pin).Name(), st.Action)
	}
	for g, r := range s.Snapshot() {
		fmt.Fprintf(stdout, "group %d: DIR=%08X OUT=%08X\n", g, r.DIR, r.OUT)
	}
	return ExitSuccess
}
