package commands

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"co2ampel-go/variant"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

// Exit codes shared by all commands.
const (
	ExitSuccess      = 0
	ExitCommandError = 1
	ExitValidation   = 2
)

// PinOutput is one table row for display.
type PinOutput struct {
	Index int    `yaml:"index"`
	Role  string `yaml:"role"`
	Pad   string `yaml:"pad"`
	Type  string `yaml:"type"`
	Attr  string `yaml:"attr"`
	ADC   *int   `yaml:"adc,omitempty"`
	PWM   string `yaml:"pwm,omitempty"`
	Timer string `yaml:"timer,omitempty"`
	EIC   *int   `yaml:"eic,omitempty"`
}

// ShowOutput is the document printed by show.
type ShowOutput struct {
	Board string      `yaml:"board"`
	MCKHz int         `yaml:"mck_hz"`
	Count int         `yaml:"count"`
	Pins  []PinOutput `yaml:"pins"`
}

// BuildShowOutput renders the table.
func BuildShowOutput() ShowOutput {
	out := ShowOutput{Board: "co2ampel", MCKHz: variant.MCKHz, Count: variant.Count()}
	pins := variant.Pins()
	for i, d := range pins {
		row := PinOutput{
			Index: i,
			Role:  variant.Role(i),
			Pad:   d.Name(),
			Type:  d.Type.String(),
			Attr:  d.Attr.String(),
		}
		if d.HasADC() {
			v := int(d.ADC)
			row.ADC = &v
		}
		if d.PWM != variant.NotOnPWM {
			tc, _ := variant.TCInstance(d.PWM.Instance())
			row.PWM = fmt.Sprintf("%s/%d", tc, d.PWM.Channel())
		}
		if d.Timer != variant.NotOnTimer {
			tc, _ := variant.TCInstance(d.Timer.Instance())
			row.Timer = fmt.Sprintf("%s/%d", tc, d.Timer.Channel())
		}
		if d.HasExtInt() {
			v := int(d.EInt)
			row.EIC = &v
		}
		out.Pins = append(out.Pins, row)
	}
	return out
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: text, yaml")
	if err := fs.Parse(args); err != nil {
		return ExitCommandError
	}

	out := BuildShowOutput()
	glog.V(1).Infof("show: %d pins, format %s", out.Count, *format)

	switch *format {
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitCommandError
		}
		fmt.Fprint(stdout, string(data))
	case "text":
		printShowText(stdout, out)
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return ExitCommandError
	}
	return ExitSuccess
}

func printShowText(w io.Writer, out ShowOutput) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDX\tROLE\tPAD\tTYPE\tATTR\tADC\tPWM\tTIMER\tEIC")
	for _, p := range out.Pins {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Index, p.Role, p.Pad, p.Type, p.Attr, optInt(p.ADC), dash(p.PWM), dash(p.Timer), optInt(p.EIC))
	}
	tw.Flush()
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
