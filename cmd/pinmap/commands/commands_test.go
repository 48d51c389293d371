package commands

import (
	"bytes"
	"strings"
	"testing"

	"co2ampel-go/variant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildShowOutput(t *testing.T) {
	out := BuildShowOutput()
	require.Len(t, out.Pins, variant.PinCount)
	assert.Equal(t, variant.Count(), out.Count)

	buz := out.Pins[variant.PinBuzzer]
	assert.Equal(t, "PA05", buz.Pad)
	assert.Equal(t, "TCC0/1", buz.PWM)
	assert.Equal(t, "TCC0/1", buz.Timer)
	assert.Nil(t, buz.ADC)

	ls := out.Pins[variant.PinLSensor]
	require.NotNil(t, ls.ADC)
	assert.Equal(t, 0, *ls.ADC)
	require.NotNil(t, ls.EIC)
	assert.Equal(t, 2, *ls.EIC)
}

func TestRunShow_YAML(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := RunShow([]string{"-format", "yaml"}, &stdout, &stderr)
	require.Equal(t, ExitSuccess, code, stderr.String())

	var got ShowOutput
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "co2ampel", got.Board)
	assert.Len(t, got.Pins, variant.PinCount)
	assert.Equal(t, "led", got.Pins[variant.PinLED].Role)
}

func TestRunShow_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, ExitSuccess, RunShow(nil, &stdout, &stderr))
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, variant.PinCount+1)
	assert.Contains(t, lines[variant.PinLED+1], "PA27")
}

func TestRunShow_BadFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, ExitCommandError, RunShow([]string{"-format", "json"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "unknown format")
}

func TestRunValidate(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, ExitSuccess, RunValidate(nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "OK 27 pins, 4 bus interfaces")
}

func TestRunInit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, ExitSuccess, RunInit(nil, &stdout, &stderr))
	s := stdout.String()
	assert.Contains(t, s, "winc_cs")
	assert.Contains(t, s, "group 0: DIR=08640428 OUT=00243300")
	assert.Contains(t, s, "group 1: DIR=00000C00 OUT=00000800")
}
