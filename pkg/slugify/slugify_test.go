package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Heat Pump Flow Temperature": "heat_pump_flow_temperature",
		"Delta T (Flow - Return)":    "delta_t_flow_return",
		"  spaced  out  ":            "spaced_out",
		"already_a_slug":             "already_a_slug",
		"3-Way Valve Position":       "3_way_valve_position",
		"WiFi Signal Strength":       "wifi_signal_strength",
		"a__b _ - _ c":               "a_b_c",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Make(input), "input %q", input)
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Heat Pump Flow Temperature",
		"GrantOutgoingTemp",
		"__already--mangled__",
		"Circuit 1 Comfort Temperature",
	}
	for _, input := range inputs {
		once := Make(input)
		assert.Equal(t, once, Make(once), "input %q", input)
	}
}

func TestMakeCharset(t *testing.T) {
	for _, input := range []string{"A!@#B", "--x--", "tempZasilanie", "name (unit)"} {
		out := Make(input)
		assert.NotEmpty(t, out)
		assert.False(t, out[0] == '_' || out[len(out)-1] == '_', "no leading/trailing separator in %q", out)
		for _, r := range out {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
			assert.True(t, valid, "unexpected rune %q in %q", r, out)
		}
	}
}
