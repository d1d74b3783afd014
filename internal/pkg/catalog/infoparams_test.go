package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeInformationParamVisibleNumericString(t *testing.T) {
	raw := json.RawMessage(`[true, [["55.2", "0", "x"]]]`)

	res := DecodeInformationParam("21", raw)

	assert.False(t, res.Skipped)
	assert.Equal(t, "info_compressor_hz", res.Key)
	assert.Equal(t, 55.2, res.Value)
}

func TestDecodeInformationParamHiddenThisCycle(t *testing.T) {
	res := DecodeInformationParam("21", json.RawMessage(`[false, [["55.2"]]]`))
	assert.True(t, res.Skipped)
	assert.Equal(t, "not visible", res.Reason)
}

func TestDecodeInformationParamNumericVisibilityFlag(t *testing.T) {
	res := DecodeInformationParam("22", json.RawMessage(`[1, [["960", "1"]]]`))
	assert.False(t, res.Skipped)
	assert.Equal(t, "info_fan_rpm", res.Key)
	assert.Equal(t, 960.0, res.Value)

	res = DecodeInformationParam("22", json.RawMessage(`[0, [["960", "1"]]]`))
	assert.True(t, res.Skipped)
}

func TestDecodeInformationParamUnmappedID(t *testing.T) {
	res := DecodeInformationParam("9999", json.RawMessage(`[true, [["1"]]]`))
	assert.True(t, res.Skipped)
	assert.Equal(t, "unmapped id", res.Reason)
}

func TestDecodeInformationParamMalformedInput(t *testing.T) {
	cases := map[string]string{
		"not an array":    `{"value": 1}`,
		"too short":       `[true]`,
		"empty rows":      `[true, []]`,
		"empty inner row": `[true, [[]]]`,
		"rows not arrays": `[true, ["55.2"]]`,
		"garbage":         `"hello"`,
		"null":            `null`,
		"bad visibility":  `["maybe", [["1"]]]`,
	}
	for name, raw := range cases {
		res := DecodeInformationParam("21", json.RawMessage(raw))
		assert.True(t, res.Skipped, "case %q should skip", name)
	}
}

func TestDecodeInformationParamNonNumericStringKeptAsString(t *testing.T) {
	res := DecodeInformationParam("212", json.RawMessage(`[true, [["n/a"]]]`))
	assert.False(t, res.Skipped)
	assert.Equal(t, "info_cop", res.Key)
	assert.Equal(t, "n/a", res.Value)
}

func TestDecodeInformationParamNumericValue(t *testing.T) {
	res := DecodeInformationParam("211", json.RawMessage(`[true, [[2.4, "3"]]]`))
	assert.False(t, res.Skipped)
	assert.Equal(t, "info_electrical_power", res.Key)
	assert.Equal(t, 2.4, res.Value)
}
