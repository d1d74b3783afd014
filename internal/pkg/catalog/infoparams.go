package catalog

import (
	"encoding/json"
	"strconv"
)

// DecodeResult is the outcome of decoding one information parameter: either
// a (Key, Value) pair to publish or a skip with the reason. Malformed input
// never surfaces as an error; it always degrades to a skip.
type DecodeResult struct {
	Key     string
	Value   any
	Skipped bool
	Reason  string
}

func skip(reason string) DecodeResult {
	return DecodeResult{Skipped: true, Reason: reason}
}

// DecodeInformationParam decodes one entry of the informationParams block.
// The wire structure is [visibility, [[value, unitID, ...], ...]]. A falsy
// visibility flag hides the parameter for this cycle only.
func DecodeInformationParam(id string, raw json.RawMessage) DecodeResult {
	key, ok := InformationParams[id]
	if !ok {
		return skip("unmapped id")
	}

	var outer []json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil || len(outer) < 2 {
		return skip("not a two-element array")
	}

	if !truthy(outer[0]) {
		return skip("not visible")
	}

	var rows [][]any
	if err := json.Unmarshal(outer[1], &rows); err != nil || len(rows) == 0 || len(rows[0]) == 0 {
		return skip("empty value array")
	}

	value := rows[0][0]
	if s, isStr := value.(string); isStr {
		// numeric strings coerce; anything else stays a string
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			value = f
		}
	}
	return DecodeResult{Key: key, Value: value}
}

// truthy interprets the visibility flag, which arrives as a bool on current
// firmware and as 0/1 on older controllers.
func truthy(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	return false
}
