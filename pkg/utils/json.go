package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson renders a value as indented JSON for debug logging. Encoding
// failures return the error text instead of propagating.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return err.Error()
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
