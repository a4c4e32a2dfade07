package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is a CoreAPI entity (client, account, search row) kept as an open
// JSON object. The client does no schema validation of CoreAPI data.
type Record map[string]any

// ID returns the "id" attribute of the record as an int64.
//
// CoreAPI encodes identifiers as JSON numbers; string identifiers are
// accepted as well. Returns an error when the attribute is missing or is not
// an integer.
func (r Record) ID() (int64, error) {
	raw, ok := r["id"]
	if !ok {
		return 0, fmt.Errorf("record has no id attribute")
	}

	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported id type %T", raw)
	}
}

// Records is a list of CoreAPI entities. Some CoreAPI methods answer with a
// single object where a list is expected (clients.accounts.get), so a lone
// object decodes as a one-element list and null as an empty one.
type Records []Record

func (r *Records) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Records{}
		return nil
	}

	if trimmed[0] == '{' {
		var single Record
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*r = Records{single}
		return nil
	}

	var list []Record
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*r = list
	return nil
}
