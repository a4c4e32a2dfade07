package adapter

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      int64  `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      json.RawMessage `json:"id"`
}

func newRPCRequest(method string, params any, id int64) rpcRequest {
	return rpcRequest{
		JSONRPC: jsonRPCVersion,
		Method:  method,
		Params:  params,
		ID:      id,
	}
}

// hasID reports whether the response id equals id. Numeric ids echoed back
// as strings are accepted.
func (r rpcResponse) hasID(id int64) bool {
	raw := bytes.TrimSpace(r.ID)
	want := strconv.FormatInt(id, 10)
	if string(raw) == want {
		return true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == want
	}
	return false
}

func (r rpcResponse) idString() string {
	if len(r.ID) == 0 {
		return "<missing>"
	}
	return string(r.ID)
}
