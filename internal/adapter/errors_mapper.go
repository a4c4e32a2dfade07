package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an error response body ends up in an error
// message.
const maxErrorBody = 256

// mapHTTPError maps a non-2xx response to ErrTransport, unless its body is a
// JSON-RPC error envelope, which is returned as *RPCError.
func mapHTTPError(method string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var envelope rpcResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != nil {
		envelope.Error.Method = method
		return envelope.Error
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: %s: http %d: %s", ErrTransport, method, resp.StatusCode(), body)
}

// mapEnvelopeError validates a decoded response envelope against the id that
// was sent. The server-reported error, if any, is returned as *RPCError.
func mapEnvelopeError(method string, id int64, envelope rpcResponse) error {
	if envelope.JSONRPC != "" && envelope.JSONRPC != jsonRPCVersion {
		return fmt.Errorf("%w: %s: unexpected jsonrpc version %q", ErrProtocol, method, envelope.JSONRPC)
	}

	if envelope.Error != nil {
		envelope.Error.Method = method
		return envelope.Error
	}

	if !envelope.hasID(id) {
		return fmt.Errorf("%w: %s: response id %s does not match request id %d", ErrProtocol, method, envelope.idString(), id)
	}
	if envelope.Result == nil {
		return fmt.Errorf("%w: %s: response has neither result nor error", ErrProtocol, method)
	}

	return nil
}
