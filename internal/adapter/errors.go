package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures to deliver a call: connection errors,
	// timeouts, cancelled contexts and non-2xx HTTP statuses.
	ErrTransport = errors.New("transport failure")

	// ErrProtocol marks responses that are not a usable JSON-RPC 2.0 reply,
	// and is also matched by every [*RPCError].
	ErrProtocol = errors.New("protocol failure")

	ErrEmptyServer = errors.New("empty server address")
)

// RPCError is an application-level error reported by the server in the
// "error" member of a JSON-RPC response.
type RPCError struct {
	Method  string `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: rpc error %d: %s", e.Method, e.Code, e.Message)
}

// Unwrap makes errors.Is(err, ErrProtocol) hold for every RPCError.
func (e *RPCError) Unwrap() error {
	return ErrProtocol
}
