package utils

import "github.com/google/uuid"

// RequestIDGenerator produces identifiers sent in the X-Request-ID header of
// every JSON-RPC call so that client and server logs can be correlated.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
