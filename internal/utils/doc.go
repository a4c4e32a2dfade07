// Package utils provides general-purpose helpers used across the client:
// unverified JWT claim reading, bearer header helpers, the resty-based HTTP
// client constructor and request ID generation.
package utils
