// Package server runs the HTTP authorization gateway: it binds the listen
// address, serves until the context is cancelled and then shuts down
// gracefully.
package server
