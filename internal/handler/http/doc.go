// Package http implements the HTTP authorization gateway started by
// "coreapi serve".
//
// The gateway lets services that cannot speak JSON-RPC ask whether a user may
// act as an administrator: POST /api/authorize runs the two-tier CoreAPI check
// and answers with a JSON verdict. Request tracing and access logging are
// handled by middleware in this package before requests reach the service
// layer.
package http
