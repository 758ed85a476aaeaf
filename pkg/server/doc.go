// Package server exposes the solver over HTTP.
//
// # Routes
//
//	GET  /healthz                 "ok"
//	GET  /v1/solve/{disks}        transcript JSON, X-Cache: hit|miss
//	GET  /v1/board/{disks}?step=k text grid after k moves (0 = initial)
//	POST /v1/verify               replay a transcript: 200 or 422
//
// Errors are JSON bodies of the form {"code": ..., "message": ...} written by
// package httputil.
//
// Every request gets an X-Request-ID (a UUID unless the client sent one), is
// logged with charmbracelet/log and reported to the observability HTTP hooks.
// Panics in handlers are recovered and answered with a 500.
//
// Each request works on its own board; the shared state is the pipeline
// Runner and its cache, both safe for concurrent use.
package server
