// Package httputil writes JSON responses for the hanoi HTTP API.
//
// # Overview
//
// Handlers answer with [WriteJSON] on success and [WriteError] on failure.
// Error responses share one body shape:
//
//	{"code": "INVALID_DISK_COUNT", "message": "disk count 40 exceeds maximum of 20"}
//
// # Status codes
//
// [StatusFor] maps error codes from package errors to HTTP statuses:
//
//   - INVALID_INPUT, INVALID_DISK_COUNT, INVALID_ROD: 400
//   - INVALID_TRANSCRIPT, EMPTY_SOURCE, ILLEGAL_PLACEMENT: 422
//   - NOT_FOUND: 404
//   - anything else: 500, with the message hidden
package httputil
