// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts the JSON and form endpoints used by the
// study client to the services in internal/service.
//
// Errors returned by services are mapped to status codes and safe messages by
// MapErrorToStatusCode and GetSafeErrorMessage; details are logged redacted
// and never sent to clients.
package api
