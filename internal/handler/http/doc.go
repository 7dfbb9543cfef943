// Package http serves the backend plugin API.
//
// Every plugin method is a POST to /api/plugin/{method} carrying a JSON
// argument object and answered with a {success, result} envelope. Trace ids,
// access logging and bearer token checks are middlewares applied before the
// request reaches the service layer.
package http
