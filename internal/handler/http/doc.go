// Package http implements the REST transport of the customer API.
//
// It wires chi routes for customers, addresses and health, decodes request
// bodies into raw inputs for the service layer, and shapes every response
// into the JSON envelope clients expect. Failures that handlers do not map
// themselves go through a single translator that picks the status code and
// decides how much internal detail is echoed. Request tracing, access
// logging and panic recovery run as middleware in front of every route.
package http
