// Package http describes requests, responses and their options for a
// backend-agnostic HTTP client.
//
// Options are immutable snapshots: [RequestOptions.Merge] and
// [ResponseOptions.Merge] always return a fresh value, so a shared default
// can be reused as a template for any number of requests.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://fetch.spec.whatwg.org/
package http
