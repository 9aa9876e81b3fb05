// Package query implements an ordered, multi-valued set of URL query
// parameters and its application/x-www-form-urlencoded style serialization.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986#section-3.4
//
// - https://url.spec.whatwg.org/#interface-urlsearchparams
package query
