// Package api handles incoming HTTP requests, path parameter parsing, and
// response formatting. It acts as an adapter between external clients and the
// conversion service, translating HTTP concerns to calendar operations and
// conversion failures back to HTTP status codes.
package api
