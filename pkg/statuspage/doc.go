// Package statuspage provides types, interfaces, and helpers for working with
// the Statuspage.io management API.
//
// # Overview
//
// The statuspage package defines the domain types (Page, Component, Incident,
// IncidentUpdate, Metric, MetricProvider), the request payloads used to create
// and update them, and the interfaces of the resource clients. A concrete
// implementation is provided by the spclient package:
//
//	cli, err := spclient.New(&statuspage.Config{APIKey: "OAuth 1234abcd"})
//	if err != nil { log.Fatal(err) }
//
//	components, err := cli.Components().List(ctx, pageID, statuspage.NewListOptions().WithPerPage(100))
//
// # Errors
//
// A failed response is returned as *APIError. Its Kind is derived from the
// HTTP status (400, 401, 403, 404, 422, and 420/429 for rate limiting) and its
// Message is the "error" field of the response body. Statuses without a
// mapping are reported as ErrorKindAuthentication; StatusCode keeps the real
// code. Compare kinds with errors.Is against the sentinels:
//
//	if errors.Is(err, statuspage.ErrNotFound) { ... }
//
// # Optional fields
//
// Request payloads use pointer fields for optional values so that a PATCH
// only carries what the caller set. String, Bool, Int, Float64 and Status
// build those pointers.
//
// # Interceptors
//
// An InterceptorChain passed in Config runs around every request. The package
// ships logging, header and metrics interceptors.
package statuspage
