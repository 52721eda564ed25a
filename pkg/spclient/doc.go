// Package spclient provides the primary entry point for constructing a
// Statuspage.io API client that implements the statuspage.Client interface.
//
// The returned client exposes one resource client per API group: Pages(),
// Components(), Incidents(), IncidentUpdates(), Metrics() and
// MetricsProviders(). Every method performs exactly one HTTP request and
// returns either the decoded body or an error; failed responses surface as
// *statuspage.APIError.
//
// Quick start
//
//	import (
//	  "context"
//	  "errors"
//	  "log"
//
//	  "github.com/fivetwenty-io/statuspage-client/pkg/spclient"
//	  "github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := spclient.New(&statuspage.Config{
//	    APIKey: "OAuth 1234abcd", // sent verbatim in the Authorization header
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  component, err := cli.Components().Create(ctx, "page-id", &statuspage.ComponentCreateRequest{
//	    Name:   "API",
//	    Status: statuspage.ComponentStatusOperational,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  _, err = cli.Incidents().Get(ctx, "page-id", "missing")
//	  if errors.Is(err, statuspage.ErrNotFound) {
//	    log.Printf("no such incident")
//	  }
//	  _ = component
//	}
//
// # Updates
//
// Update methods take a replace flag. true sends PUT (full replacement), false
// sends PATCH (partial update with only the non-nil request fields).
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithBaseURL.
package spclient
