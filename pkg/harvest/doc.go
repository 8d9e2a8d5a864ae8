// Package harvest provides types, interfaces, and helpers for working with the
// Greenhouse Harvest API.
//
// # Overview
//
// The harvest package defines the domain types (Application, Candidate,
// CustomField, Job, JobPost) together with the parameter types each endpoint
// accepts and the interfaces of the resource clients. A concrete
// implementation is provided by the harvestclient package, which wires the
// API key, base URL, and transport. Most consumers import harvestclient to
// construct a client and then use the interfaces declared here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/harvest-client/pkg/harvest"
//	  "github.com/fivetwenty-io/harvest-client/pkg/harvestclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := harvestclient.NewWithAPIKey("my-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  jobs, err := cli.Jobs().List(ctx, &harvest.ListJobsParams{Status: harvest.JobStatusOpen})
//	  if err != nil { log.Fatal(err) }
//	  _ = jobs
//	}
//
// # Pagination
//
// List methods return a single page. Set Pagination.PerPage (at most 500) and
// Pagination.Page and advance Page until fewer than PerPage items come back.
//
// # On-Behalf-Of
//
// Write operations on applications and custom fields, and the v2 job post
// endpoints, take the ID of the Greenhouse user performing the action. It is
// sent as the On-Behalf-Of header; an empty value omits the header.
//
// # Errors
//
// A non-2xx response is returned as *RequestFailedError carrying the status
// code, status text, and raw body. Use errors.As, errors.Is with
// ErrRequestFailed, or the IsNotFound style helpers. Transport failures are
// returned unchanged.
package harvest
