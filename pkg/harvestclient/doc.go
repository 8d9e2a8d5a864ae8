// Package harvestclient provides the primary entry point for constructing a
// Greenhouse Harvest API client that implements the harvest.Client interface.
//
// It layers configuration and the HTTP transport on top of the resource
// interfaces and types defined in the harvest package. Most applications
// import harvestclient to build a client, then use the returned
// harvest.Client to reach the resource clients: Applications(),
// Candidates(), CustomFields(), Jobs() and JobPosts().
//
// Quick start
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
//
//	  cli, err := harvestclient.NewWithAPIKey(os.Getenv("HARVEST_API_KEY"))
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = harvestclient.New(&harvest.Config{
//	    APIKey:      os.Getenv("HARVEST_API_KEY"),
//	    HTTPTimeout: 10 * time.Second,
//	    Logger:      harvest.NewZerologLogger(zerolog.New(os.Stderr)),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  jobs, err := cli.Jobs().List(ctx, &harvest.ListJobsParams{Status: harvest.JobStatusOpen})
//	  if err != nil { log.Fatal(err) }
//	  _ = jobs
//	}
//
// # Helpers
//
// NewWithAPIKey targets https://harvest.greenhouse.io. NewWithBaseURL points
// the client at another host; a trailing slash on the URL is ignored.
package harvestclient
