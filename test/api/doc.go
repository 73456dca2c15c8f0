// Package api contains the end-to-end harness for the journeys HTTP API.
//
// The suites under suites/ run against API_BASE_URL when it is set, exactly
// as a client of a deployed service would. Without it they boot the router
// in-process with the memory store.
package api
