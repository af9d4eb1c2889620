// Package cluster creates the Batch AI compute cluster and reports its live
// allocation and node status.
//
// Creation blocks until the service reports a terminal state. The remote
// allocation state machine (resizing, steady, ...) is only observed.
package cluster
