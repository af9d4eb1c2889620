// Package workspace ensures the Batch AI workspace that clusters are created in.
package workspace
