// Package storage ensures the storage account of a run, resolves its primary
// access key and ensures the Azure Files share and directory inside it.
//
// The share and directory operations authenticate with the account key, so
// they require the account step (or FetchKey) to have run first.
package storage
