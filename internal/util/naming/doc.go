// Package naming validates Azure resource names and builds the endpoint
// URLs derived from them.
//
// Storage account, file share and directory names are checked locally
// before any remote call so that obvious typos surface as validation
// errors instead of remote create failures. The rules mirror the limits
// documented by the storage and Batch AI resource providers.
package naming
