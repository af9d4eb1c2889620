// Package resourcegroup ensures the Azure resource group that holds every
// other resource of a run.
package resourcegroup
