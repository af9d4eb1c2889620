// Package provisioning provides shared types, interfaces, and orchestration for
// ensuring the Azure resources of a training cluster.
//
// # Subpackages
//
//   - resourcegroup/: Resource group
//   - storage/: Storage account, access key, file share and directory
//   - workspace/: Batch AI workspace
//   - cluster/: Batch AI cluster creation and status monitoring
//
// # Core Types
//
// Context carries configuration, state, memoized clients, observer, logger and metrics.
// Phase defines a provisioning step with Name() and Provision() methods.
// State accumulates values resolved by earlier phases (storage key, workspace confirmation).
// RunPhases executes phases in dependency order and stops at the first failure.
package provisioning
