// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - ConfigBuilder: Fluent builder for creating test configurations
//   - AzureFixture: testify mocks for every Azure API behind a mock client factory
//   - SteadyCluster, TestKeys: canned service responses
//
// Usage:
//
//	cfg := testing.NewConfigBuilder().
//	    WithWorkspace("ws").
//	    WithLocation("westeurope").
//	    Build()
//
//	fixture := testing.NewAzureFixture().NothingExists()
package testing
