// Package testutil provides shared helpers for clustergo tests: a seeded,
// thread-safe RNG and synthetic clustered dataset generators.
package testutil
