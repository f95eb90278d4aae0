// Package domain contains the core domain entities and value objects for
// sbdrain.
//
// This package represents the innermost layer of the Clean Architecture. It
// has no dependencies on infrastructure concerns (Service Bus SDK, logging,
// CLI) and contains only pure business logic.
//
// # Entities
//
//   - [Connection]: how to reach a namespace (SAS string or identity FQDN)
//   - [Target]: the topic/subscription queue a drain operates on
//   - [Policy]: batch size, wait bound, and optional deletion limit
//   - [Result]: the deleted total and terminal outcome of one run
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
