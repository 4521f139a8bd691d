// Package cart implements the shopping-cart aggregate for Atelier.
//
// Layering:
// - domain: the ShoppingCart aggregate, Money value object, domain events, errors
// - application: command orchestration with per-cart write serialization
// - ports: stable boundaries for persistence and event relay
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - The aggregate is the single writer of its own line items; every change
//   goes through its methods so invariants hold on each transition.
// - Events queue on the aggregate and reach the bus only after the state
//   change that produced them has been committed (outbox relay).
package cart
