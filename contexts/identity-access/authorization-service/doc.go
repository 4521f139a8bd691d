// Package authorization implements the role-based authorization engine for Atelier.
//
// Layering:
// - domain: permission/role model, pure decision functions, errors
// - application: queries/commands/workers using explicit ports
// - ports: stable boundaries for persistence/cache/ownership lookups
// - adapters: concrete HTTP, memory, postgres, and redis implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
// - Authorization outcomes are booleans, never errors; lookup failures deny by default.
package authorization
