// Package order provides domain entities and business logic for order management
// in the pharmacy system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning identity, line items, total, and status
//   - Item: An immutable order line carrying the unit price snapshot
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have valid identifiers, at least one item, and a consistent total
//   - Orders with prescription-required items start at pending_prescription;
//     all others start at pending_payment
//   - Every status change is a directed edge of the transition graph, executed
//     as a compare-and-swap against the stored status
//   - Line item prices are snapshots; catalog changes never rewrite history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
