// Package services contains domain services: business logic that does not
// naturally belong to a single aggregate.
//
// The package currently provides AccessPolicy, the table mapping
// (role, operation) pairs to permissions. Centralizing the table keeps role
// checks at the operation boundary instead of scattering role conditionals
// through workflow logic.
package services
