// Package domain contains shared domain types used across aggregate
// sub-packages. Aggregate-specific types live in sub-packages
// (domain/inventory, domain/workorder). This root package holds sentinel
// errors, validation types, the domain event model, and the value objects
// (Money, DateRange, EquipmentIdentifier, Address) shared across aggregates.
package domain
