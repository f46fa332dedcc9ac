package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) and contain no business logic.

import "errors"

// ErrNotFound is returned when no row matches a lookup.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
