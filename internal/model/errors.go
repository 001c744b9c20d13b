// Package model provides core data types for gastos.
package model

import "errors"

// Error types for ledger operations
var (
	ErrIncompleteExpense = errors.New("expense is missing required fields")
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrUnknownCategory   = errors.New("unknown category code")
	ErrUnknownBackend    = errors.New("unknown storage backend")
	ErrInvalidID         = errors.New("invalid expense id")
)
