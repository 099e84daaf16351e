package id

import "github.com/google/uuid"

// New returns a UUID v4 string. Customers, loans and payments all carry one as
// their public identifier.
func New() string { return uuid.NewString() }
