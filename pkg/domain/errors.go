package domain

import "errors"

// ErrProcessNotFound is returned when a process name cannot be resolved to any
// registered process definition. This is fatal for the caller: no reasoning
// about a transaction is possible without its process graph.
var ErrProcessNotFound = errors.New("process not found")

// ErrNoRole is returned when a user is neither the customer nor the provider
// of a transaction.
var ErrNoRole = errors.New("user has no role in transaction")

// ErrCacheMiss is returned by decision caches when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")
