// Package resolver implements a first-match-wins dispatcher over a fixed
// tuple of discrete facts (typically [process state, transaction role]).
//
// Cases are evaluated in registration order and the FIRST matching case wins,
// even when a later case is more specific. Callers must therefore register
// cases from most specific to least specific; this ordering sensitivity is the
// single most error-prone part of reusing the type.
package resolver

// Wildcard matches any defined fact value at its pattern position. Its value
// can never be a legal state or role string.
const Wildcard = "*"

type caseEntry[T any] struct {
	pattern []string
	produce func() T
}

// Resolver dispatches over a fixed-length fact tuple. Build one per decision,
// chain Cond/Default, finish with Resolve; instances are not reused and are
// not safe for concurrent mutation.
type Resolver[T any] struct {
	facts    []string
	cases    []caseEntry[T]
	fallback func() T
}

// New creates a resolver over the given fact tuple.
func New[T any](facts ...string) *Resolver[T] {
	return &Resolver[T]{facts: facts}
}

// Cond registers a guarded case and returns the resolver for chaining. The
// pattern must have the same length as the fact tuple; a mismatched length
// silently never matches. Each position is either a concrete value (compared
// for equality) or Wildcard. An empty pattern position never matches, which
// guards against accidentally-unset condition values matching everything.
func (r *Resolver[T]) Cond(pattern []string, produce func() T) *Resolver[T] {
	r.cases = append(r.cases, caseEntry[T]{pattern: pattern, produce: produce})
	return r
}

// Default registers the fallback producer used when no case matches. Only the
// last registration before Resolve is kept.
func (r *Resolver[T]) Default(produce func() T) *Resolver[T] {
	r.fallback = produce
	return r
}

// Resolve evaluates the cases in registration order and returns the first
// match's result, else the default's result, else the zero value of T. It is
// the terminal operation of the chain.
func (r *Resolver[T]) Resolve() T {
	for _, c := range r.cases {
		if r.matches(c.pattern) {
			return c.produce()
		}
	}
	if r.fallback != nil {
		return r.fallback()
	}
	var zero T
	return zero
}

func (r *Resolver[T]) matches(pattern []string) bool {
	if len(pattern) != len(r.facts) {
		return false
	}
	for i, p := range pattern {
		fact := r.facts[i]
		// An unset fact never matches, not even a wildcard.
		if p == "" || fact == "" {
			return false
		}
		if p != Wildcard && p != fact {
			return false
		}
	}
	return true
}
