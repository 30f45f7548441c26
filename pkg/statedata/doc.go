/*
Package statedata computes UI-decision descriptors from a transaction's
process state and the viewer's role.

Each process has one decision table, built on resolver.Resolver with the fact
tuple [process state, role]. Cases are registered most specific first because
the resolver keeps the first match; the default case always produces a
well-formed minimal descriptor so unhandled combinations degrade gracefully
instead of erroring.

The functions here are pure: no I/O, no side effects, one throwaway resolver
per call.
*/
package statedata
