/*
Package txprocess interprets marketplace transaction lifecycles.

A transaction process is a static graph of states connected by named
transitions (purchase, booking, inquiry). The hosted marketplace backend is
the source of truth for executing transitions; this engine is a pure,
side-effect-free decision layer on top of it: given a transaction's recorded
transition history it derives the current lifecycle state and the UI-facing
decisions (which actions a customer or provider should see, whether the
transaction is final, whether reviews apply).

The root package is a facade over three layers:

  - pkg/process: the declarative process graphs and transition classifiers
  - pkg/registry: name/alias resolution and derived graph queries
  - pkg/statedata: per-process (state, role) decision tables built on the
    first-match resolver in pkg/resolver

Serving adapters (HTTP introspection API, MCP server, CLI) live under
internal/adapters, pkg/adapters and cmd/txprocess.
*/
package txprocess
