/*
Package ports defines the interfaces between the decision engine core and its
adapters.

  - DecisionEngine: what the HTTP and MCP adapters need from the engine.
  - DecisionCache: optional descriptor cache used by the serving layer.

RunDecisionCacheContract is a shared test suite every cache implementation
must pass.
*/
package ports
