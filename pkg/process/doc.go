/*
Package process declares the static lifecycle graphs of the marketplace
transaction processes (purchase, booking, inquiry).

Each Definition is a rooted directed graph: nodes are states, edges are named
transitions pointing at exactly one successor state. Transition names are
unique across the whole graph, which lets the engine reconstruct "state after
this transition" from a transition name alone. The definitions are data, not
machinery: the hosted backend executes transitions; this package only
interprets recorded history.
*/
package process
