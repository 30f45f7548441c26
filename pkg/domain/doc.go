/*
Package domain defines the core entities of the transaction process engine.

A Transaction is a read-only record fetched from the marketplace backend: it
names its process, its last transition, and the ordered history of transitions
it has gone through. The engine never mutates a transaction; it only interprets
the history against a process graph.

Roles form a closed enumeration of the parties that can drive a transition
(customer, provider, operator, system).
*/
package domain
