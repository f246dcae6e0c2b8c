// Package courier provides the Courier aggregate for the dispatch domain.
//
// A courier is a delivery-capable actor who can be offered assignments and
// accept them. The aggregate owns identity, contact details and the last
// reported position. It deliberately does NOT own availability: whether a
// courier is busy is derived from the assignment store at candidate-selection
// time, which keeps this aggregate free of cross-aggregate locking.
//
// Couriers are never deleted; Deactivate removes them from dispatch while
// preserving history.
package courier
