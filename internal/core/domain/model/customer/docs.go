// Package customer provides the Customer aggregate and the ephemeral
// proof-of-delivery code attached to it.
//
// The delivery code deliberately lives on the customer record rather than on
// the Assignment: the code verifies the human receiving the goods. The
// Completion Verifier use cases are the only writers, so the storage location
// stays an implementation detail behind that boundary.
package customer
