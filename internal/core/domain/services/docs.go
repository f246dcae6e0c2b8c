// Package services contains stateless domain services that coordinate across
// aggregates without owning state of their own.
//
// CandidateSelector decides who a dispatch cycle is offered to. Availability
// is derived from the assignment store at selection time rather than stored
// on the courier, so there is no flag to drift out of sync with reality.
package services
