// Package order provides the Order aggregate: the customer purchase split
// into per-shop ShopOrder entities, each moving through the fulfillment Stage
// machine (Pending, Preparing, OutForDelivery, Delivered, Cancelled).
//
// The ShopOrder, not the Order, is the unit of fulfillment: it carries the
// stage, the dispatch cycle reference and a non-authoritative cache of the
// courier who accepted the job. Dispatch happens at most once per shop order
// and only once it is out for delivery; AttachAssignment enforces both, with
// ErrAlreadyDispatched and ErrNotOutForDelivery.
package order
