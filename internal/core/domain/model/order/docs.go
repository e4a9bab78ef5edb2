// Package order contains the shipment order aggregate and its value
// objects: status and payment-status enums, service tiers, package
// categories, contact details and the append-only status history.
//
// The aggregate enforces the consistency rules between the denormalized
// current status and the history log; the recommended status-transition
// graph is exposed as an opt-in policy on Status.
package order
