// Package services holds stateless domain services shared by the use
// cases: tariff quoting, tracking number and one-time code generation,
// and the order filtering and stats used by the back office.
package services
