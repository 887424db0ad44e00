// Package myria contains the core components of the Myria exchange layer,
// which moves columnar tuple batches between the workers of a distributed
// query plan. This root package defines types which are employed during the
// regular use of the exchange layer, as well as in the extension of it, and
// is an excellent overview of its key concepts.
package myria
