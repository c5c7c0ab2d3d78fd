// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The store port is implemented by the persistence adapter and client ports by
// outbound HTTP adapters; both are called by the application layer.
package ports
