// Package commands contains the lifecycle operations that mutate queue
// items. Each operation is a command struct (validated at construction) with
// a matching handler.
//
// Handlers follow one shape: load the item, apply the domain transition,
// persist through the repository port, then fire the best-effort status
// notification. Notification failures are logged and swallowed; the
// persisted transition is authoritative regardless of sync outcome. Domain
// and not-found errors propagate to the boundary untouched.
package commands
