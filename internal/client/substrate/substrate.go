// Package substrate abstracts the durable key-value storage underlying the
// user store. A substrate maps string keys to opaque byte values and is
// scoped per device (one file or one in-process map per app instance).
//
// Implementations must treat a missing key as (nil, nil), not an error;
// callers distinguish "absent" from "failed" that way.
package substrate

import "context"

// Substrate is the minimal durable KV surface the user store builds on.
type Substrate interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns a snapshot of all stored pairs.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}
