// Package prefs persists the Scenario Lab's remembered bankroll behind a
// small key-value storage port.
package prefs

import "context"

// Store is the key-value port. Implementations must treat a missing key as
// ("", false, nil).
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
