// Package prefs reads and writes the UI preference scalars. Values are
// stored raw (not JSON) for compatibility with existing data sets.
package prefs

import (
	"context"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

const (
	darkModeEnabled  = "enabled"
	darkModeDisabled = "disabled"
)

// DarkMode reports whether the dark theme is enabled. Absent or unknown
// values read as disabled.
func DarkMode(ctx context.Context, store storage.Store) (bool, error) {
	raw, ok, err := store.Get(ctx, common.DarkModeKey)
	if err != nil {
		return false, err
	}
	return ok && string(raw) == darkModeEnabled, nil
}

// SetDarkMode persists the dark theme preference.
func SetDarkMode(ctx context.Context, store storage.Store, on bool) error {
	v := darkModeDisabled
	if on {
		v = darkModeEnabled
	}
	return store.Set(ctx, common.DarkModeKey, []byte(v))
}
