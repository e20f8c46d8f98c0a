package game

import (
	"fmt"

	"explore3d/internal/config"
)

type keyMap struct {
	interact  int32
	destroy   int32
	inventory int32
}

func newKeyMap(cfg *config.Config) (keyMap, error) {
	var (
		k   keyMap
		err error
	)
	if k.interact, err = keyCode(cfg.InteractKey); err != nil {
		return k, fmt.Errorf("interact key: %w", err)
	}
	if k.destroy, err = keyCode(cfg.DestroyKey); err != nil {
		return k, fmt.Errorf("destroy key: %w", err)
	}
	if k.inventory, err = keyCode(cfg.InventoryKey); err != nil {
		return k, fmt.Errorf("inventory key: %w", err)
	}
	return k, nil
}

// keyCode maps a one-character key name to its raylib code. Raylib uses
// ASCII codes for letters and digits.
func keyCode(name string) (int32, error) {
	if len(name) != 1 {
		return 0, fmt.Errorf("key %q: want a single letter or digit", name)
	}
	c := name[0]
	switch {
	case c >= 'a' && c <= 'z':
		return int32(c - 'a' + 'A'), nil
	case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return int32(c), nil
	}
	return 0, fmt.Errorf("key %q: want a single letter or digit", name)
}
