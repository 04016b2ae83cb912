package coins

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/goccy/go-json"
)

// LoadCustomCoins registers every coin defined under ~/.coinscope/coins/
// into reg, in file name order. Files that fail to parse are skipped with
// a warning so one bad definition doesn't take the whole set down.
func LoadCustomCoins(reg *Registry) error {
	usr, err := user.Current()
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	customCoinsDir := filepath.Join(usr.HomeDir, ".coinscope", "coins")
	files, err := filepath.Glob(filepath.Join(customCoinsDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to glob json files in ~/.coinscope/coins: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", file, err)
		}

		coin, err := NewCoinFromJSON(content)
		if err != nil {
			fmt.Printf("failed to parse coin from file %s: %s. Ignore and continue with other custom coins.\n", file, err)
			continue
		}

		reg.Register(coin)
	}

	return nil
}

// SaveCustomCoin persists coin to ~/.coinscope/coins/<uri scheme>.json so
// LoadCustomCoins picks it up on the next run.
func SaveCustomCoin(coin *GenericCoin) error {
	usr, err := user.Current()
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	customCoinsDir := filepath.Join(usr.HomeDir, ".coinscope", "coins")
	if err := os.MkdirAll(customCoinsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", customCoinsDir, err)
	}

	content, err := json.MarshalIndent(coin.Config(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal coin config: %w", err)
	}

	path := filepath.Join(customCoinsDir, fmt.Sprintf("%s.json", coin.GetURIScheme()))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
