package magic

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StoreDir returns the default store directory, creating it if needed:
// $XDG_DATA_HOME/carolyna/magic on Linux, Application Support on macOS and
// %APPDATA% on Windows.
func StoreDir() (string, error) {
	base, err := dataHome()
	if err != nil {
		return "", fmt.Errorf("locate magic store: %w", err)
	}

	dir := filepath.Join(base, "carolyna", "magic")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create magic store directory: %w", err)
	}
	return dir, nil
}

func dataHome() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return underHome("Library", "Application Support")
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return underHome("AppData", "Roaming")
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	return underHome(".local", "share")
}

func underHome(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, elem...)...), nil
}
