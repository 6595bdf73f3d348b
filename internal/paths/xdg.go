package paths

import (
	"os"
	"path/filepath"
)

// HomeDir resolves the user's home directory, preferring $HOME.
func HomeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

func xdgDir(envVar, fallbackSuffix string) string {
	if v := os.Getenv(envVar); v != "" {
		return filepath.Join(v, "mcpsync")
	}
	return filepath.Join(HomeDir(), fallbackSuffix, "mcpsync")
}

// ConfigDir returns the mcpsync config directory ($XDG_CONFIG_HOME/mcpsync).
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// RegistryFile returns the path to the central server registry.
func RegistryFile() string {
	return filepath.Join(ConfigDir(), "registry.json")
}

// ClientsFile returns the path to the client registry.
func ClientsFile() string {
	return filepath.Join(ConfigDir(), "clients.json")
}
