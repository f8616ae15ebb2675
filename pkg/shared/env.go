package shared

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/subosito/gotenv"
)

const (
	DefaultIPFSGateway = "https://api.universalprofile.cloud/ipfs"
)

var dotenvLoadOnce sync.Once

// IPFSGatewayFromEnv returns the gateway used to resolve ipfs:// locators,
// read from LSP_IPFS_GATEWAY or IPFS_GATEWAY. The nearest .env file above
// the working directory is consulted for variables that are not already set.
func IPFSGatewayFromEnv() string {
	dotenvLoadOnce.Do(func() {
		if cwd, err := os.Getwd(); err == nil {
			_ = LoadDotEnv(cwd)
		}
	})

	gateway := firstNonEmptyEnv("LSP_IPFS_GATEWAY", "IPFS_GATEWAY")
	if gateway == "" {
		return DefaultIPFSGateway
	}
	return strings.TrimRight(gateway, "/")
}

// LoadDotEnv loads the first .env file found in dir or one of its parents.
// Variables already present in the environment keep their value. It
// returns the path of the loaded file, or "" when none exists.
func LoadDotEnv(dir string) string {
	current := filepath.Clean(dir)
	for {
		candidate := filepath.Join(current, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			if err := gotenv.Load(candidate); err != nil {
				return ""
			}
			return candidate
		}

		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
