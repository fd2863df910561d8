package kasharian

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultShopName labels backup envelopes when no shop name is configured.
const DefaultShopName = "SUMBER BERKAH BATU ALAM"

// Config holds the runtime settings shared by every command.
type Config struct {
	// DataDir is where the persistent store lives.
	DataDir string
	// StoreKind selects the persistence backend: "file" or "sqlite".
	StoreKind string
	// ShopName is the organization label written into backup envelopes.
	ShopName string
}

// LoadConfig reads the configuration from the environment, loading a .env
// file from the current directory first when one exists. Every setting has a
// working default; command-line flags may override the result.
func LoadConfig() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return Config{
		DataDir:   getEnvOrDefault("KASHARIAN_DATA_DIR", ".kasharian"),
		StoreKind: getEnvOrDefault("KASHARIAN_STORE", "file"),
		ShopName:  getEnvOrDefault("KASHARIAN_SHOP_NAME", DefaultShopName),
	}
}

// getEnvOrDefault returns the value of the environment variable or a default
// value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
