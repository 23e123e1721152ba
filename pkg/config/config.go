package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// KafkaBrokers empty disables event publishing.
	KafkaBrokers []string
	KafkaTopic   string

	// AccountMappingPath points to an optional YAML file that overrides the
	// built-in payment-method to ledger-account-name mapping.
	AccountMappingPath string

	// MethodAccounts is the resolved payment-method to account-name mapping.
	MethodAccounts map[string]string

	RateLimitPerMinute int
}

// defaultMethodAccounts is the built-in mapping used when no mapping file is
// configured. Methods absent from the mapping have no ledger effect.
func defaultMethodAccounts() map[string]string {
	return map[string]string{
		"Chase Bank": "Chase Bank",
		"Efectivo":   "Caja Chica",
	}
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("KAFKA_TOPIC", "finance_events")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.AutomaticEnv()

	dbURL := v.GetString("PGSQL_URL")
	if dbURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg := &Config{
		DatabaseURL:        dbURL,
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		KafkaBrokers:       v.GetStringSlice("KAFKA_BROKERS"),
		KafkaTopic:         v.GetString("KAFKA_TOPIC"),
		AccountMappingPath: v.GetString("ACCOUNT_MAPPING_PATH"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
	}

	methodAccounts, err := loadMethodAccounts(cfg.AccountMappingPath)
	if err != nil {
		return nil, err
	}
	cfg.MethodAccounts = methodAccounts

	return cfg, nil
}

// loadMethodAccounts reads the payment-method mapping file, falling back to
// the built-in defaults when no path is configured.
func loadMethodAccounts(path string) (map[string]string, error) {
	if path == "" {
		return defaultMethodAccounts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read account mapping file %s: %w", path, err)
	}

	var doc struct {
		MethodAccounts map[string]string `yaml:"methodAccounts"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse account mapping file %s: %w", path, err)
	}
	if len(doc.MethodAccounts) == 0 {
		return nil, fmt.Errorf("account mapping file %s defines no methodAccounts", path)
	}
	return doc.MethodAccounts, nil
}
