package config

import (
	"time"

	"github.com/spf13/viper"
)

// Init reads .env and binds the environment variables every binary uses.
// A missing .env is not an error; defaults and the environment apply.
func Init() error {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	bindings := map[string]string{
		"database.host":           "DATABASE_HOST",
		"database.port":           "DATABASE_PORT",
		"database.user":           "DATABASE_USER",
		"database.password":       "DATABASE_PASSWORD",
		"database.name":           "DATABASE_NAME",
		"database.ssl_mode":       "DATABASE_SSL_MODE",
		"redis.host":              "REDIS_HOST",
		"redis.port":              "REDIS_PORT",
		"redis.password":          "REDIS_PASSWORD",
		"redis.db":                "REDIS_DB",
		"jwt.secret_key":          "JWT_SECRET_KEY",
		"help.base_url":           "HELP_BASE_URL",
		"help.cache_ttl":          "HELP_CACHE_TTL",
		"help.timeout":            "HELP_TIMEOUT",
		"help.default_language":   "DEFAULT_LANGUAGE",
		"ledger.default_currency": "DEFAULT_CURRENCY",
		"log.level":               "LOG_LEVEL",
		"server.port":             "PORT",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	return viper.ReadInConfig()
}

type HelpConfig struct {
	BaseURL         string
	CacheTTL        time.Duration
	Timeout         time.Duration
	DefaultLanguage string
	Languages       []string
	Routes          []string
}

func LoadHelpConfig() *HelpConfig {
	viper.SetDefault("help.base_url", "https://raw.githubusercontent.com/ledgerfox/help/main")
	viper.SetDefault("help.cache_ttl", 7*24*time.Hour)
	viper.SetDefault("help.timeout", 5*time.Second)
	viper.SetDefault("help.default_language", "en_US")
	viper.SetDefault("help.languages", []string{"en_US", "de_DE", "fr_FR", "nl_NL", "es_ES"})
	viper.SetDefault("help.routes", []string{
		"index",
		"accounts.index",
		"accounts.create",
		"accounts.show",
		"transactions.index",
		"transactions.create",
		"transactions.show",
		"budgets.index",
		"budgets.show",
		"categories.index",
		"tags.index",
		"preferences.index",
	})

	return &HelpConfig{
		BaseURL:         viper.GetString("help.base_url"),
		CacheTTL:        viper.GetDuration("help.cache_ttl"),
		Timeout:         viper.GetDuration("help.timeout"),
		DefaultLanguage: viper.GetString("help.default_language"),
		Languages:       viper.GetStringSlice("help.languages"),
		Routes:          viper.GetStringSlice("help.routes"),
	}
}

type LedgerConfig struct {
	DefaultCurrency string
	Currencies      []string
	LogLevel        string
	Port            string
}

func LoadLedgerConfig() *LedgerConfig {
	viper.SetDefault("ledger.default_currency", "EUR")
	viper.SetDefault("ledger.currencies", []string{"EUR", "USD", "GBP", "JPY", "CHF"})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.port", "8080")

	return &LedgerConfig{
		DefaultCurrency: viper.GetString("ledger.default_currency"),
		Currencies:      viper.GetStringSlice("ledger.currencies"),
		LogLevel:        viper.GetString("log.level"),
		Port:            viper.GetString("server.port"),
	}
}
