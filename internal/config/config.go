package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const EnvFileName = ".env"

// LoadEnvFile loads environment variables from a .env file in the working
// directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	_ = godotenv.Load(EnvFileName)
}

// Config carries all process configuration. Everything is environment-sourced.
// Provider sections left blank disable that provider; missing analytics
// settings disable analytics.
type Config struct {
	Addr            string
	AllowedOrigins  []string
	DefaultProvider string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey string
	OpenAIModel  string

	AzureAPIKey     string
	AzureEndpoint   string
	AzureAPIVersion string
	AzureDeployment string

	AnalyticsEndpoint string
	AnalyticsKey      string
}

func Load() *Config {
	return &Config{
		Addr:            getEnv("SNAPSELL_ADDR", ":8000"),
		AllowedOrigins:  splitOrigins(getEnv("SNAPSELL_ALLOWED_ORIGINS", "*")),
		DefaultProvider: getEnv("SNAPSELL_DEFAULT_PROVIDER", "azure"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),

		AzureAPIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureAPIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-06-01"),
		AzureDeployment: getEnv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini"),

		AnalyticsEndpoint: os.Getenv("SNAPSELL_ANALYTICS_ENDPOINT"),
		AnalyticsKey:      os.Getenv("SNAPSELL_ANALYTICS_KEY"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitOrigins parses the comma-separated allowed-origins list. "*" means
// unrestricted cross-origin access.
func splitOrigins(raw string) []string {
	if raw == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
