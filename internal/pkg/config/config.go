package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/lotaya/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "lotaya-credits")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8001)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.AllowedOrigins = GetEnvAsSlice("SERVER_ALLOWED_ORIGINS", []string{"*"})

	// Database config
	configs.Database.URL = GetEnv("DB_URL", "")
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "lotaya_ai")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)
	configs.Database.AutoMigrate = GetEnvAsBool("DB_AUTO_MIGRATE", false)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)
	configs.Redis.MirrorTTL = GetEnvAsInt("REDIS_MIRROR_TTL", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")
	configs.NATS.Enabled = GetEnvAsBool("NATS_ENABLED", false)

	// Identity provider config
	configs.Identity.Mode = GetEnv("IDENTITY_MODE", "firebase")
	configs.Identity.ProjectID = GetEnv("FIREBASE_PROJECT_ID", "")
	configs.Identity.CertsURL = GetEnv("FIREBASE_CERTS_URL",
		"https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com")
	configs.Identity.HMACSecret = GetEnv("IDENTITY_HMAC_SECRET", "")
	configs.Identity.HTTPTimeout = GetEnvAsInt("IDENTITY_HTTP_TIMEOUT", 5)

	// Credits config
	configs.Credits.DefaultLimit = GetEnvAsInt("CREDITS_DEFAULT_LIMIT", 20)
	configs.Credits.MaxLimit = GetEnvAsInt("CREDITS_MAX_LIMIT", 100)

	// Payment gateway config
	configs.PGW.MerchantUserID = GetEnv("PGW_MERCHANT_USER_ID", "")
	configs.PGW.Channel = GetEnv("PGW_CHANNEL", "")
	configs.PGW.AccessKey = GetEnv("PGW_ACCESS_KEY", "")
	configs.PGW.SecretKey = GetEnv("PGW_SECRET_KEY", "")
	configs.PGW.Env = strings.ToUpper(GetEnv("PGW_ENV", "UAT"))
	configs.PGW.PaymentMethods = GetEnv("PGW_PAYMENT_METHODS", "uabpay,visa_master,mmqr")
	configs.PGW.Currency = GetEnv("PGW_CURRENCY", "MMK")
	configs.PGW.ExpirySeconds = GetEnvAsInt("PGW_EXPIRY_SECONDS", 1800)
	configs.PGW.MaxCredits = GetEnvAsInt("PGW_MAX_CREDITS", 100000)
	configs.PGW.Billing.AddressLine1 = GetEnv("PGW_BILL_ADDRESS_LINE1", "123 Main St")
	configs.PGW.Billing.AddressLine2 = GetEnv("PGW_BILL_ADDRESS_LINE2", "Downtown")
	configs.PGW.Billing.City = GetEnv("PGW_BILL_CITY", "Yangon")
	configs.PGW.Billing.PostalCode = GetEnv("PGW_BILL_POSTAL_CODE", "11011")
	configs.PGW.Billing.State = GetEnv("PGW_BILL_STATE", "Yangon")
	configs.PGW.Billing.Country = GetEnv("PGW_BILL_COUNTRY", "MM")
	configs.PGW.Billing.Phone = GetEnv("PGW_BILL_PHONE", "09123456789")

	// Rate limit config
	configs.RateLimit.Enabled = GetEnvAsBool("RATE_LIMIT_ENABLED", true)
	configs.RateLimit.RegisterPerMinute = GetEnvAsInt("RATE_LIMIT_REGISTER_PER_MINUTE", 10)
	configs.RateLimit.PaymentPerMinute = GetEnvAsInt("RATE_LIMIT_PAYMENT_PER_MINUTE", 20)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.LogsEndpoint = GetEnv("NEW_RELIC_LOGS_ENDPOINT", "")
	configs.NewRelic.LogsAPIKey = GetEnv("NEW_RELIC_LOGS_API_KEY", "")
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsSlice splits a comma separated variable, dropping empty items
func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
