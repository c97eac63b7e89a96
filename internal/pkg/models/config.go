package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Identity  IdentityConfig
	Credits   CreditsConfig
	PGW       PGWConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
	AllowedOrigins  []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	URL         string
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	PoolSize  int
	MirrorTTL int // in seconds, 0 keeps mirrored profiles forever
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL     string
	Enabled bool
}

// IdentityConfig selects and configures the identity provider
type IdentityConfig struct {
	Mode        string // "firebase" or "hmac"
	ProjectID   string
	CertsURL    string
	HMACSecret  string
	HTTPTimeout int // in seconds
}

// CreditsConfig contains ledger business rules
type CreditsConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// PGWConfig contains the Myanmar payment gateway settings
type PGWConfig struct {
	MerchantUserID string
	Channel        string
	AccessKey      string
	SecretKey      string
	Env            string // "UAT" or "PRODUCTION"
	PaymentMethods string
	Currency       string
	ExpirySeconds  int
	MaxCredits     int
	Billing        BillingConfig
}

// BillingConfig holds the bill-to defaults sent with every payment request
type BillingConfig struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	PostalCode   string
	State        string
	Country      string
	Phone        string
}

// RateLimitConfig contains per-route request limits
type RateLimitConfig struct {
	Enabled           bool
	RegisterPerMinute int
	PaymentPerMinute  int
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey   string
	AppName      string
	Enabled      bool
	LogsEnabled  bool
	LogsEndpoint string
	LogsAPIKey   string
	ForwardLogs  bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
