package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Auth    AuthConfig
	Gateway GatewayConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisConfig struct {
	Addr    string
	Enabled bool
}

type KafkaConfig struct {
	Brokers  []string
	Enabled  bool
	MockMode bool
	Topics   TopicConfig
}

type TopicConfig struct {
	PaymentEvents  string
	PaymentSuccess string
	PaymentFailed  string
}

type AuthConfig struct {
	JWTSecret     string
	TokenCacheTTL time.Duration
}

// GatewayConfig holds the simulation constants. The approval rates are the
// per-method success probabilities for non-reserved identifiers; the pending
// resolution rate drives the one-time settlement of pending transactions.
type GatewayConfig struct {
	Name            string
	Version         string
	Currency        string
	CheckoutBaseURL string
	MerchantVPA     string
	SessionTTL      time.Duration
	ProcessingDelay time.Duration

	CardApprovalRate       float64
	UPIApprovalRate        float64
	NetBankingApprovalRate float64
	WalletApprovalRate     float64
	PendingResolutionRate  float64
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Redis: RedisConfig{
			Addr:    getEnv("REDIS_ADDR", "localhost:6379"),
			Enabled: getEnvBool("REDIS_ENABLED", false),
		},
		Kafka: KafkaConfig{
			Brokers:  []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Enabled:  getEnvBool("KAFKA_ENABLED", true),
			MockMode: getEnvBool("KAFKA_MOCK_MODE", true),
			Topics: TopicConfig{
				PaymentEvents:  getEnv("KAFKA_TOPIC_EVENTS", "payment-events"),
				PaymentSuccess: getEnv("KAFKA_TOPIC_SUCCESS", "payment-success"),
				PaymentFailed:  getEnv("KAFKA_TOPIC_FAILED", "payment-failed"),
			},
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "payment-dev-secret"),
			TokenCacheTTL: time.Duration(getEnvInt("AUTH_TOKEN_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Gateway: GatewayConfig{
			Name:            getEnv("GATEWAY_NAME", "DummyPay"),
			Version:         getEnv("GATEWAY_VERSION", "1.0.0"),
			Currency:        getEnv("GATEWAY_CURRENCY", "INR"),
			CheckoutBaseURL: getEnv("GATEWAY_CHECKOUT_BASE_URL", "/api/payment/checkout"),
			MerchantVPA:     getEnv("GATEWAY_MERCHANT_VPA", "merchant@dummypay"),
			SessionTTL:      time.Duration(getEnvInt("GATEWAY_SESSION_TTL_MINUTES", 30)) * time.Minute,
			ProcessingDelay: time.Duration(getEnvInt("GATEWAY_PROCESSING_DELAY_MS", 1000)) * time.Millisecond,

			CardApprovalRate:       getEnvFloat("GATEWAY_CARD_APPROVAL_RATE", 0.80),
			UPIApprovalRate:        getEnvFloat("GATEWAY_UPI_APPROVAL_RATE", 0.80),
			NetBankingApprovalRate: getEnvFloat("GATEWAY_NETBANKING_APPROVAL_RATE", 0.90),
			WalletApprovalRate:     getEnvFloat("GATEWAY_WALLET_APPROVAL_RATE", 0.85),
			PendingResolutionRate:  getEnvFloat("GATEWAY_PENDING_RESOLUTION_RATE", 0.70),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
