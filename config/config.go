package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Debug enables request/response body logging. Processor payloads end
	// up in logs when this is on; keep it off outside of troubleshooting.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// ECOMM processor endpoints and client certificate.
	MerchantHandlerURL string        `env:"ECOMM_MERCHANT_HANDLER_URL" required:"true"`
	ClientHandlerURL   string        `env:"ECOMM_CLIENT_HANDLER_URL" required:"true"`
	CertPath           string        `env:"ECOMM_CERT_PATH"`
	CertPassphrase     string        `env:"ECOMM_CERT_PASSPHRASE"`
	ProcessorTimeout   time.Duration `env:"ECOMM_CLIENT_TIMEOUT" envDefault:"20s"`

	// Callback path slugs registered under /callbacks/. The bank operator
	// configures these per merchant, so they are deployment options rather
	// than fixed routes.
	SuccessCallbackPath string `env:"SUCCESS_CALLBACK_PATH" envDefault:"return-ok"`
	FailureCallbackPath string `env:"FAILURE_CALLBACK_PATH" envDefault:"return-fail"`

	// Storefront display and redirect targets.
	ShopName        string `env:"SHOP_NAME" envDefault:"Shop"`
	DisplayTitle    string `env:"DISPLAY_TITLE" envDefault:"Credit card"`
	DisplayDesc     string `env:"DISPLAY_DESCRIPTION" envDefault:"Pay with your credit card via our bank gateway"`
	Language        string `env:"PAYMENT_LANGUAGE" envDefault:"EN"`
	ThankYouURL     string `env:"THANK_YOU_URL" required:"true"`
	CheckoutURL     string `env:"CHECKOUT_URL" required:"true"`

	// Close-day gate and scheduler.
	CloseDayToken    string        `env:"CLOSE_DAY_TOKEN"`
	CloseDayAuto     bool          `env:"CLOSE_DAY_AUTO" envDefault:"false"`
	CloseDayInterval time.Duration `env:"CLOSE_DAY_INTERVAL" envDefault:"24h"`

	// Bounded retry around transient verification errors. Authoritative
	// non-OK results are never retried regardless of these settings.
	VerifyRetryEnabled  bool          `env:"VERIFY_RETRY_ENABLED" envDefault:"false"`
	VerifyRetryAttempts int           `env:"VERIFY_RETRY_ATTEMPTS" envDefault:"3"`
	VerifyRetryBase     time.Duration `env:"VERIFY_RETRY_BASE_DELAY" envDefault:"100ms"`
	VerifyRetryMax      time.Duration `env:"VERIFY_RETRY_MAX_DELAY" envDefault:"5s"`

	// Settlement event publishing (disabled when no brokers configured).
	KafkaBrokers          []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaSettlementsTopic string   `env:"KAFKA_SETTLEMENTS_TOPIC" envDefault:"payments.settlements"`

	// Lifecycle audit sink (disabled when no URLs configured).
	OpensearchURLs       []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexAudit string   `env:"OPENSEARCH_INDEX_AUDIT" envDefault:"payment-audit"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
