// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                       string   `env:"BIND_ADDR"                        flag:"bind-addr"                        flagDesc:"Bind address"`
	MongoDBURL                     string   `env:"MONGODB_URL"                      flag:"mongodb-url"                      flagDesc:"MongoDB server URL"`
	Database                       string   `env:"MONGODB_DATABASE"                 flag:"mongodb-database"                 flagDesc:"MongoDB database for data"`
	CheckoutsCollection            string   `env:"MONGODB_CHECKOUTS_COLLECTION"     flag:"mongodb-checkouts-collection"     flagDesc:"MongoDB collection for checkout resources"`
	NotificationsCollection        string   `env:"MONGODB_NOTIFICATIONS_COLLECTION" flag:"mongodb-notifications-collection" flagDesc:"MongoDB collection for notifications"`
	NotificationSettingsCollection string   `env:"MONGODB_SETTINGS_COLLECTION"      flag:"mongodb-settings-collection"      flagDesc:"MongoDB collection for notification settings"`
	SiteURL                        string   `env:"SITE_URL"                         flag:"site-url"                         flagDesc:"Public site URL used when no Origin header is supplied"`
	APIBaseURL                     string   `env:"API_BASE_URL"                     flag:"api-base-url"                     flagDesc:"Public base URL of this service, used for provider return URLs"`
	StripeSecretKey                string   `env:"STRIPE_SECRET_KEY"                flag:"stripe-secret-key"                flagDesc:"Secret key used to authenticate API calls with Stripe"`
	PaypalEnv                      string   `env:"PAYPAL_ENV"                       flag:"paypal-env"                       flagDesc:"PayPal environment - live or test"`
	PaypalClientID                 string   `env:"PAYPAL_CLIENT_ID"                 flag:"paypal-client-id"                 flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret                   string   `env:"PAYPAL_SECRET"                    flag:"paypal-secret"                    flagDesc:"Secret used to authenticate API calls with PayPal"`
	IdentityAPIURL                 string   `env:"IDENTITY_API_URL"                 flag:"identity-api-url"                 flagDesc:"URL used to resolve bearer tokens to user details"`
	BrokerAddr                     []string `env:"KAFKA_BROKER_ADDR"                flag:"broker-addr"                      flagDesc:"Kafka broker address"`
	SchemaRegistryURL              string   `env:"SCHEMA_REGISTRY_URL"              flag:"schema-registry-url"              flagDesc:"Schema registry URL"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                       "checkout",
		CheckoutsCollection:            "checkouts",
		NotificationsCollection:        "notifications",
		NotificationSettingsCollection: "notification_settings",
		PaypalEnv:                      "test",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
