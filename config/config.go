package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultCurrency           = "usd"
	defaultProviderTimeout    = 10 * time.Second
	defaultTaxRate            = "0.1"
	defaultShipping           = "5"
	defaultReturnPath         = "/api/confirm?session_id={CHECKOUT_SESSION_ID}"
	defaultSuccessRedirect    = "/orders"
	defaultMaxUploadBytes     = 1024 * 1024
	defaultUploadURLTTL       = 5 * time.Minute
	defaultReconcileEvery     = 5 * time.Minute
	defaultReconcileAfter     = 30 * time.Minute
	defaultSlowQuery          = 200 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// AutoMigrate runs GORM AutoMigrate for the storefront tables on start-up
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold is the elapsed time after which a statement is logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	Site SiteConfig `json:"site" yaml:"site"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for the firebase identity provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Cart *CartConfig `json:"cart" yaml:"cart"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Redis configuration for the product page cache, optional
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for checkout event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for product share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SiteConfig describes the public storefront origin
type SiteConfig struct {
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// AuthConfig defines the identity boundary
type AuthConfig struct {
	// Provider is "jwt" or "firebase"
	Provider    string `json:"provider" yaml:"provider"`
	Secret      string `json:"secret" yaml:"secret"`
	Issuer      string `json:"issuer" yaml:"issuer"`
	AdminUserID string `json:"adminUserId" yaml:"adminUserId"`
	// LandingURL is where unauthenticated callers are redirected
	LandingURL string `json:"landingUrl" yaml:"landingUrl"`
}

// FirebaseConfig defines Firebase configuration for ID token verification
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StripeConfig defines the payment provider configuration
type StripeConfig struct {
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	Currency  string        `json:"currency" yaml:"currency"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	Breaker   BreakerConfig `json:"breaker" yaml:"breaker"`
	// APIBaseURL overrides the API endpoint, e.g. for stripe-mock
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
}

// BreakerConfig tunes the circuit breaker in front of an external provider
type BreakerConfig struct {
	MinRequests  uint32        `json:"minRequests" yaml:"minRequests"`
	FailureRatio float64       `json:"failureRatio" yaml:"failureRatio"`
	OpenTimeout  time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// StorageConfig defines the object storage bucket used for product images
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. s3://bucket?region=us-east-1 or file:///var/data
	BucketURL      string        `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL  string        `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	UploadPrefix   string        `json:"uploadPrefix" yaml:"uploadPrefix"`
	UploadURLTTL   time.Duration `json:"uploadUrlTtl" yaml:"uploadUrlTtl"`
	MaxUploadBytes int64         `json:"maxUploadBytes" yaml:"maxUploadBytes"`
	// SignerSecret and SignerBaseURL are only used by the file:// driver
	SignerSecret  string `json:"signerSecret" yaml:"signerSecret"`
	SignerBaseURL string `json:"signerBaseUrl" yaml:"signerBaseUrl"`
}

// CartConfig defines per-cart pricing policy
type CartConfig struct {
	TaxRate  string `json:"taxRate" yaml:"taxRate"`
	Shipping string `json:"shipping" yaml:"shipping"`
}

// CheckoutConfig defines checkout session settings
type CheckoutConfig struct {
	ReturnPath       string        `json:"returnPath" yaml:"returnPath"`
	SuccessRedirect  string        `json:"successRedirect" yaml:"successRedirect"`
	ReconcileEnabled bool          `json:"reconcileEnabled" yaml:"reconcileEnabled"`
	ReconcileEvery   time.Duration `json:"reconcileEvery" yaml:"reconcileEvery"`
	ReconcileAfter   time.Duration `json:"reconcileAfter" yaml:"reconcileAfter"`
}

// RedisConfig defines the page cache connection
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	Prefix   string        `json:"prefix" yaml:"prefix"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.SlowQueryThreshold <= 0 {
		cfg.SlowQueryThreshold = defaultSlowQuery
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.LandingURL == "" {
		cfg.Auth.LandingURL = "/"
	}
	if cfg.Stripe == nil {
		cfg.Stripe = &StripeConfig{}
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = defaultCurrency
	}
	if cfg.Stripe.Timeout <= 0 {
		cfg.Stripe.Timeout = defaultProviderTimeout
	}
	if cfg.Cart == nil {
		cfg.Cart = &CartConfig{}
	}
	if cfg.Cart.TaxRate == "" {
		cfg.Cart.TaxRate = defaultTaxRate
	}
	if cfg.Cart.Shipping == "" {
		cfg.Cart.Shipping = defaultShipping
	}
	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.ReturnPath == "" {
		cfg.Checkout.ReturnPath = defaultReturnPath
	}
	if cfg.Checkout.SuccessRedirect == "" {
		cfg.Checkout.SuccessRedirect = defaultSuccessRedirect
	}
	if cfg.Checkout.ReconcileEvery <= 0 {
		cfg.Checkout.ReconcileEvery = defaultReconcileEvery
	}
	if cfg.Checkout.ReconcileAfter <= 0 {
		cfg.Checkout.ReconcileAfter = defaultReconcileAfter
	}
	if cfg.Storage != nil {
		if cfg.Storage.MaxUploadBytes <= 0 {
			cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
		}
		if cfg.Storage.UploadURLTTL <= 0 {
			cfg.Storage.UploadURLTTL = defaultUploadURLTTL
		}
		if cfg.Storage.UploadPrefix == "" {
			cfg.Storage.UploadPrefix = "uploads/"
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
