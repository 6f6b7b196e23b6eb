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
	defaultMaxRequestBodySize = "100KB"

	defaultGeocodingTimeout       = 5 * time.Second
	defaultGeocodingUserAgent     = "pitstop-workshop-locator/1.0"
	defaultMaxDistanceKm          = 50.0
	defaultSearchDistanceKm       = 5.0
	defaultLockTTL                = 10 * time.Second
	defaultLockRetryInterval      = 50 * time.Millisecond
	defaultRedisPoolSize          = 20
	defaultRabbitMQExchange       = "pitstop.events"
	defaultRabbitMQPublishTimeout = 5 * time.Second
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

	// Migrate runs GORM AutoMigrate for the application tables on startup.
	Migrate bool `json:"migrate" yaml:"migrate"`

	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`

	Lock *LockConfig `json:"lock" yaml:"lock"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for workshop change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocodingConfig selects and configures the reverse and forward geocoding providers.
type GeocodingConfig struct {
	// Timeout applied to every single geocoding call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Reverse GeocodingProviderConfig `json:"reverse" yaml:"reverse"`
	Forward GeocodingProviderConfig `json:"forward" yaml:"forward"`
}

// GeocodingProviderConfig describes one external geocoding endpoint.
type GeocodingProviderConfig struct {
	// Provider name: "nominatim" or "trueway"
	Provider  string `json:"provider" yaml:"provider"`
	BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// RapidAPI credentials (trueway only)
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	APIHost string `json:"apiHost" yaml:"apiHost"`
}

// DiscoveryConfig bounds workshop searches.
type DiscoveryConfig struct {
	DefaultMaxDistanceKm float64 `json:"defaultMaxDistanceKm" yaml:"defaultMaxDistanceKm"`
	MaxDistanceKm        float64 `json:"maxDistanceKm" yaml:"maxDistanceKm"`
}

// LockConfig selects how per-account updates are serialized.
type LockConfig struct {
	// Provider type: "memory" for a single instance or "redis" for a shared lock
	Provider      string        `json:"provider" yaml:"provider"`
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	RetryInterval time.Duration `json:"retryInterval" yaml:"retryInterval"`
}

// RedisConfig holds connection settings for the redis lock provider.
type RedisConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	PoolSize int    `json:"poolSize" yaml:"poolSize"`
}

// Addr returns host:port.
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP connection URL and exchange (for rabbitmq provider)
	AMQPURL        string        `json:"amqpUrl" yaml:"amqpUrl"`
	Exchange       string        `json:"exchange" yaml:"exchange"`
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML. GEOCODING_FORWARD_APIKEY -> geocoding.forward.apiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections left empty by the config file.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = defaultGeocodingTimeout
	}
	if cfg.Geocoding.Reverse.UserAgent == "" {
		cfg.Geocoding.Reverse.UserAgent = defaultGeocodingUserAgent
	}
	if cfg.Geocoding.Forward.UserAgent == "" {
		cfg.Geocoding.Forward.UserAgent = defaultGeocodingUserAgent
	}

	if cfg.Discovery == nil {
		cfg.Discovery = &DiscoveryConfig{}
	}
	if cfg.Discovery.MaxDistanceKm <= 0 {
		cfg.Discovery.MaxDistanceKm = defaultMaxDistanceKm
	}
	if cfg.Discovery.DefaultMaxDistanceKm <= 0 || cfg.Discovery.DefaultMaxDistanceKm > cfg.Discovery.MaxDistanceKm {
		cfg.Discovery.DefaultMaxDistanceKm = min(defaultSearchDistanceKm, cfg.Discovery.MaxDistanceKm)
	}

	if cfg.Lock == nil {
		cfg.Lock = &LockConfig{}
	}
	if cfg.Lock.TTL <= 0 {
		cfg.Lock.TTL = defaultLockTTL
	}
	if cfg.Lock.RetryInterval <= 0 {
		cfg.Lock.RetryInterval = defaultLockRetryInterval
	}

	if cfg.Redis != nil && cfg.Redis.PoolSize <= 0 {
		cfg.Redis.PoolSize = defaultRedisPoolSize
	}

	if cfg.PubSub != nil {
		if cfg.PubSub.Exchange == "" {
			cfg.PubSub.Exchange = defaultRabbitMQExchange
		}
		if cfg.PubSub.PublishTimeout <= 0 {
			cfg.PubSub.PublishTimeout = defaultRabbitMQPublishTimeout
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
