package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultRequestTimeout  = 20 * time.Second
	defaultReconnectMin    = time.Second
	defaultReconnectMax    = 30 * time.Second
	defaultAvgSpeedKmh     = 25.0
	defaultGPSMinInterval  = 30 * time.Second
	defaultGPSMinDistanceM = 100.0
	defaultSnapshotTTL     = 24 * time.Hour
	defaultMaxRequestBody  = "1M"
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

	// RouteService configuration for the remote optimization/tracking service
	RouteService *RouteServiceConfig `json:"routeService" yaml:"routeService"`

	// Tracking configuration for the delivery tracking engine
	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for milestone publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration for the progress snapshot store
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RouteServiceConfig defines how to reach the route optimization service
type RouteServiceConfig struct {
	// HTTP base URL, e.g. http://localhost:5001
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Websocket URL for the real-time event channel, e.g. ws://localhost:5001/ws
	SocketURL string `json:"socketUrl" yaml:"socketUrl"`

	// Upper bound for a single HTTP call
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Reconnect backoff bounds for the real-time channel
	ReconnectMin time.Duration `json:"reconnectMin" yaml:"reconnectMin"`
	ReconnectMax time.Duration `json:"reconnectMax" yaml:"reconnectMax"`
}

// TrackingConfig defines delivery tracking engine configuration
type TrackingConfig struct {
	// Assumed courier speed in km/h for ETA estimation
	AvgSpeedKmh float64 `json:"avgSpeedKmh" yaml:"avgSpeedKmh"`

	// A GPS sample is accepted when this much time passed since the last accepted one...
	GPSMinInterval time.Duration `json:"gpsMinInterval" yaml:"gpsMinInterval"`

	// ...or when the device moved at least this many meters
	GPSMinDistanceM float64 `json:"gpsMinDistanceM" yaml:"gpsMinDistanceM"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Exactly one of DeviceToken or Topic addresses the customer's devices
	DeviceToken string `json:"deviceToken" yaml:"deviceToken"`
	Topic       string `json:"topic" yaml:"topic"`
}

// PubSubConfig defines milestone publishing configuration
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka brokers and topic (for kafka provider)
	KafkaBrokers []string `json:"kafkaBrokers" yaml:"kafkaBrokers"`
	KafkaTopic   string   `json:"kafkaTopic" yaml:"kafkaTopic"`
}

// RedisConfig defines the optional snapshot store
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// ROUTESERVICE_BASEURL -> routeService.baseUrl
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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
				mapstructure.StringToSliceHookFunc(","),
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
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset sections and zero values with working defaults.
func (c *Config) ApplyDefaults() {
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBody
	}

	if c.RouteService == nil {
		c.RouteService = &RouteServiceConfig{}
	}
	if c.RouteService.RequestTimeout <= 0 {
		c.RouteService.RequestTimeout = defaultRequestTimeout
	}
	if c.RouteService.ReconnectMin <= 0 {
		c.RouteService.ReconnectMin = defaultReconnectMin
	}
	if c.RouteService.ReconnectMax < c.RouteService.ReconnectMin {
		c.RouteService.ReconnectMax = max(defaultReconnectMax, c.RouteService.ReconnectMin)
	}

	if c.Tracking == nil {
		c.Tracking = &TrackingConfig{}
	}
	if c.Tracking.AvgSpeedKmh <= 0 {
		c.Tracking.AvgSpeedKmh = defaultAvgSpeedKmh
	}
	if c.Tracking.GPSMinInterval <= 0 {
		c.Tracking.GPSMinInterval = defaultGPSMinInterval
	}
	if c.Tracking.GPSMinDistanceM <= 0 {
		c.Tracking.GPSMinDistanceM = defaultGPSMinDistanceM
	}

	if c.Redis != nil && c.Redis.TTL <= 0 {
		c.Redis.TTL = defaultSnapshotTTL
	}
}

// Validate checks settings that have no sensible default.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RouteService.BaseURL) == "" {
		return errors.New("routeService.baseUrl is required")
	}
	if strings.TrimSpace(c.RouteService.SocketURL) == "" {
		return errors.New("routeService.socketUrl is required")
	}

	return nil
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
