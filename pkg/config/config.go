package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFallbackImageURL = "https://cdn-icons-png.flaticon.com/512/25/25694.png"
	DefaultMediaBaseURL     = "https://query.ampre.ca"
)

type Config struct {
	Env string `yaml:"env"`
	Log struct {
		Level string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO ERROR debug info error"`
	} `yaml:"log"`
	Server struct {
		Port            int           `yaml:"port" validate:"required,gt=0,lte=65535"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Database struct {
		URI           string `yaml:"uri" validate:"required"`
		DBName        string `yaml:"dbname" validate:"required"`
		Collection    string `yaml:"collection" validate:"required"`
		CreateIndexes bool   `yaml:"create_indexes"`
	} `yaml:"database"`
	Redis struct {
		Host        string `yaml:"host" validate:"required,hostname|ip"`
		Port        int    `yaml:"port" validate:"required,gt=0,lte=65535"`
		Password    string `yaml:"password"`
		DB          int    `yaml:"db" validate:"gte=0"`
		TLSEnabled  bool   `yaml:"tls_enabled"`
		TLSCertFile string `yaml:"tls_cert_file"`
	} `yaml:"redis"`
	Search struct {
		TextLimit   int64         `yaml:"text_limit" validate:"gt=0"`
		BrowseLimit int64         `yaml:"browse_limit" validate:"gt=0"`
		CacheTTL    time.Duration `yaml:"cache_ttl" validate:"gte=0"`
	} `yaml:"search"`
	Media struct {
		BaseURL          string        `yaml:"base_url" validate:"required,url"`
		Token            string        `yaml:"token"`
		FallbackImageURL string        `yaml:"fallback_image_url" validate:"required,url"`
		Timeout          time.Duration `yaml:"timeout" validate:"gt=0"`
		RetryMax         int           `yaml:"retry_max" validate:"gte=0,lte=5"`
		CacheTTL         time.Duration `yaml:"cache_ttl" validate:"gte=0"`
	} `yaml:"media"`
	RateLimit struct {
		RequestsPerMinute int `yaml:"requests_per_minute" validate:"gt=0"`
		Burst             int `yaml:"burst" validate:"gt=0"`
	} `yaml:"rate_limit"`
}

// LoadConfig reads the YAML file at path, which may be missing, then applies
// environment overrides and defaults before validating.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %v", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if collection := os.Getenv("MONGO_COLLECTION"); collection != "" {
		cfg.Database.Collection = collection
	}
	if createIndexes := os.Getenv("MONGO_CREATE_INDEXES"); createIndexes != "" {
		cfg.Database.CreateIndexes = createIndexes == "true"
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if tlsEnabled := os.Getenv("REDIS_TLS_ENABLED"); tlsEnabled != "" {
		cfg.Redis.TLSEnabled = tlsEnabled == "true"
	}
	if tlsCertFile := os.Getenv("REDIS_TLS_CERT_FILE"); tlsCertFile != "" {
		cfg.Redis.TLSCertFile = tlsCertFile
	}
	if baseURL := os.Getenv("MEDIA_BASE_URL"); baseURL != "" {
		cfg.Media.BaseURL = baseURL
	}
	// TOTR is the variable name the portal deployment already uses.
	if token := os.Getenv("TOTR"); token != "" {
		cfg.Media.Token = token
	}
	if token := os.Getenv("MEDIA_API_TOKEN"); token != "" {
		cfg.Media.Token = token
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Database.Collection == "" {
		cfg.Database.Collection = "properties_lite"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Search.TextLimit == 0 {
		cfg.Search.TextLimit = 50
	}
	if cfg.Search.BrowseLimit == 0 {
		cfg.Search.BrowseLimit = 3
	}
	if cfg.Search.CacheTTL == 0 {
		cfg.Search.CacheTTL = time.Minute
	}
	if cfg.Media.BaseURL == "" {
		cfg.Media.BaseURL = DefaultMediaBaseURL
	}
	if cfg.Media.FallbackImageURL == "" {
		cfg.Media.FallbackImageURL = DefaultFallbackImageURL
	}
	if cfg.Media.Timeout == 0 {
		cfg.Media.Timeout = 10 * time.Second
	}
	if cfg.Media.CacheTTL == 0 {
		cfg.Media.CacheTTL = time.Hour
	}
	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 100
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
}

// Validate checks struct tags plus the cross-field rules tags cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}
	if cfg.Redis.TLSEnabled && cfg.Redis.TLSCertFile != "" {
		if _, err := os.Stat(cfg.Redis.TLSCertFile); os.IsNotExist(err) {
			return fmt.Errorf("TLS certificate file does not exist: %s", cfg.Redis.TLSCertFile)
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
