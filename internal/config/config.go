package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env           string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN           string            `yaml:"dsn" env:"DSN" env-required:"true"`
	TokenTTL      time.Duration     `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	TokenSecret   string            `yaml:"token_secret" env:"TOKEN_SECRET" env-required:"true"`
	SessionSecret string            `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
	SecureCookie  bool              `yaml:"secure_cookie" env:"SECURE_COOKIE" env-default:"false"`
	HTTP          HTTPConfig        `yaml:"http"`
	FileStorage   FileStorageConfig `yaml:"file_storage"`
	Redis         RedisConf         `yaml:"redis"`
	SignInLimit   SignInLimitConfig `yaml:"sign_in_limit"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	// TrustedProxies are CIDRs whose X-Forwarded-For is honored. Empty means
	// the client address is the socket peer.
	TrustedProxies []string `yaml:"trusted_proxies" env:"HTTP_TRUSTED_PROXIES"`
}

// FileStorageConfig is the public asset root uploads are written to.
type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env:"FILE_STORAGE_DIR" env-default:"./public/images"`
	BaseURL string `yaml:"base_url" env:"FILE_STORAGE_URL" env-default:"/images"`
}

// RedisConf is optional; an empty Addr keeps the sign-in throttle in process.
type RedisConf struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type SignInLimitConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"SIGN_IN_MAX_ATTEMPTS" env-default:"5"`
	Window      time.Duration `yaml:"window" env:"SIGN_IN_WINDOW" env-default:"15m"`
}

// Load reads the YAML file at path, with environment variables taking
// precedence. A .env file in the working directory is loaded first if present.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Path returns the --config flag value, falling back to CONFIG_PATH.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return os.Getenv("CONFIG_PATH")
}
