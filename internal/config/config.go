package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env             string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN             string            `yaml:"dsn" env:"DSN" env-required:"true"`
	JWTSecret       string            `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL        time.Duration     `yaml:"token_ttl" env-default:"1h"`
	RefreshTokenTTL time.Duration     `yaml:"refresh_token_ttl" env-default:"168h"`
	Timezone        string            `yaml:"timezone" env:"TIMEZONE" env-default:"Asia/Kolkata"`
	SessionSecret   string            `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
	HTTP            HTTPConfig        `yaml:"http"`
	FileStorage     FileStorageConfig `yaml:"file_storage"`
	Redis           RedisConf         `yaml:"redis"`
	Cache           CacheConfig       `yaml:"cache"`
	RateLimit       RateLimitConfig   `yaml:"rate_limit"`
	Admin           AdminConfig       `yaml:"admin"`
}

type HTTPConfig struct {
	Host        string        `yaml:"host"`
	Port        string        `yaml:"port" env:"PORT" env-default:"5000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type FileStorageConfig struct {
	// Driver is "local" or "s3".
	Driver        string   `yaml:"driver" env-default:"local"`
	BaseDir       string   `yaml:"base_dir" env-default:"./nativeuploads"`
	BaseURL       string   `yaml:"base_url" env-default:"/nativeuploads"`
	MaxSize       int64    `yaml:"max_size" env-default:"10485760"`
	MaxImageWidth int      `yaml:"max_image_width" env-default:"1600"`
	S3            S3Config `yaml:"s3"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	Region    string `yaml:"region" env:"S3_REGION"`
	PublicURL string `yaml:"public_url" env:"S3_PUBLIC_URL"`
	UseSSL    bool   `yaml:"use_ssl" env-default:"true"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redispassword" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"`
}

type CacheConfig struct {
	TTL time.Duration `yaml:"ttl" env-default:"1m"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

type AdminConfig struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

func MustLoad() *Config {
	// .env is optional, values already in the environment win
	_ = godotenv.Load()

	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := LoadPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func LoadPath(configPath string) (*Config, error) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &os.PathError{Op: "config file does not exist", Path: configPath, Err: err}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
