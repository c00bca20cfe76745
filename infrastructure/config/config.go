package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultMaxUploadSize = 5 * 1024 * 1024 // 5 MiB

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Storage  StorageConfig
	Cors     CorsConfig
	Logger   LoggerConfig
	Jaeger   JaegerConfig
	Sentry   SentryConfig
}

type ServerConfig struct {
	InternalPort string
	ExternalPort string
	RunMode      string
	Domain       string
	FrontEndURL  string
}

type LoggerConfig struct {
	Encoding string
	Level    string
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DbName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// StorageConfig controls the upload handler. When the S3 block carries
// credentials and a bucket, uploads go to object storage; otherwise they
// land on local disk under LocalDir.
type StorageConfig struct {
	LocalDir      string
	MaxUploadSize int64
	S3            S3Config
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
}

type CorsConfig struct {
	AllowOrigins string
}

type JaegerConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
}

type SentryConfig struct {
	Dsn            string
	Debug          bool
	SendDefaultPII bool
}

func GetConfig() *Config {
	// Mirrors the deployment convention of keeping local overrides in a
	// .env file next to the binary; missing file is not an error.
	_ = godotenv.Load()

	cfgPath := getConfigPath(os.Getenv("APP_ENV"))
	v, err := LoadConfig(cfgPath, "yml")
	if err != nil {
		log.Fatalf("Error in load config %v", err)
	}

	cfg, err := ParseConfig(v)
	if err != nil {
		log.Fatalf("Error in parse config %v", err)
	}

	applyEnvOverrides(cfg)

	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = DefaultMaxUploadSize
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		log.Printf("Unable to parse config: %v", err)
		return nil, err
	}
	return &cfg, nil
}

func LoadConfig(filename string, fileType string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetConfigName(filename)

	v.AddConfigPath(".")                        // Current directory
	v.AddConfigPath("./config")                 // ./config
	v.AddConfigPath("./infrastructure/config")  // ./infrastructure/config
	v.AddConfigPath("../config")                // ../config
	v.AddConfigPath("../infrastructure/config") // ../infrastructure/config (from cmd)
	v.AddConfigPath("../../config")             // ../../config

	if wd, err := os.Getwd(); err == nil {
		v.AddConfigPath(filepath.Join(wd, "config"))
		v.AddConfigPath(filepath.Join(wd, "infrastructure", "config"))
	}

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		log.Printf("Unable to read config: %v", err)
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}

	log.Printf("Using config file: %s", v.ConfigFileUsed())
	return v, nil
}

// applyEnvOverrides layers the deployment environment on top of the YAML
// file: PORT for the listener and the discrete DB_* / S3 variables the
// hosting platforms inject.
func applyEnvOverrides(cfg *Config) {
	if envPort := os.Getenv("PORT"); envPort != "" {
		cfg.Server.ExternalPort = envPort
		log.Printf("Set external port from environment -> %s", cfg.Server.ExternalPort)
	}

	setIfPresent := func(dst *string, key string) {
		if val := os.Getenv(key); val != "" {
			*dst = val
		}
	}

	setIfPresent(&cfg.Postgres.Host, "DB_HOST")
	setIfPresent(&cfg.Postgres.Port, "DB_PORT")
	setIfPresent(&cfg.Postgres.User, "DB_USER")
	setIfPresent(&cfg.Postgres.Password, "DB_PASSWORD")
	setIfPresent(&cfg.Postgres.DbName, "DB_NAME")
	setIfPresent(&cfg.Postgres.SSLMode, "DB_SSLMODE")

	setIfPresent(&cfg.Storage.S3.Bucket, "S3_BUCKET")
	setIfPresent(&cfg.Storage.S3.Region, "S3_REGION")
	setIfPresent(&cfg.Storage.S3.Endpoint, "S3_ENDPOINT")
	setIfPresent(&cfg.Storage.S3.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setIfPresent(&cfg.Storage.S3.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")

	setIfPresent(&cfg.Sentry.Dsn, "SENTRY_DSN")
}

func getConfigPath(env string) string {
	switch env {
	case "docker":
		return "config-docker"
	case "production":
		return "config-production"
	default:
		return "config-development"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.InternalPort == "" {
		return errors.New("server.internalPort is required")
	}
	if c.Server.ExternalPort == "" {
		return errors.New("server.externalPort is required")
	}

	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.Postgres.Port == "" {
		return errors.New("postgres.port is required")
	}
	if c.Postgres.DbName == "" {
		return errors.New("postgres.dbName is required")
	}

	if c.Storage.LocalDir == "" {
		return errors.New("storage.localDir is required")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.RunMode == "debug" || c.Server.RunMode == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.RunMode == "release" || c.Server.RunMode == "production"
}

// HasObjectStorage reports whether the S3 block is complete enough to
// use; when it is not, uploads silently fall back to local disk.
func (c *Config) HasObjectStorage() bool {
	s3 := c.Storage.S3
	return s3.Bucket != "" && s3.AccessKeyID != "" && s3.SecretAccessKey != ""
}

func (c *Config) GetPostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.DbName,
		c.Postgres.SSLMode,
	)
}

func (c *Config) GetServerAddress() string {
	return fmt.Sprintf(":%s", c.Server.InternalPort)
}

// GetServerURL is the externally reachable base URL, used to compose the
// stable links returned for locally stored uploads.
func (c *Config) GetServerURL() string {
	if c.IsProduction() {
		return fmt.Sprintf("https://%s", c.Server.Domain)
	}
	return fmt.Sprintf("http://localhost:%s", c.Server.ExternalPort)
}
