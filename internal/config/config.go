package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	ServerPort string

	DBDriver string
	DBUrl    string

	JWTSecret string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string

	RedisAddr       string
	RedisPassword   string
	CatalogCacheTTL time.Duration

	ReceiptsBucket string
	S3Region       string
	S3Endpoint     string
	S3Key          string
	S3Secret       string
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:     getEnv("APP_ENV", "local"),
		ServerPort: getEnv("SERVER_PORT", "5000"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBUrl:    getEnv("DATABASE_URL", "serviceonwheel.db"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:5500",
		}),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogCacheTTL: getDuration("CATALOG_CACHE_TTL", 5*time.Minute),

		ReceiptsBucket: getEnv("RECEIPTS_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3Key:          getEnv("S3_KEY", ""),
		S3Secret:       getEnv("S3_SECRET", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}
