package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Container struct {
		App        *App
		Token      *Token
		DB         *DB
		HTTP       *HTTP
		Redis      *Redis
		Cloudinary *Cloudinary
		Search     *Search
		Cache      *Cache
	}

	App struct {
		Name     string
		Env      string
		LogLevel string
	}

	Token struct {
		Secret string
	}

	DB struct {
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		SSLMode       string
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins []string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		DB       int
	}

	Cloudinary struct {
		CloudName string
		APIKey    string
		APISecret string
	}

	Search struct {
		RateRPS   float64
		RateBurst int
	}

	Cache struct {
		BikeTTL  time.Duration
		BadgeTTL time.Duration
		UserTTL  time.Duration
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "theftwatch")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", "8081")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MIGRATIONS_DIR", "./internal/adapter/postgres/migrations")
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SEARCH_RATE_RPS", 5.0)
	v.SetDefault("SEARCH_RATE_BURST", 20)
	v.SetDefault("CACHE_TTL_BIKE", 15*time.Minute)
	v.SetDefault("CACHE_TTL_BADGES", time.Hour)
	v.SetDefault("CACHE_TTL_USER", time.Hour)
}

// New loads .env outside production and reads the environment on top of the
// defaults.
func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return load(v)
}

func load(v *viper.Viper) (*Container, error) {
	token := &Token{Secret: v.GetString("TOKEN_SECRET")}
	if token.Secret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	env := v.GetString("APP_ENV")

	return &Container{
		App: &App{
			Name:     v.GetString("APP_NAME"),
			Env:      env,
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Token: token,
		DB: &DB{
			Host:          v.GetString("DB_HOST"),
			Port:          v.GetString("DB_PORT"),
			User:          v.GetString("DB_USER"),
			Password:      v.GetString("DB_PASSWORD"),
			Name:          v.GetString("DB_NAME"),
			SSLMode:       v.GetString("DB_SSLMODE"),
			MigrationsDir: v.GetString("MIGRATIONS_DIR"),
		},
		HTTP: &HTTP{
			Env:            env,
			Port:           v.GetString("HTTP_PORT"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
			URL:            v.GetString("HTTP_URL"),
		},
		Redis: &Redis{
			Address:  v.GetString("REDIS_ADDRESS"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cloudinary: &Cloudinary{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
		},
		Search: &Search{
			RateRPS:   v.GetFloat64("SEARCH_RATE_RPS"),
			RateBurst: v.GetInt("SEARCH_RATE_BURST"),
		},
		Cache: &Cache{
			BikeTTL:  v.GetDuration("CACHE_TTL_BIKE"),
			BadgeTTL: v.GetDuration("CACHE_TTL_BADGES"),
			UserTTL:  v.GetDuration("CACHE_TTL_USER"),
		},
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (d *DB) DSN() string {
	return "host=" + d.Host + " port=" + d.Port + " user=" + d.User +
		" password=" + d.Password + " dbname=" + d.Name + " sslmode=" + d.SSLMode
}

// Enabled reports whether all credentials for image uploads are present.
func (c *Cloudinary) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func (h *HTTP) Addr() string {
	return h.URL + ":" + h.Port
}
