package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting of the service. Values come from the
// environment, optionally preloaded from a .env file.
type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort     string
	JWTSecret    string
	RateLimitRPS float64

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DelayReportSchedule  string
	DelayReportBatchSize int
}

// LoadConfig reads the configuration. envFiles are loaded first if they
// exist; variables already set in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DELAY_REPORT_SCHEDULE", "0 */5 * * * *")
	v.SetDefault("DELAY_REPORT_BATCH_SIZE", 100)

	return Config{
		AppEnv:               v.GetString("APP_ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPPort:             v.GetString("HTTP_PORT"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		RateLimitRPS:         v.GetFloat64("RATE_LIMIT_RPS"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		DelayReportSchedule:  v.GetString("DELAY_REPORT_SCHEDULE"),
		DelayReportBatchSize: v.GetInt("DELAY_REPORT_BATCH_SIZE"),
	}, nil
}

// Validate checks the settings the database commands need.
func (c Config) Validate() error {
	var errList []error
	if c.DBHost == "" {
		errList = append(errList, errors.New("DB_HOST is required"))
	}
	if c.DBName == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}
	return errors.Join(errList...)
}

// ValidateServe additionally checks the settings of the API server.
func (c Config) ValidateServe() error {
	var errList []error
	if c.JWTSecret == "" {
		errList = append(errList, errors.New("JWT_SECRET is required"))
	}
	if c.RateLimitRPS < 0 {
		errList = append(errList, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if c.DelayReportBatchSize < 1 {
		errList = append(errList, errors.New("DELAY_REPORT_BATCH_SIZE must be positive"))
	}
	return errors.Join(c.Validate(), errors.Join(errList...))
}

// DSN is the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// IsDevelopment reports whether the service runs locally.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
