package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ReportConfig holds the attendance engine knobs. Defaults mirror the
// operating rules of the call center: 08:00-18:00 workday, 5 minute entrance
// tolerance, Sundays excluded from the reporting calendar.
type ReportConfig struct {
	DefaultEntrance       string // "15:04" clock
	DefaultExit           string
	LateGraceMinutes      int
	RestDay               time.Weekday
	SaturdayNeedsApproval bool
	Departments           []string
	Timezone              string
	LeaveCategories       []string
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Report engine configuration
	grace, err := strconv.Atoi(getEnv("REPORT_LATE_GRACE_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_LATE_GRACE_MINUTES: %w", err)
	}

	restDay, err := parseWeekday(getEnv("REPORT_REST_DAY", "Sunday"))
	if err != nil {
		return nil, err
	}

	config.Report = ReportConfig{
		DefaultEntrance:       getEnv("REPORT_DEFAULT_ENTRANCE", "08:00"),
		DefaultExit:           getEnv("REPORT_DEFAULT_EXIT", "18:00"),
		LateGraceMinutes:      grace,
		RestDay:               restDay,
		SaturdayNeedsApproval: getEnv("REPORT_SATURDAY_NEEDS_APPROVAL", "true") == "true",
		Departments:           getEnvSlice("REPORT_DEPARTMENTS", "Callcenter,Guayaquil,Administracion"),
		Timezone:              getEnv("REPORT_TIMEZONE", "America/Guayaquil"),
		LeaveCategories:       getEnvSlice("REPORT_LEAVE_CATEGORIES", "vacation,medical,personal,family_emergency"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if _, err := time.Parse("15:04", c.Report.DefaultEntrance); err != nil {
		return fmt.Errorf("REPORT_DEFAULT_ENTRANCE must be HH:MM: %w", err)
	}
	if _, err := time.Parse("15:04", c.Report.DefaultExit); err != nil {
		return fmt.Errorf("REPORT_DEFAULT_EXIT must be HH:MM: %w", err)
	}
	if c.Report.LateGraceMinutes < 0 {
		return fmt.Errorf("REPORT_LATE_GRACE_MINUTES must not be negative")
	}
	if _, err := time.LoadLocation(c.Report.Timezone); err != nil {
		return fmt.Errorf("invalid REPORT_TIMEZONE: %w", err)
	}
	if len(c.Report.Departments) == 0 {
		return fmt.Errorf("REPORT_DEPARTMENTS is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", name)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
