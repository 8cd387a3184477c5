package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/jobs"
)

const (
	defaultHTTPPort            = "8080"
	defaultGeometryRepairBatch = 20
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	GeocoderURL       string
	GeocoderUserAgent string
	RouterURL         string

	KafkaHost                 string
	KafkaDeliveryChangedTopic string

	GeometryRepairSchedule string
	GeometryRepairBatch    int
	LocationStaleAfter     time.Duration
}

// LoadConfig reads the configuration through getenv. Missing or unparseable
// values fall back to defaults.
func LoadConfig(getenv func(string) string) Config {
	return Config{
		HTTPPort:   withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:     getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT"),
		DBUser:     getenv("DB_USER"),
		DBPassword: getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME"),
		DBSslMode:  withDefault(getenv("DB_SSLMODE"), "disable"),

		GeocoderURL:       withDefault(getenv("GEOCODER_URL"), geo.DefaultNominatimURL),
		GeocoderUserAgent: withDefault(getenv("GEOCODER_USER_AGENT"), geo.DefaultUserAgent),
		RouterURL:         withDefault(getenv("ROUTER_URL"), geo.DefaultOSRMURL),

		KafkaHost:                 getenv("KAFKA_HOST"),
		KafkaDeliveryChangedTopic: withDefault(getenv("KAFKA_DELIVERY_CHANGED_TOPIC"), kafka.DefaultTopic),

		GeometryRepairSchedule: withDefault(getenv("GEOMETRY_REPAIR_SCHEDULE"), jobs.DefaultGeometryRepairSchedule),
		GeometryRepairBatch:    positiveInt(getenv("GEOMETRY_REPAIR_BATCH"), defaultGeometryRepairBatch),
		LocationStaleAfter:     positiveDuration(getenv("LOCATION_STALE_AFTER"), courier.DefaultStaleAfter),
	}
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KafkaHost on commas. Empty means publishing is disabled.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func positiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func positiveDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
