package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Venue    VenueConfig    `yaml:"venue"`
	Scenario ScenarioConfig `yaml:"scenario"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Reports  ReportsConfig  `yaml:"reports"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type VenueConfig struct {
	Seats int `yaml:"seats"`
}

// ScenarioConfig describes one batch of concurrent booking requests run by
// the console front end.
type ScenarioConfig struct {
	Seats    int                     `yaml:"seats"`
	Requests []domain.BookingRequest `yaml:"requests"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

type ReportsConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default is used for any field the YAML file leaves out.
func Default() *Config {
	return &Config{
		HTTP:    HTTPConfig{Address: ":8080"},
		Venue:   VenueConfig{Seats: 10},
		Kafka:   KafkaConfig{BookingEventsTopic: "seat-booking-events", GroupID: "seat-booking-notifier"},
		Reports: ReportsConfig{TTLMinutes: 60},
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Venue.Seats <= 0 {
		errs = append(errs, fmt.Errorf("venue.seats must be positive, got %d: %w", c.Venue.Seats, domain.ErrInvalidConfiguration))
	}
	if len(c.Scenario.Requests) > 0 && c.Scenario.Seats <= 0 {
		errs = append(errs, fmt.Errorf("scenario.seats must be positive, got %d: %w", c.Scenario.Seats, domain.ErrInvalidConfiguration))
	}
	if c.Reports.TTLMinutes < 0 {
		errs = append(errs, fmt.Errorf("reports.ttl_minutes must not be negative: %w", domain.ErrInvalidConfiguration))
	}
	return errors.Join(errs...)
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0 && c.Kafka.BookingEventsTopic != ""
}
