package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"emolamp_server/internal/models"

	"github.com/spf13/viper"
)

// Server modes.
const (
	ModePubSub = "pubsub"
	ModeStats  = "stats"
	ModeBoth   = "both"
)

const envPrefix = "EMOLAMP"

// Config is the resolved application configuration.
type Config struct {
	Port string

	Mode      string
	PublicDir string
	Name      string
	Version   string

	LogLevel string
	Timezone string

	MaxLogs          int
	MaxTopicMessages int

	LogSweepInterval        time.Duration
	LogRetention            time.Duration
	MessageSweepInterval    time.Duration
	MessageRetention        time.Duration
	SubscriberSweepInterval time.Duration
	SubscriberTimeout       time.Duration
}

// PubSub reports whether the relay routes are served.
func (c Config) PubSub() bool { return c.Mode == ModePubSub || c.Mode == ModeBoth }

// Stats reports whether the log and statistics routes are served.
func (c Config) Stats() bool { return c.Mode == ModeStats || c.Mode == ModeBoth }

// Location resolves Timezone. An empty name or "Local" means the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("stats.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("server.mode", ModeBoth)
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("server.name", "emolamp")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("log.level", "info")
	v.SetDefault("stats.timezone", "Local")
	v.SetDefault("store.max_logs", models.MaxLogs)
	v.SetDefault("store.max_topic_messages", models.MaxTopicMessages)
	v.SetDefault("janitor.log_sweep_interval", time.Hour)
	v.SetDefault("janitor.log_retention", 24*time.Hour)
	v.SetDefault("janitor.message_sweep_interval", time.Minute)
	v.SetDefault("janitor.message_retention", time.Hour)
	v.SetDefault("janitor.subscriber_sweep_interval", 5*time.Minute)
	v.SetDefault("janitor.subscriber_timeout", 5*time.Minute)
}

// Load reads config.yml from the given directories (configs/ by default).
// A missing file is not an error; EMOLAMP_* variables and PORT override it.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", envPrefix+"_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:                    v.GetString("port"),
		Mode:                    strings.ToLower(strings.TrimSpace(v.GetString("server.mode"))),
		PublicDir:               v.GetString("server.public_dir"),
		Name:                    v.GetString("server.name"),
		Version:                 v.GetString("server.version"),
		LogLevel:                strings.ToLower(v.GetString("log.level")),
		Timezone:                v.GetString("stats.timezone"),
		MaxLogs:                 v.GetInt("store.max_logs"),
		MaxTopicMessages:        v.GetInt("store.max_topic_messages"),
		LogSweepInterval:        v.GetDuration("janitor.log_sweep_interval"),
		LogRetention:            v.GetDuration("janitor.log_retention"),
		MessageSweepInterval:    v.GetDuration("janitor.message_sweep_interval"),
		MessageRetention:        v.GetDuration("janitor.message_retention"),
		SubscriberSweepInterval: v.GetDuration("janitor.subscriber_sweep_interval"),
		SubscriberTimeout:       v.GetDuration("janitor.subscriber_timeout"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case ModePubSub, ModeStats, ModeBoth:
	default:
		return fmt.Errorf("server.mode must be one of %s|%s|%s, got %q", ModePubSub, ModeStats, ModeBoth, c.Mode)
	}
	if c.MaxLogs <= 0 || c.MaxTopicMessages <= 0 {
		return errors.New("store limits must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
