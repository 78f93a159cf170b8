package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"
)

const (
	ProviderModeMaxoptra = "maxoptra"
	ProviderModeFake     = "fake"

	defaultBaseURL = "https://silverlake.maxoptra.com"
	// Placeholder so a fresh checkout starts up; real keys come from the file or env.
	defaultAPIKey = "changeme"
)

type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Web      WebConfig      `yaml:"web"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Log      LogConfig      `yaml:"log"`
}

type ProviderConfig struct {
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	// An empty key is allowed: reference lookups then fail with a configuration message.
	APIKey string `yaml:"api_key"`
	Mode   string `yaml:"mode" validate:"required,oneof=maxoptra fake"`
}

type WebConfig struct {
	HTTPAddr    string `yaml:"http_addr" validate:"required"`
	SwaggerPath string `yaml:"swagger_path"`
}

type KafkaConfig struct {
	Host                     string `yaml:"host"`
	Port                     int    `yaml:"port" validate:"required_with=Host,max=65535"`
	LookupCompletedTopicName string `yaml:"lookup_completed_topic_name" validate:"required_with=Host"`
}

// Enabled reports whether lookup events should be published.
func (k KafkaConfig) Enabled() bool {
	return k.Host != ""
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=text json"`
}

func Default() Config {
	return Config{
		Provider: ProviderConfig{
			BaseURL: defaultBaseURL,
			APIKey:  defaultAPIKey,
			Mode:    ProviderModeMaxoptra,
		},
		Web: WebConfig{
			HTTPAddr: ":5000",
		},
		Kafka: KafkaConfig{
			LookupCompletedTopicName: "lookup.completed",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load applies, in order: defaults, the YAML file at filename (skipped when
// filename is empty), environment overrides, validation.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "unmarshal yaml")
		}
	}

	applyEnv(&cfg)
	cfg.Provider.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Provider.BaseURL), "/")

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

// applyEnv overrides from the environment. A variable that is set but empty
// still overrides, so MAXOPTRA_API_KEY= disables reference lookups.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("MAXOPTRA_BASE_URL"); ok {
		cfg.Provider.BaseURL = v
	}
	if v, ok := os.LookupEnv("MAXOPTRA_API_KEY"); ok {
		cfg.Provider.APIKey = v
	}
	if v, ok := os.LookupEnv("TRACKLINK_HTTP_ADDR"); ok && v != "" {
		cfg.Web.HTTPAddr = v
	}
}
