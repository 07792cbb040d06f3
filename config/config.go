package config

import (
	"errors"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/handler-chain/internal/animal"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const envPrefix = "CHAIN"

type LoggingConfig struct {
	Level string `mapstructure:"level" json:"level"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" json:"format"`
}

type HandlerConfig struct {
	Kind  string   `mapstructure:"kind" json:"kind"`
	Name  string   `mapstructure:"name" json:"name"`
	Foods []string `mapstructure:"foods" json:"foods"`
}

type Config struct {
	Environment string          `mapstructure:"environment" json:"environment"`
	Logging     LoggingConfig   `mapstructure:"logging" json:"logging"`
	Output      OutputConfig    `mapstructure:"output" json:"output"`
	Handlers    []HandlerConfig `mapstructure:"handlers" json:"handlers"`
	Requests    []string        `mapstructure:"requests" json:"requests"`
}

// Specs converts the configured handlers into animal specs, keeping order.
func (c *Config) Specs() []animal.Spec {
	specs := make([]animal.Spec, 0, len(c.Handlers))
	for _, h := range c.Handlers {
		specs = append(specs, animal.Spec{
			Kind:  h.Kind,
			Name:  h.Name,
			Foods: h.Foods,
		})
	}
	return specs
}

// Load reads configuration from, in increasing priority: defaults, the YAML
// file, a .env file and environment variables prefixed with CHAIN_. An empty
// path searches ./config and the working directory for config.yaml; a
// missing file is only an error when path is given explicitly.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Debug("config file not found, using defaults and environment variables")
	} else {
		slog.Debug("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", EnvDev)
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("handlers", []map[string]any{
		{"kind": animal.KindMonkey},
		{"kind": animal.KindSquirrel},
	})
	v.SetDefault("requests", []string{animal.Nut, animal.Banana, "Cup of coffee"})
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDev, EnvStaging, EnvProd),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
		validation.Field(&c.Output,
			validation.Required,
			validation.By(func(value interface{}) error {
				oc, ok := value.(OutputConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an OutputConfig")
				}
				return validation.ValidateStruct(&oc,
					validation.Field(&oc.Format,
						validation.Required,
						validation.In(FormatText, FormatJSON),
					),
				)
			}),
		),
		validation.Field(&c.Handlers,
			validation.Required,
			validation.Length(1, 0),
			validation.Each(validation.By(validateHandlerConfig)),
		),
		validation.Field(&c.Requests,
			validation.Required,
			validation.Each(validation.Required),
		),
	)
}

func validateHandlerConfig(value interface{}) error {
	hc, ok := value.(HandlerConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a HandlerConfig")
	}

	kinds := make([]interface{}, 0, len(animal.Kinds()))
	for _, k := range animal.Kinds() {
		kinds = append(kinds, k)
	}

	eater := hc.Kind == animal.KindEater

	return validation.ValidateStruct(&hc,
		validation.Field(&hc.Kind,
			validation.Required,
			validation.In(kinds...),
		),
		validation.Field(&hc.Name,
			validation.When(eater, validation.Required),
		),
		validation.Field(&hc.Foods,
			validation.When(eater, validation.Required, validation.Each(validation.Required)),
		),
	)
}
