package config

import (
	"errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"io/fs"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	CORS     CORSConfig     `mapstructure:"cors"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	GeminiAI GeminiAIConfig `mapstructure:"gemini_ai"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type GeminiAIConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// JWTConfig enables bearer-token auth on the API when SecretKey is set.
type JWTConfig struct {
	SecretKey   string        `mapstructure:"secret_key"`
	ExpiryHours time.Duration `mapstructure:"expiry_hours"`
}

// Enabled reports whether API auth is switched on.
func (c JWTConfig) Enabled() bool {
	return c.SecretKey != ""
}

// Environment variables the credentials are read from.
const (
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvGeminiAPIKey = "GOOGLE_AI_API_KEY"
	EnvJWTSecret    = "GATEWAY_JWT_SECRET"
	EnvPort         = "PORT"
)

// LoadConfig reads the optional .env file, then the optional YAML file, then the
// process environment. Either path may be empty; a missing .env file is ignored.
func LoadConfig(configPath string, envPath string) (*Config, error) {
	// Load .env file first
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindings := map[string]string{
		"server.port":       EnvPort,
		"openai.api_key":    EnvOpenAIAPIKey,
		"gemini_ai.api_key": EnvGeminiAPIKey,
		"jwt.secret_key":    EnvJWTSecret,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Origin", "Content-Type", "Authorization"})
	v.SetDefault("cors.expose_headers", []string{"Content-Length"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("jwt.expiry_hours", 24)
}
