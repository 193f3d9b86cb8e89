package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Meta   Meta   `mapstructure:",squash"`
	OpenAI OpenAI `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	Version     string `mapstructure:"meta_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"` // sem o prefixo "act_"
	PageLimit   int    `mapstructure:"meta_page_limit"`
	Timeout     time.Duration
	TimeoutSecs int `mapstructure:"meta_timeout_seconds"`
}

type OpenAI struct {
	APIKey           string  `mapstructure:"openai_api_key"`
	BaseURL          string  `mapstructure:"openai_base_url"`
	Model            string  `mapstructure:"openai_model"`
	Temperature      float64 `mapstructure:"openai_temperature"`
	MaxTokens        int     `mapstructure:"openai_max_tokens"`
	FrequencyPenalty float64 `mapstructure:"openai_frequency_penalty"`
	PresencePenalty  float64 `mapstructure:"openai_presence_penalty"`
	HistoryLimit     int     `mapstructure:"openai_history_limit"`
	Timeout          time.Duration
	TimeoutSecs      int `mapstructure:"openai_timeout_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v24.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_PAGE_LIMIT", 5000)
	viper.SetDefault("META_TIMEOUT_SECONDS", 30)

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.25)
	viper.SetDefault("OPENAI_MAX_TOKENS", 1600)
	viper.SetDefault("OPENAI_FREQUENCY_PENALTY", 0.2)
	viper.SetDefault("OPENAI_PRESENCE_PENALTY", 0.1)
	viper.SetDefault("OPENAI_HISTORY_LIMIT", 8)
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 120)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Meta.Timeout = time.Duration(config.Meta.TimeoutSecs) * time.Second
	config.OpenAI.Timeout = time.Duration(config.OpenAI.TimeoutSecs) * time.Second

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
