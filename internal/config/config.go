package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Instagram   Instagram   `mapstructure:",squash"`
	GA4         GA4         `mapstructure:",squash"`
	OpenAI      OpenAI      `mapstructure:",squash"`
	Site        Site        `mapstructure:",squash"`
	MetricsSync MetricsSync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Instagram struct {
	BaseURL     string `mapstructure:"instagram_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"instagram_version"`
	AccessToken string `mapstructure:"instagram_access_token"`
	// IGUserID é opcional: quando vazio, o cliente descobre a conta business
	// vinculada através de /me/accounts
	IGUserID string `mapstructure:"instagram_user_id"`
}

type GA4 struct {
	PropertyID string `mapstructure:"ga4_property_id"`
	// CredentialsJSON é o JSON da service account com acesso de leitura ao GA4
	CredentialsJSON string `mapstructure:"ga4_credentials"`
}

type OpenAI struct {
	APIKey string `mapstructure:"openai_api_key"`
	Model  string `mapstructure:"openai_model"`
}

type Site struct {
	// Domain é a URL pública usada no sitemap e nas meta tags
	Domain      string `mapstructure:"site_domain"`
	AthleteName string `mapstructure:"site_athlete_name"`
}

type MetricsSync struct {
	CronSchedule  string `mapstructure:"metrics_sync_cron"`
	RetentionDays int    `mapstructure:"metrics_sync_retention_days"`
	MediaLimit    int    `mapstructure:"metrics_sync_media_limit"`
	Enabled       bool   `mapstructure:"metrics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/athlete_site")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("INSTAGRAM_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("INSTAGRAM_VERSION", "v19.0")
	viper.SetDefault("INSTAGRAM_ACCESS_TOKEN", "")
	viper.SetDefault("INSTAGRAM_USER_ID", "")

	viper.SetDefault("GA4_PROPERTY_ID", "")
	viper.SetDefault("GA4_CREDENTIALS", "")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	viper.SetDefault("SITE_DOMAIN", "https://henriquefujimoto.com.br")
	viper.SetDefault("SITE_ATHLETE_NAME", "Henrique Fujimoto")

	// Coleta diária logo após a virada do dia no Meta (meia-noite PST)
	viper.SetDefault("METRICS_SYNC_CRON", "0 6 * * *")
	viper.SetDefault("METRICS_SYNC_RETENTION_DAYS", 400)
	viper.SetDefault("METRICS_SYNC_MEDIA_LIMIT", 50)
	viper.SetDefault("METRICS_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Instagram.URL = fmt.Sprintf("%s/%s", config.Instagram.BaseURL, config.Instagram.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações usuais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
