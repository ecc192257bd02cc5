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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Shopify          Shopify          `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	ShopifyOrderSync ShopifyOrderSync `mapstructure:",squash"`
	AdSpendSync      AdSpendSync      `mapstructure:",squash"`
	Reports          Reports          `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
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

type Shopify struct {
	APIVersion  string `mapstructure:"shopify_api_version"`
	AccessToken string `mapstructure:"shopify_access_token"`
	PageSize    int    `mapstructure:"shopify_page_size"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ShopifyOrderSync struct {
	CronSchedule        string `mapstructure:"shopify_order_sync_cron"`
	LookbackDays        int    `mapstructure:"shopify_order_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"shopify_order_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"shopify_order_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"shopify_order_sync_enabled"`
}

type AdSpendSync struct {
	CronSchedule        string `mapstructure:"ad_spend_sync_cron"`
	LookbackDays        int    `mapstructure:"ad_spend_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"ad_spend_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"ad_spend_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"ad_spend_sync_enabled"`
}

type Reports struct {
	// Alíquota informativa de imposto de renda: nunca deduzida do lucro
	CorporateTaxRate float64 `mapstructure:"corporate_tax_rate"`
	CacheTTLSeconds  int     `mapstructure:"report_cache_ttl_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/profitlens")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-10")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("SHOPIFY_PAGE_SIZE", 250)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para sincronização de pedidos
	viper.SetDefault("SHOPIFY_ORDER_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("SHOPIFY_ORDER_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar pedidos
	viper.SetDefault("SHOPIFY_ORDER_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SHOPIFY_ORDER_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("SHOPIFY_ORDER_SYNC_ENABLED", false)

	// Defaults para sincronização de gastos de anúncios
	viper.SetDefault("AD_SPEND_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("AD_SPEND_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("AD_SPEND_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("AD_SPEND_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("AD_SPEND_SYNC_ENABLED", false)

	// Defaults de relatório
	viper.SetDefault("CORPORATE_TAX_RATE", 22.0)
	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 300)

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
