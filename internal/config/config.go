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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Agency        Agency        `mapstructure:",squash"`
	MetricsBridge MetricsBridge `mapstructure:",squash"`
	SnapshotSync  SnapshotSync  `mapstructure:",squash"`
	PacingReview  PacingReview  `mapstructure:",squash"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Agency concentra as configurações de calendário da agência. Todas as
// comparações de data (supressão, "hoje", limites de mês) usam esta timezone
// fixa para evitar divergência de data entre operadores e execuções agendadas.
type Agency struct {
	Timezone string `mapstructure:"agency_timezone"`
}

// MetricsBridge é o serviço interno que entrega números de gasto/campanha já
// normalizados por conta e data (Meta e Google atrás da mesma interface)
type MetricsBridge struct {
	URL         string `mapstructure:"metrics_bridge_url"`
	AccessToken string `mapstructure:"metrics_bridge_access_token"`
}

type SnapshotSync struct {
	CronSchedule        string `mapstructure:"snapshot_sync_cron"`
	LookbackDays        int    `mapstructure:"snapshot_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"snapshot_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"snapshot_sync_enabled"`
}

type PacingReview struct {
	CronSchedule           string  `mapstructure:"pacing_review_cron"`
	MaxConcurrentJobs      int     `mapstructure:"pacing_review_max_concurrent_jobs"`
	StaleWindowMinutes     int     `mapstructure:"pacing_review_stale_window_minutes"`
	AdjustmentThresholdPct float64 `mapstructure:"pacing_review_adjustment_threshold_pct"`
	ProgressBatchSize      int     `mapstructure:"pacing_review_progress_batch_size"`
	Enabled                bool    `mapstructure:"pacing_review_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agency_ops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("AGENCY_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("METRICS_BRIDGE_URL", "http://localhost:8090/v1")
	viper.SetDefault("METRICS_BRIDGE_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	// Defaults para sincronização de snapshots de gasto/campanha
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 * * *")        // Todos os dias às 5h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_LOOKBACK_DAYS", 1)         // Apenas o dia corrente
	viper.SetDefault("SNAPSHOT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	// Defaults para a revisão diária de pacing
	viper.SetDefault("PACING_REVIEW_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("PACING_REVIEW_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("PACING_REVIEW_STALE_WINDOW_MINUTES", 15)
	viper.SetDefault("PACING_REVIEW_ADJUSTMENT_THRESHOLD_PCT", 0.10)
	viper.SetDefault("PACING_REVIEW_PROGRESS_BATCH_SIZE", 1)
	viper.SetDefault("PACING_REVIEW_ENABLED", false)

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env a partir das localizações conhecidas
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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
