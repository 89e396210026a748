package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// Tipos de fonte de dados suportados
const (
	DataSourceDrive    = "drive"
	DataSourceHTTP     = "http"
	DataSourcePostgres = "postgres"
	DataSourceNone     = "none"
)

type Config struct {
	App            App                `mapstructure:",squash"`
	Server         Server             `mapstructure:",squash"`
	Database       Database           `mapstructure:",squash"`
	DataSource     DataSource         `mapstructure:",squash"`
	Warehouse      Warehouse          `mapstructure:",squash"`
	Fields         domain.FieldNames  `mapstructure:",squash"`
	MonthlyTrend   domain.MonthWindow `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh     `mapstructure:",squash"`
	SessionSweep   SessionSweep       `mapstructure:",squash"`
	Upload         Upload             `mapstructure:",squash"`
	CORS           CORS               `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// DataSource define de onde o conjunto de dados inicial é carregado
type DataSource struct {
	Kind        string        `mapstructure:"data_source_kind"`
	DriveFileID string        `mapstructure:"data_source_drive_file_id"`
	URL         string        `mapstructure:"data_source_url"`
	Timeout     time.Duration `mapstructure:"data_source_timeout"`
}

// Warehouse define a tabela lida quando a fonte é o postgres
type Warehouse struct {
	Table string `mapstructure:"warehouse_table"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type SessionSweep struct {
	CronSchedule string        `mapstructure:"session_sweep_cron"`
	IdleTimeout  time.Duration `mapstructure:"session_idle_timeout"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATA_SOURCE_KIND", DataSourceNone)
	viper.SetDefault("DATA_SOURCE_DRIVE_FILE_ID", "")
	viper.SetDefault("DATA_SOURCE_URL", "")
	viper.SetDefault("DATA_SOURCE_TIMEOUT", "60s")

	viper.SetDefault("WAREHOUSE_TABLE", "daily_product_sales")

	// Contrato de campos da fonte de dados
	viper.SetDefault("FIELD_DATE", "Dia DiaID")
	viper.SetDefault("FIELD_PRODUCT_DESCRIPTION", "Plu DESC")
	viper.SetDefault("FIELD_BRAND", "Marca DESC")
	viper.SetDefault("FIELD_AMOUNT", "$ Ventas sin impuestos Totales")
	viper.SetDefault("FIELD_PRODUCT_CODE", "Plu PluCD")
	viper.SetDefault("FIELD_CATEGORY", "Sublinea DESC")

	viper.SetDefault("MONTHLY_TREND_TARGET_YEAR", 2024)
	viper.SetDefault("MONTHLY_TREND_MAX_MONTH", 5)

	viper.SetDefault("DATASET_REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("SESSION_SWEEP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SESSION_IDLE_TIMEOUT", "2h")

	viper.SetDefault("UPLOAD_MAX_BYTES", 32<<20) // 32 MiB

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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

	if err := config.Validate(); err != nil {
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

// Validate verifica as combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	c.DataSource.Kind = strings.ToLower(strings.TrimSpace(c.DataSource.Kind))
	switch c.DataSource.Kind {
	case "", DataSourceNone:
		c.DataSource.Kind = DataSourceNone
	case DataSourceDrive:
		if c.DataSource.DriveFileID == "" {
			return fmt.Errorf("config: DATA_SOURCE_DRIVE_FILE_ID é obrigatório para a fonte %q", c.DataSource.Kind)
		}
	case DataSourceHTTP:
		if c.DataSource.URL == "" {
			return fmt.Errorf("config: DATA_SOURCE_URL é obrigatório para a fonte %q", c.DataSource.Kind)
		}
	case DataSourcePostgres:
		if c.Warehouse.Table == "" {
			return fmt.Errorf("config: WAREHOUSE_TABLE é obrigatório para a fonte %q", c.DataSource.Kind)
		}
	default:
		return fmt.Errorf("config: fonte de dados desconhecida %q", c.DataSource.Kind)
	}

	if slices.Contains(c.Fields.Required(), "") {
		return fmt.Errorf("config: os campos de data, descrição, marca e valor são obrigatórios")
	}

	if c.MonthlyTrend.MaxMonth < 1 || c.MonthlyTrend.MaxMonth > 12 {
		return fmt.Errorf("config: MONTHLY_TREND_MAX_MONTH deve estar entre 1 e 12, recebido %d", c.MonthlyTrend.MaxMonth)
	}

	if c.MonthlyTrend.TargetYear <= 0 {
		return fmt.Errorf("config: MONTHLY_TREND_TARGET_YEAR deve ser positivo, recebido %d", c.MonthlyTrend.TargetYear)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
