package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

// Variáveis de ambiente que preenchem campos não definidos no arquivo.
const (
	EnvRedisAddr  = "STOCK_ANALYTICS_REDIS_ADDR"
	EnvMySQLDSN   = "STOCK_ANALYTICS_MYSQL_DSN"
	EnvAWSProfile = "AWS_PROFILE"
	EnvAWSRegion  = "AWS_REGION"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	validate *validator.Validate
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{validate: validator.New()}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// Um caminho vazio devolve a configuração padrão, completada pelo ambiente.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	// .env é opcional
	_ = godotenv.Load()

	config := types.Config{}
	if filePath != "" {
		if err := decodeFile(filePath, &config); err != nil {
			return nil, err
		}
	}

	ApplyEnvironment(&config)
	ApplyDefaults(&config)

	if err := r.validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func decodeFile(filePath string, config *types.Config) error {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, config); err != nil {
			return fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, config); err != nil {
			return fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, config); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return nil
}

// ApplyEnvironment preenche campos vazios a partir de variáveis de ambiente.
func ApplyEnvironment(config *types.Config) {
	if v := os.Getenv(EnvRedisAddr); v != "" && config.Cache.RedisAddr == "" {
		config.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvMySQLDSN); v != "" && config.MySQL.DSN == "" {
		config.MySQL.DSN = v
	}
	if v := os.Getenv(EnvAWSProfile); v != "" && config.AWS.Profile == "" {
		config.AWS.Profile = v
	}
	if v := os.Getenv(EnvAWSRegion); v != "" && config.AWS.Region == "" {
		config.AWS.Region = v
	}
}

// ApplyDefaults define os valores padrão dos campos ausentes.
func ApplyDefaults(config *types.Config) {
	if config.Cache.Backend == "" {
		config.Cache.Backend = "memory"
	}
	if config.Cache.Size == 0 {
		config.Cache.Size = 128
	}
	if config.Cache.TTLSeconds == 0 {
		config.Cache.TTLSeconds = 300
	}
	if config.MySQL.InventoryTable == "" {
		config.MySQL.InventoryTable = "inventory"
	}
	if config.MySQL.TransactionTable == "" {
		config.MySQL.TransactionTable = "transactions"
	}
	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	// Com um DSN e sem fontes explícitas, lê as tabelas configuradas.
	if config.MySQL.DSN != "" {
		if len(config.Inventory) == 0 {
			config.Inventory = []string{"mysql://" + config.MySQL.InventoryTable}
		}
		if len(config.Transactions) == 0 {
			config.Transactions = []string{"mysql://" + config.MySQL.TransactionTable}
		}
	}
}
