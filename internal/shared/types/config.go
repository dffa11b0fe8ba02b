package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Inventory    []string `json:"inventory" yaml:"inventory" toml:"inventory"`
	Transactions []string `json:"transactions" yaml:"transactions" toml:"transactions"`
	BranchID     *int64   `json:"branch_id" yaml:"branch_id" toml:"branch_id"`
	BranchName   string   `json:"branch_name" yaml:"branch_name" toml:"branch_name"`
	Start        string   `json:"start" yaml:"start" toml:"start" validate:"omitempty,datetime=2006-01-02"`
	End          string   `json:"end" yaml:"end" toml:"end" validate:"omitempty,datetime=2006-01-02"`
	Search       string   `json:"search" yaml:"search" toml:"search"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type" validate:"dive,oneof=csv json pdf xlsx"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	LogLevel     string   `json:"log_level" yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	AWS    AWSConfig    `json:"aws" yaml:"aws" toml:"aws"`
	MySQL  MySQLConfig  `json:"mysql" yaml:"mysql" toml:"mysql"`
	Cache  CacheConfig  `json:"cache" yaml:"cache" toml:"cache"`
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`
}

// AWSConfig selects the profile and region used for s3:// sources.
type AWSConfig struct {
	Profile string `json:"profile" yaml:"profile" toml:"profile"`
	Region  string `json:"region" yaml:"region" toml:"region"`
}

// MySQLConfig configures mysql:// sources.
type MySQLConfig struct {
	DSN              string `json:"dsn" yaml:"dsn" toml:"dsn"`
	InventoryTable   string `json:"inventory_table" yaml:"inventory_table" toml:"inventory_table"`
	TransactionTable string `json:"transaction_table" yaml:"transaction_table" toml:"transaction_table"`
}

// CacheConfig selects the report cache backend.
type CacheConfig struct {
	Backend    string `json:"backend" yaml:"backend" toml:"backend" validate:"omitempty,oneof=none memory redis"`
	Size       int    `json:"size" yaml:"size" toml:"size" validate:"gte=0"`
	RedisAddr  string `json:"redis_addr" yaml:"redis_addr" toml:"redis_addr" validate:"required_if=Backend redis"`
	TTLSeconds int    `json:"ttl_seconds" yaml:"ttl_seconds" toml:"ttl_seconds" validate:"gte=0"`
}

// ServerConfig configures the HTTP API started by the serve command.
type ServerConfig struct {
	Addr            string   `json:"addr" yaml:"addr" toml:"addr"`
	AllowedOrigins  []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	RefreshSchedule string   `json:"refresh_schedule" yaml:"refresh_schedule" toml:"refresh_schedule"`
}
