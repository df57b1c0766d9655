package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rana718/distria-seed/internal/schema"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvPrefix      = "SEED"
	ConfigName     = "seed.config"
	AddressZone    = "zone"
	AddressFaker   = "faker"
	DriverPgx      = "pgx"
	DriverPq       = "pq"
	maskedPassword = "********"
)

type Config struct {
	Database    Database        `json:"database" yaml:"database" mapstructure:"database"`
	Counts      Counts          `json:"counts" yaml:"counts" mapstructure:"counts"`
	Credentials Credentials     `json:"credentials" yaml:"credentials" mapstructure:"credentials"`
	Schema      schema.Contract `json:"schema" yaml:"schema" mapstructure:"schema"`
	Seed        int64           `json:"seed" yaml:"seed" mapstructure:"seed"`
	CommitEvery int             `json:"commit_every" yaml:"commit_every" mapstructure:"commit_every"`
	Addresses   string          `json:"addresses" yaml:"addresses" mapstructure:"addresses"`
}

type Database struct {
	Provider string `json:"provider" yaml:"provider" mapstructure:"provider"`
	Driver   string `json:"driver" yaml:"driver" mapstructure:"driver"`
	URLEnv   string `json:"url_env" yaml:"url_env" mapstructure:"url_env"`
}

// Counts are the number of rows generated per entity. The administrator is
// always exactly one row.
type Counts struct {
	Drivers   int `json:"drivers" yaml:"drivers" mapstructure:"drivers"`
	Customers int `json:"customers" yaml:"customers" mapstructure:"customers"`
	Products  int `json:"products" yaml:"products" mapstructure:"products"`
	Orders    int `json:"orders" yaml:"orders" mapstructure:"orders"`
	Routes    int `json:"routes" yaml:"routes" mapstructure:"routes"`
}

// Credentials are the fixture logins written into the database, not the
// credentials used to reach it.
type Credentials struct {
	AdminEmail       string `json:"admin_email" yaml:"admin_email" mapstructure:"admin_email"`
	AdminPassword    string `json:"admin_password" yaml:"admin_password" mapstructure:"admin_password"`
	DriverPassword   string `json:"driver_password" yaml:"driver_password" mapstructure:"driver_password"`
	CustomerPassword string `json:"customer_password" yaml:"customer_password" mapstructure:"customer_password"`
	BcryptCost       int    `json:"bcrypt_cost" yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

var supportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}

// SetDefaults registers every key so explicit zero values in a file or the
// environment are honored and AutomaticEnv can resolve nested keys.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.provider", "postgresql")
	v.SetDefault("database.driver", DriverPgx)
	v.SetDefault("database.url_env", "DATABASE_URL")

	v.SetDefault("counts.drivers", 20)
	v.SetDefault("counts.customers", 1500)
	v.SetDefault("counts.products", 500)
	v.SetDefault("counts.orders", 1000)
	v.SetDefault("counts.routes", 200)

	v.SetDefault("credentials.admin_email", "admin@distria.com")
	v.SetDefault("credentials.admin_password", "admin123")
	v.SetDefault("credentials.driver_password", "repartidor123")
	v.SetDefault("credentials.customer_password", "cliente123")
	v.SetDefault("credentials.bcrypt_cost", bcrypt.DefaultCost)

	v.SetDefault("schema.customer_credentials", false)
	v.SetDefault("schema.inventory_movements", true)

	v.SetDefault("seed", 42)
	v.SetDefault("commit_every", 100)
	v.SetDefault("addresses", AddressZone)
}

// Configure wires env lookups and the config file search path into v.
func Configure(v *viper.Viper, cfgFile string) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return
	}
	v.AddConfigPath(".")
	v.SetConfigName(ConfigName)
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Provider = strings.ToLower(strings.TrimSpace(cfg.Database.Provider))
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Addresses == "" {
		cfg.Addresses = AddressZone
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	switch c.Database.Driver {
	case DriverPgx, DriverPq:
	default:
		return fmt.Errorf("unsupported postgres driver: %s (use %q or %q)", c.Database.Driver, DriverPgx, DriverPq)
	}

	counts := map[string]int{
		"drivers":   c.Counts.Drivers,
		"customers": c.Counts.Customers,
		"products":  c.Counts.Products,
		"orders":    c.Counts.Orders,
		"routes":    c.Counts.Routes,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("counts.%s cannot be negative (got %d)", name, n)
		}
	}
	if c.Counts.Orders > 0 && (c.Counts.Customers == 0 || c.Counts.Products == 0) {
		return fmt.Errorf("orders need at least one customer and one product")
	}
	if c.Counts.Routes > 0 && c.Counts.Drivers == 0 {
		return fmt.Errorf("routes need at least one driver")
	}

	if c.CommitEvery <= 0 {
		return fmt.Errorf("commit_every must be positive (got %d)", c.CommitEvery)
	}

	if c.Addresses != AddressZone && c.Addresses != AddressFaker {
		return fmt.Errorf("unsupported address style: %s (use %q or %q)", c.Addresses, AddressZone, AddressFaker)
	}

	if c.Credentials.BcryptCost < bcrypt.MinCost || c.Credentials.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("credentials.bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Credentials.AdminEmail == "" {
		return fmt.Errorf("credentials.admin_email cannot be empty")
	}

	return nil
}

// DatabaseURL reads the connection string from the configured environment
// variable. It is never stored in the config file.
func (c *Config) DatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// Masked returns a copy safe to print.
func (c Config) Masked() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return maskedPassword
	}
	c.Credentials.AdminPassword = mask(c.Credentials.AdminPassword)
	c.Credentials.DriverPassword = mask(c.Credentials.DriverPassword)
	c.Credentials.CustomerPassword = mask(c.Credentials.CustomerPassword)
	return c
}
