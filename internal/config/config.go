// Package config contains utilities for loading configs
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/go-playground/validator/v10"
)

const (
	defaultConfigFilePath = "/data/recipematch.yaml"
	defaultServerPort     = 8080
	defaultTrendingLimit  = 10
	MaxTrendingLimit      = 100
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

type LogLevel string

func (l LogLevel) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l)); err != nil {
		return fmt.Errorf("unknown log level: %q", l)
	}
	return nil
}

// Level returns the slog level for l, falling back to info.
func (l LogLevel) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SeedSource is where the initial catalog is read from: a file path, an
// http(s) URL, or empty for the embedded catalog.
type SeedSource string

func (s SeedSource) IsRemote() bool {
	return strings.HasPrefix(string(s), "http://") || strings.HasPrefix(string(s), "https://")
}

func (s SeedSource) Validate() error {
	if !s.IsRemote() {
		return nil
	}
	u, err := url.Parse(string(s))
	if err != nil {
		return fmt.Errorf("parsing seed url: %w", err)
	}
	if u.Host == "" {
		return errors.New("seed url has no host")
	}
	return nil
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing implements a cross-field validator for go-playground/validator.
//
// The validator succeeds only if either all listed fields have zero values or
// all listed fields have non-zero values. It must be attached to a placeholder
// field and inspects the parent struct. Field names are provided as a comma-
// or space-separated list via the tag parameter
// (e.g. `validate:"allOrNothing=A,B,C"`).
//
// A nil pointer or interface is treated as a zero value; a non-nil one is
// dereferenced before being checked with reflect.Value.IsZero.
//
// A non-struct parent, an unknown field name, or an empty field list fails
// validation to signal misconfiguration.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true // nothing to validate
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false // field name typo / not found
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func registerAllOrNothing(v *validator.Validate) {
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// "Config.Database.Validate" -> "Database"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "Database":
				fields = "Port, Host, Database, User, and Password"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

type Server struct {
	Port uint16 `yaml:"port" validate:"required"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// URL returns the connection string for the database.
func (d Database) URL() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Database,
	}
	return u.String()
}

type Fileserver struct {
	Volume    string `yaml:"volume"`
	URLPrefix string `yaml:"url_prefix" validate:"omitempty,startswith=/"`
}

type Seed struct {
	Enabled *bool      `yaml:"enabled"`
	Source  SeedSource `yaml:"source" validate:"omitempty,validateFn"`
}

func (s Seed) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

type RateLimit struct {
	// Requests per minute per client on the match endpoint. Zero disables
	// the limit.
	Requests int `yaml:"requests" validate:"gte=0"`
}

type Trending struct {
	Limit int32 `yaml:"limit" validate:"gte=1,lte=100"`
}

type Config struct {
	Server     Server     `yaml:"server"`
	Database   Database   `yaml:"database"`
	Fileserver Fileserver `yaml:"fileserver"`
	Seed       Seed       `yaml:"seed"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
	Trending   Trending   `yaml:"trending"`
	HostOrigin string     `yaml:"host_origin" validate:"url"`
	Env        string     `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	LogLevel   LogLevel   `yaml:"log_level" validate:"omitempty,validateFn"`
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func validate(conf Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(v)
	if err := v.Struct(conf); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func loadConfigFromEnv() (Config, error) {
	environment := loadWithDefault("ENV", EnvDev)
	hostOrigin := loadWithDefault("HOST_ORIGIN", "http://localhost:8080")
	logLevel := LogLevel(loadWithDefault("LOG_LEVEL", "INFO"))
	serverPort := loadWithDefault("SERVER_PORT", strconv.Itoa(defaultServerPort))

	// Database
	databasePort := loadWithDefault("DATABASE_PORT", "5432")
	databaseHost := loadWithDefault("DATABASE_HOST", "localhost")
	databaseDatabase := loadWithDefault("DATABASE", "")
	databaseUser := loadWithDefault("DATABASE_USER", "")
	databasePassword := loadWithDefault("DATABASE_PASSWORD", "")

	// Fileserver
	fileserverVolume := loadWithDefault("FILESERVER_VOLUME", "/data/files")
	fileserverURLPrefix := loadWithDefault("FILESERVER_URL_PREFIX", "/files")

	// Seed
	seedEnabled := loadWithDefault("SEED_ENABLED", "true")
	seedSource := SeedSource(loadWithDefault("SEED_SOURCE", ""))

	rateLimitRequests := loadWithDefault("RATE_LIMIT_REQUESTS", "0")
	trendingLimit := loadWithDefault("TRENDING_LIMIT", strconv.Itoa(defaultTrendingLimit))

	conf := Config{
		HostOrigin: hostOrigin,
		Env:        environment,
		LogLevel:   logLevel,
	}

	if port, err := strconv.ParseUint(serverPort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid SERVER_PORT (%q): %w", serverPort, err)
	} else {
		conf.Server.Port = uint16(port)
	}

	conf.Database = Database{
		Host:     databaseHost,
		Database: databaseDatabase,
		User:     databaseUser,
		Password: databasePassword,
	}
	if port, err := strconv.ParseUint(databasePort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
	} else {
		conf.Database.Port = uint16(port)
	}

	conf.Fileserver = Fileserver{
		Volume:    fileserverVolume,
		URLPrefix: fileserverURLPrefix,
	}

	conf.Seed.Source = seedSource
	if b, err := strconv.ParseBool(seedEnabled); err != nil {
		return conf, fmt.Errorf("invalid SEED_ENABLED (%q): %w", seedEnabled, err)
	} else {
		conf.Seed.Enabled = &b
	}

	if n, err := strconv.Atoi(rateLimitRequests); err != nil {
		return conf, fmt.Errorf("invalid RATE_LIMIT_REQUESTS (%q): %w", rateLimitRequests, err)
	} else {
		conf.RateLimit.Requests = n
	}

	if n, err := strconv.ParseInt(trendingLimit, 10, 32); err != nil {
		return conf, fmt.Errorf("invalid TRENDING_LIMIT (%q): %w", trendingLimit, err)
	} else {
		conf.Trending.Limit = int32(n)
	}

	if err := validate(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = "http://localhost:8080"
	}
	if config.LogLevel == "" {
		config.LogLevel = "INFO"
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaultServerPort
	}
	if config.Database.Host == "" {
		config.Database.Host = "localhost"
	}
	if config.Database.Port == 0 {
		config.Database.Port = 5432
	}
	if config.Fileserver.Volume == "" {
		config.Fileserver.Volume = "/data/files"
	}
	if config.Fileserver.URLPrefix == "" {
		config.Fileserver.URLPrefix = "/files"
	}
	if config.Trending.Limit == 0 {
		config.Trending.Limit = defaultTrendingLimit
	}

	if err := validate(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML file named by CONFIG_FILE when it exists and
// the environment otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault("CONFIG_FILE", defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
