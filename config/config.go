// Package config loads the immutable service configuration at start-up.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// HasherBcrypt and HasherArgon2id are the accepted auth.passwordHasher values.
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

// replicasKey is filled from POSTGRES_REPLICAS_<n>_* by buildReplicasFromEnv.
const replicasKey = "postgres.replicas"

type Config struct {
	Env EnvConfig `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"required"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	JWT JWTConfig `json:"jwt" yaml:"jwt"`

	Auth AuthConfig `json:"auth" yaml:"auth"`
}

type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port" validate:"required,min=1,max=65535"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
	CORS CORSConfig `json:"cors" yaml:"cors"`
}

// CORSConfig lists the browser origins allowed to call the API with credentials.
type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// DatabaseConfig holds schema options that sit next to the connection settings.
type DatabaseConfig struct {
	// AutoMigrate creates missing tables on start-up.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// JWTConfig defines how access tokens are signed. All fields are required.
type JWTConfig struct {
	Secret               string `json:"secret" yaml:"secret" validate:"required"`
	Algorithm            string `json:"algorithm" yaml:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	AccessTokenExpireMin int    `json:"accessTokenExpireMin" yaml:"accessTokenExpireMin" validate:"required,gt=0"`
}

// AccessTokenTTL returns the access token lifetime.
func (c JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMin) * time.Minute
}

// AuthConfig defines password hashing parameters.
type AuthConfig struct {
	PasswordHasher string       `json:"passwordHasher" yaml:"passwordHasher" validate:"omitempty,oneof=bcrypt argon2id"`
	BcryptCost     int          `json:"bcryptCost" yaml:"bcryptCost" validate:"omitempty,min=4,max=31"`
	Argon2         Argon2Config `json:"argon2" yaml:"argon2"`
}

// Argon2Config holds argon2id cost parameters. Zero values fall back to the hasher defaults.
type Argon2Config struct {
	Time      uint32 `json:"time" yaml:"time"`
	MemoryKiB uint32 `json:"memoryKiB" yaml:"memoryKiB"`
	Threads   uint8  `json:"threads" yaml:"threads"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// JWT_SECRET -> jwt.secret, JWT_ACCESSTOKENEXPIREMIN -> jwt.accessTokenExpireMin.
			// Variables outside the YAML's top-level sections are dropped.
			key, ok := canonicalizeEnvKey(k, existingConfigMap)
			if !ok || strings.HasPrefix(key, replicasKey) {
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads .env files, config.yaml and the environment, then validates the result.
// Any error here is fatal for the process.
func New() (*Config, error) {
	searchDirs := []string{"config", "../config", "../../config"}

	if err := loadDotEnv(append([]string{defaultPath}, searchDirs...)...); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", searchDirs...)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	return nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

// loadDotEnv reads the first .env found in dirs. Variables already set in the
// process environment win over the file.
func loadDotEnv(dirs ...string) error {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return errors.Wrapf(err, "load %s", candidate)
		}

		return nil
	}

	return nil
}

// canonicalizeEnvKey maps an ENV_VAR_NAME onto the dotted koanf path, reusing
// the spelling of keys already present in the YAML. ok is false when the
// first segment is not a known top-level section or nothing follows it.
func canonicalizeEnvKey(rawKey string, existing map[string]any) (key string, ok bool) {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, found := findExistingSegment(current, segment)
		if len(canonical) == 0 && !found {
			return "", false
		}
		if found {
			canonical = append(canonical, matched)
			current = next

			continue
		}
		canonical = append(canonical, segment)
		current = nil
	}

	// A bare section name would replace the whole subtree with a string.
	if len(canonical) < 2 {
		return "", false
	}

	return strings.Join(canonical, "."), true
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
