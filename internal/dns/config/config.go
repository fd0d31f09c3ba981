package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
// The CLI flags cover the per-invocation inputs (domain, seed, verbosity);
// everything operational lives here.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	// The -verbose flag lowers it to "info" when it is higher.
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// BindAddr is the local address the query socket binds to.
	BindAddr string `koanf:"bind_addr" validate:"required,host_port"`

	// TimeoutSeconds is the per-receive deadline. Zero disables the
	// deadline and a silent authority blocks the resolution indefinitely.
	TimeoutSeconds int `koanf:"timeout_seconds" validate:"gte=0"`

	// BufferSize is the receive buffer capacity in bytes. Replies that
	// fill the buffer exactly are reported as truncated.
	BufferSize int `koanf:"buffer_size" validate:"required,gte=512"`

	// MaxDepth bounds delegation nesting and the number of authorities
	// queried per resolution attempt.
	MaxDepth int `koanf:"max_depth" validate:"required,gte=1"`

	// MaxPointerJumps bounds name compression pointer chains per name.
	MaxPointerJumps int `koanf:"max_pointer_jumps" validate:"required,gte=1"`
}

// DEFAULT_APP_CONFIG defines the default application configuration. The
// 1024-byte receive buffer is a practical ceiling for typical DNS replies.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:             "prod",
	LogLevel:        "error",
	BindAddr:        "0.0.0.0:0",
	TimeoutSeconds:  5,
	BufferSize:      1024,
	MaxDepth:        16,
	MaxPointerJumps: 10,
}

// validHostPort validates a "host:port" value. Port 0 is allowed so the
// kernel can pick an ephemeral local port.
func validHostPort(fl validator.FieldLevel) bool {
	host, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil || host == "" || port == "" {
		return false
	}
	if net.ParseIP(host) == nil {
		return false
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum < 65536
}

// envLoader loads environment variables with the prefix "ROOTWALK_",
// lowercasing keys and stripping the prefix. It is a var so tests can
// substitute it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "ROOTWALK_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "ROOTWALK_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads default values with the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables into an AppConfig, applying defaults
// and running validation.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("host_port", validHostPort); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
