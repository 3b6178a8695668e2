// Package config loads dronepath settings from command-line flags, the
// environment (DRONEPATH_ prefix) and an optional config file.
//
// Precedence, highest first: explicit flag, environment variable, config
// file, flag default.
package config

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. DRONEPATH_MODE.
const EnvPrefix = "DRONEPATH"

var (
	// ErrHelp is returned when -h/--help was given.
	ErrHelp = errors.New("config: help requested")

	// ErrNoMode is returned when no mode was set by any source.
	ErrNoMode = errors.New("no mode specified")

	// ErrInvalidMode is returned for a mode other than MST, FASTTSP or OPTTSP.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidFlag wraps command-line parse failures.
	ErrInvalidFlag = errors.New("invalid option")

	// ErrInvalidConfig wraps validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the validated run configuration.
type Config struct {
	Mode        string        `mapstructure:"mode" validate:"required,oneof=MST FASTTSP OPTTSP"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	MSTMethod   string        `mapstructure:"mst_method" validate:"oneof=prim kruskal"`
	BoundCutoff int           `mapstructure:"bound_cutoff" validate:"min=0"`
	OptMethod   string        `mapstructure:"opt_method" validate:"oneof=bb heldkarp"`
	TimeLimit   time.Duration `mapstructure:"time_limit" validate:"min=0"`
}

// flag name → viper key
var bindings = [][2]string{
	{"mode", "mode"},
	{"log-level", "log_level"},
	{"mst-method", "mst_method"},
	{"bound-cutoff", "bound_cutoff"},
	{"opt-method", "opt_method"},
	{"time-limit", "time_limit"},
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("dronepath", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringP("mode", "m", "", "MST|FASTTSP|OPTTSP")
	fs.BoolP("help", "h", false, "print this help and exit")
	fs.String("config", "", "optional config file (yaml, toml, json)")
	fs.String("log-level", "warn", "debug|info|warn|error (logs go to stderr)")
	fs.String("mst-method", "prim", "prim|kruskal")
	fs.Int("bound-cutoff", 5, "OPTTSP: skip the MST bound with this many vertices or fewer left")
	fs.String("opt-method", "bb", "OPTTSP solver: bb|heldkarp")
	fs.Duration("time-limit", 0, "OPTTSP: stop branch and bound after this long (0 = unlimited)")

	return fs
}

// Usage returns the help text printed for -h/--help.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: -m | --mode <MST|FASTTSP|OPTTSP> < points\n\n")
	b.WriteString(newFlagSet().FlagUsages())

	return b.String()
}

// Load parses args (without the program name) and merges the environment
// and the optional config file into a validated Config.
func Load(args []string) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if help, _ := fs.GetBool("help"); help {
		return Config{}, ErrHelp
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, b := range bindings {
		if err := v.BindPFlag(b[1], fs.Lookup(b[0])); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", b[0], err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	switch cfg.Mode {
	case "":
		return Config{}, ErrNoMode
	case "MST", "FASTTSP", "OPTTSP":
	default:
		return Config{}, fmt.Errorf("%w %s", ErrInvalidMode, cfg.Mode)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(translateError(err, trans), "; "))
}

func translateError(err error, trans ut.Translator) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, e.Translate(trans))
	}

	return out
}
