package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/tokencalc/internal/app"
	"github.com/atomicstack/tokencalc/internal/source"
	"github.com/atomicstack/tokencalc/internal/suggest"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envEndpoint   = "TOKENCALC_ENDPOINT"
	envTimeout    = "TOKENCALC_TIMEOUT"
	envMatch      = "TOKENCALC_MATCH"
	envWidth      = "TOKENCALC_WIDTH"
	envHeight     = "TOKENCALC_HEIGHT"
	envShowFooter = "TOKENCALC_FOOTER"
	envMouse      = "TOKENCALC_MOUSE"
	envBlink      = "TOKENCALC_BLINK"
	envTrace      = "TOKENCALC_TRACE"
	envLogFile    = "TOKENCALC_LOG_FILE"
	envConfigFile = "TOKENCALC_CONFIG"

	dotEnvFile = ".env"
)

// fileConfig mirrors the optional TOML file. Pointer fields distinguish
// "absent" from a zero value.
type fileConfig struct {
	Endpoint string `toml:"endpoint"`
	Timeout  string `toml:"timeout"`
	Match    string `toml:"match"`
	Width    *int   `toml:"width"`
	Height   *int   `toml:"height"`
	Footer   *bool  `toml:"footer"`
	Mouse    *bool  `toml:"mouse"`
	Blink    *bool  `toml:"blink"`
	Trace    *bool  `toml:"trace"`
	LogFile  string `toml:"log_file"`
}

// Load parses configuration from CLI arguments, the environment and an
// optional .env file in the working directory. Real environment variables
// win over .env entries.
func Load() (Config, error) {
	environ := append(readDotEnv(dotEnvFile), os.Environ()...)
	return LoadArgs(os.Args[1:], environ)
}

// LoadArgs allows tests to supply specific args/environment. Later entries
// in environ override earlier ones.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := configPathFromArgs(args)
	if configPath == "" {
		configPath = envOrDefault(env, envConfigFile, "")
	}
	file, err := loadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("tokencalc", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configPath, "path to a TOML configuration file")
	endpoint := fs.String("endpoint", envOrDefault(env, envEndpoint, stringOr(file.Endpoint, source.DefaultEndpoint)), "URL of the suggestion list")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, durationOr(file.Timeout, source.DefaultTimeout)), "timeout for the suggestion request")
	match := fs.String("match", envOrDefault(env, envMatch, stringOr(file.Match, string(suggest.ModeSubstring))), "suggestion match mode: substring, prefix or fuzzy")
	width := fs.Int("width", envOrInt(env, envWidth, intOr(file.Width, 0)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, intOr(file.Height, 0)), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, boolOr(file.Footer, false)), "enable footer hint row (disabled by default)")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, boolOr(file.Mouse, true)), "enable mouse hover and click on suggestions")
	blink := fs.Bool("blink", envOrBool(env, envBlink, boolOr(file.Blink, true)), "blink the caret")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")
	eval := fs.String("eval", "", "evaluate the given text, print the result and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Endpoint:   strings.TrimSpace(*endpoint),
			Timeout:    *timeout,
			Match:      strings.TrimSpace(*match),
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Mouse:      *mouse,
			Blink:      *blink,
			Eval:       *eval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: configPath,
		Flags: map[string]string{
			"config":   configPath,
			"endpoint": *endpoint,
			"timeout":  timeout.String(),
			"match":    *match,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"mouse":    strconv.FormatBool(*mouse),
			"blink":    strconv.FormatBool(*blink),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"eval":     *eval,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if strings.TrimSpace(path) == "" {
		return fc, nil
	}
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fileConfig{}, fmt.Errorf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if fc.Timeout != "" {
		if _, err := time.ParseDuration(fc.Timeout); err != nil {
			return fileConfig{}, fmt.Errorf("config file %s: timeout: %w", path, err)
		}
	}
	return fc, nil
}

// configPathFromArgs finds -config before the flag set is built, since the
// file supplies the flag defaults.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg || (name != "config" && !strings.HasPrefix(name, "config=")) {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// readDotEnv returns the entries of a .env file as KEY=VALUE strings. A
// missing file yields nothing.
func readDotEnv(path string) []string {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", path, err)
		}
		return nil
	}
	entries := make([]string, 0, len(values))
	for k, v := range values {
		entries = append(entries, k+"="+v)
	}
	return entries
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func stringOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func durationOr(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	if cfg.App.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", cfg.App.Timeout)
	}
	if _, err := suggest.ParseMode(cfg.App.Match); err != nil {
		return err
	}
	return nil
}
