package common

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/COMP3220/2020S1/models"
	"github.com/COMP3220/2020S1/pkg/analytics"
	"github.com/COMP3220/2020S1/pkg/rank"
)

// ErrNoStems is returned when the vocabulary resolves to nothing.
var ErrNoStems = errors.New("no stems: pass --stems or a positive --top-stems")

// NewLogger builds the JSON stderr logger used by every action.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// ReadInput returns the contents of the file named by the first argument, or
// of stdin when there is no argument or it is "-".
func ReadInput(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// PrintYAML writes v to the app's stdout as YAML.
func PrintYAML(c *cli.Context, v interface{}) error {
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// ParseStems splits a comma-separated stem list, dropping blanks and
// lowercasing entries.
func ParseStems(s string) []string {
	var stems []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			stems = append(stems, part)
		}
	}
	return stems
}

// BuildConfig layers the --config file, the environment and explicit flags
// over the defaults, then validates the result.
func BuildConfig(c *cli.Context) (models.SummaryConfig, error) {
	cfg := models.DefaultSummaryConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadSummaryConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// IsSet is true for values that came from EnvVars as well as flags.
	if c.IsSet("n") {
		cfg.Sentences = c.Int("n")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Float64("threshold")
	}
	if c.IsSet("damping") {
		cfg.Damping = c.Float64("damping")
	}
	if c.IsSet("epsilon") {
		cfg.Epsilon = c.Float64("epsilon")
	}
	if c.IsSet("max-iterations") {
		cfg.MaxIterations = c.Int("max-iterations")
	}
	if c.IsSet("top-stems") {
		cfg.TopStems = c.Int("top-stems")
	}
	if c.IsSet("strict-language") {
		cfg.StrictLanguage = c.Bool("strict-language")
	}
	if c.IsSet("stopwords") {
		cfg.StopwordsFile = c.String("stopwords")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// RankParams converts the ranking part of cfg.
func RankParams(cfg models.SummaryConfig) rank.Params {
	return rank.Params{
		Threshold:     cfg.Threshold,
		Damping:       cfg.Damping,
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
	}
}

// LoadStopwords returns the English list, or an empty one with
// --no-default-stopwords, extended by cfg.StopwordsFile when set.
func LoadStopwords(c *cli.Context, cfg models.SummaryConfig) (analytics.Stopwords, error) {
	stop := analytics.EnglishStopwords()
	if c.Bool("no-default-stopwords") {
		stop = analytics.NewStopwords()
	}
	if cfg.StopwordsFile == "" {
		return stop, nil
	}

	f, err := os.Open(cfg.StopwordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open stopwords: %w", err)
	}
	defer f.Close()

	extra, err := analytics.LoadStopwords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read stopwords %s: %w", cfg.StopwordsFile, err)
	}
	stop.Merge(extra)
	return stop, nil
}

// Vocabulary returns the --stems list when given, otherwise the cfg.TopStems
// most frequent stems of text.
func Vocabulary(c *cli.Context, text string, cfg models.SummaryConfig, stop analytics.Stopwords) ([]string, error) {
	if c.IsSet("stems") {
		stems := ParseStems(c.String("stems"))
		if len(stems) == 0 {
			return nil, ErrNoStems
		}
		return stems, nil
	}

	stems, err := analytics.TopStems(text, cfg.TopStems, stop)
	if err != nil {
		return nil, err
	}
	if len(stems) == 0 && strings.TrimSpace(text) != "" {
		return nil, ErrNoStems
	}
	return stems, nil
}
