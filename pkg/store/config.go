package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where StudyEd keeps its files.
type Config interface {
	// BasePath is the directory of the local store.
	BasePath() string
	// ContentPath is the schedule file; empty means the bundled schedule.
	ContentPath() string
	// QuizPath is the question bank file; empty means the bundled bank.
	QuizPath() string
	// NotesPath is the study-notes file; empty means the bundled notes.
	NotesPath() string
	// LogPath is the log file.
	LogPath() string
	// LogLevel is a zap level name.
	LogLevel() string
}

// LoadConfig resolves configuration from a .studyed file, STUDYED_* env vars
// and defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.studyed.db")
	v.SetDefault("content", "")
	v.SetDefault("quiz", "")
	v.SetDefault("notes", "")
	v.SetDefault("log", "~/.studyed.log")
	v.SetDefault("log_level", "info")
	v.SetConfigName(".studyed") // .yaml is implicit
	v.SetEnvPrefix("STUDYED")
	v.AutomaticEnv()

	if override := os.Getenv("STUDYED_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &fileConfig{Level: v.GetString("log_level")}
	for dst, key := range map[*string]string{
		&cfg.Path:    "path",
		&cfg.Content: "content",
		&cfg.Quiz:    "quiz",
		&cfg.Notes:   "notes",
		&cfg.Log:     "log",
	} {
		expanded, err := homedir.Expand(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("store: expand %s: %w", key, err)
		}
		*dst = expanded
	}
	return cfg, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Quiz    string `json:"quiz"`
	Notes   string `json:"notes"`
	Log     string `json:"log"`
	Level   string `json:"log_level"`
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) ContentPath() string { return f.Content }
func (f *fileConfig) QuizPath() string    { return f.Quiz }
func (f *fileConfig) NotesPath() string   { return f.Notes }
func (f *fileConfig) LogPath() string     { return f.Log }
func (f *fileConfig) LogLevel() string    { return f.Level }
