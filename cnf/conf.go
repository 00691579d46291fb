// Package cnf holds the configuration of the HTTP API server.
package cnf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/vclause/rdb"
)

const (
	dfltListenAddress          = "127.0.0.1"
	dfltListenPort             = 8090
	dfltServerReadTimeoutSecs  = 10
	dfltServerWriteTimeoutSecs = 30
	dfltLogLevel               = "info"
)

// Conf is the global configuration of the server
type Conf struct {
	ListenAddress          string           `json:"listenAddress"`
	ListenPort             int              `json:"listenPort"`
	ServerReadTimeoutSecs  int              `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int              `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string         `json:"corsAllowedOrigins"`
	CorpusPath             string           `json:"corpusPath"`
	TagsetPath             string           `json:"tagsetPath"`
	LexiconPaths           []string         `json:"lexiconPaths"`
	Headers                []string         `json:"headers"`
	NoValidate             bool             `json:"noValidate"`
	Redis                  *rdb.Conf        `json:"redis"`
	LogFile                string           `json:"logFile"`
	LogLevel               logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

func (conf *Conf) Addr() string {
	return fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort)
}

func (conf *Conf) ReadTimeout() time.Duration {
	return time.Duration(conf.ServerReadTimeoutSecs) * time.Second
}

func (conf *Conf) WriteTimeout() time.Duration {
	return time.Duration(conf.ServerWriteTimeoutSecs) * time.Second
}

// SourcePath returns the path of the file the config was loaded from.
func (conf *Conf) SourcePath() string {
	return conf.srcPath
}

func LoadConfig(path string) (*Conf, error) {
	if path == "" {
		return nil, errors.New("cannot load config: path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	var conf Conf
	conf.srcPath = path
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	return &conf, nil
}

// ValidateAndDefaults fills the missing values with defaults and fails on
// values the server cannot start with.
func ValidateAndDefaults(conf *Conf) error {
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
		log.Warn().Str("address", conf.ListenAddress).Msg("listenAddress not specified, using default")
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Warn().Msgf("listenPort not specified, using default: %d", dfltListenPort)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf("serverReadTimeoutSecs not specified, using default: %d", dfltServerReadTimeoutSecs)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf("serverWriteTimeoutSecs not specified, using default: %d", dfltServerWriteTimeoutSecs)
	}
	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}
	if _, err := zerolog.ParseLevel(string(conf.LogLevel)); err != nil {
		return fmt.Errorf("invalid logLevel: %w", err)
	}

	if conf.CorpusPath == "" {
		log.Warn().Msg("corpusPath not specified, /doc endpoint will be disabled")

	} else if !fs.PathExists(conf.CorpusPath) {
		return fmt.Errorf("corpusPath %s does not exist", conf.CorpusPath)
	}

	if conf.TagsetPath != "" {
		isFile, err := fs.IsFile(conf.TagsetPath)
		if err != nil {
			return fmt.Errorf("invalid tagsetPath: %w", err)
		}
		if !isFile {
			return fmt.Errorf("tagsetPath %s is not a file", conf.TagsetPath)
		}
	}

	if len(conf.CorsAllowedOrigins) == 0 {
		log.Warn().Msg("corsAllowedOrigins not specified, cross origin requests will be rejected")
	}

	if conf.Redis != nil {
		if err := conf.Redis.ValidateAndDefaults(); err != nil {
			return err
		}
	} else {
		log.Info().Msg("redis not configured, extraction results will not be cached")
	}

	return nil
}

// SetupLogging configures the global logger. An empty path logs to stderr
// with a console writer, otherwise records are appended to the file.
func SetupLogging(path string, level logging.LogLevel) error {
	lvl, err := zerolog.ParseLevel(string(level))
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var w io.Writer
	if path == "" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	} else {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
