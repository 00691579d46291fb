package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConf(t, `{
		"listenPort": 9000,
		"corsAllowedOrigins": ["http://localhost:3000"],
		"headers": ["lemma", "tense"],
		"redis": {"host": "localhost"},
		"logLevel": "debug"
	}`)

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, conf.ListenPort)
	assert.Equal(t, []string{"lemma", "tense"}, conf.Headers)
	assert.Equal(t, path, conf.SourcePath())
	assert.True(t, conf.IsDebugMode())

	require.NoError(t, ValidateAndDefaults(conf))
	assert.Equal(t, "127.0.0.1:9000", conf.Addr())
	assert.Equal(t, dfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, 6379, conf.Redis.Port)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = LoadConfig(writeConf(t, `{"listenPort": "x"}`))
	require.Error(t, err)
}

func TestValidateAndDefaultsErrors(t *testing.T) {
	conf := &Conf{LogLevel: "loud"}
	require.Error(t, ValidateAndDefaults(conf))

	conf = &Conf{CorpusPath: filepath.Join(t.TempDir(), "missing")}
	require.Error(t, ValidateAndDefaults(conf))

	conf = &Conf{TagsetPath: t.TempDir()}
	require.Error(t, ValidateAndDefaults(conf))
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	path := filepath.Join(t.TempDir(), "vclause.log")
	require.NoError(t, SetupLogging(path, "warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.FileExists(t, path)

	require.Error(t, SetupLogging("", "loud"))
}
