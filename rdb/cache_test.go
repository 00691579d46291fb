package rdb

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	k := Key("english", []byte(`{"tokens":[]}`))
	assert.True(t, strings.HasPrefix(k, keyPrefix))
	assert.Len(t, strings.TrimPrefix(k, keyPrefix), 40)

	assert.Equal(t, k, Key("english", []byte(`{"tokens":[]}`)))
	assert.NotEqual(t, k, Key("german", []byte(`{"tokens":[]}`)))
	assert.NotEqual(t, k, Key("english", []byte(`{"tokens":[{}]}`)))

	// the separator keeps name and body apart
	assert.NotEqual(t, Key("ab", []byte("c")), Key("a", []byte("bc")))
}

func TestNilCache(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Close())
}

func TestConfValidateAndDefaults(t *testing.T) {
	conf := &Conf{}
	require.Error(t, conf.ValidateAndDefaults())

	conf = &Conf{Host: "localhost"}
	require.NoError(t, conf.ValidateAndDefaults())
	assert.Equal(t, DefaultPort, conf.Port)
	assert.Equal(t, 600, conf.TTLSecs)
}
