package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	opts := Opts{Config: "non-existent-config.yml"}

	err := run(ctx, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err = run(ctx, Opts{Config: tmpFile.Name()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_StartsAndShutsDown(t *testing.T) {
	dbFile, err := os.CreateTemp("", "reader-*.db")
	require.NoError(t, err)
	dbFile.Close()
	defer os.Remove(dbFile.Name())

	cfgFile, err := os.CreateTemp("", "config-*.yml")
	require.NoError(t, err)
	_, err = cfgFile.WriteString(`
server:
  listen: "127.0.0.1:0"
database:
  dsn: "file:` + dbFile.Name() + `?mode=rwc"
connectivity:
  probe_addr: "127.0.0.1:1"
  timeout: 100ms
`)
	require.NoError(t, err)
	cfgFile.Close()
	defer os.Remove(cfgFile.Name())

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err = run(ctx, Opts{Config: cfgFile.Name()})
	assert.NoError(t, err, "context cancellation is a clean shutdown")
}

func TestSetupLog(t *testing.T) {
	// must not panic in either mode
	setupLog(false)
	setupLog(true, "secret-key")
	setupLog(false, "")
}
