package commands

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, apiKey string) {
	t.Helper()
	for _, name := range []string{
		"SPOONACULAR_BASE_URL", "SPOONACULAR_TIMEOUT", "HOST", "PORT",
		"SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "ENV", "CONFIG_FILE",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("NODE_ENV", "test")
	t.Setenv("SPOONACULAR_API_KEY", apiKey)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestExecuteRequiresAPIKey(t *testing.T) {
	setEnv(t, "")

	err := Execute(context.Background(), []string{"recipe-finder"}, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPOONACULAR_API_KEY")
}

func TestExecuteRejectsInvalidFlags(t *testing.T) {
	setEnv(t, "test-key")

	t.Run("should reject an out of range port", func(t *testing.T) {
		err := Execute(context.Background(), []string{"recipe-finder", "--port", "70000"}, "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})

	t.Run("should reject an unknown log level", func(t *testing.T) {
		err := Execute(context.Background(), []string{"recipe-finder", "--log-level", "loud"}, "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})
}

func TestExecuteServesUntilCancelled(t *testing.T) {
	setEnv(t, "test-key")
	t.Setenv("HOST", "127.0.0.1")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	args := []string{"recipe-finder", "--port", strconv.Itoa(freePort(t)), "--log-level", "error"}
	assert.NoError(t, Execute(ctx, args, "test"))
}

func TestExecuteReadsConfigFlag(t *testing.T) {
	setEnv(t, "test-key")

	err := Execute(context.Background(), []string{"recipe-finder", "--config", "/nonexistent/recipe-finder.toml"}, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}
