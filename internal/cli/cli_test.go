package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/api/internal/config"
	"showcase/api/internal/handlers"
	"showcase/api/internal/seed"
)

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:        "127.0.0.1:0",
		DBTimeout:       time.Second,
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
		SeedGuard:       string(seed.GuardPerCollection),
	}
}

func TestServeSeedsBeforeListening(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, testConfig(), zerolog.Nop(), func(a net.Addr) { addrCh <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-done:
		t.Fatalf("serve exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not start listening")
	}

	// the very first request already sees the full seed
	resp, err := http.Get("http://" + addr.String() + handlers.ToolsPath)
	require.NoError(t, err)
	var tools []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tools))
	resp.Body.Close()
	assert.Len(t, tools, 17)

	resp, err = http.Get("http://" + addr.String() + handlers.IndustrySectorsPath)
	require.NoError(t, err)
	var sectors []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sectors))
	resp.Body.Close()
	assert.Len(t, sectors, 6)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not shut down")
	}
}

func TestServeFailsOnBadAddress(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = "not-an-address"
	err := serve(context.Background(), cfg, zerolog.Nop(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestSeedCommandInMemory(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "seeded 17 tools, 6 industry sectors\n", out.String())
}

func TestRootRejectsBadConfig(t *testing.T) {
	t.Setenv("SEED_GUARD", "bogus")

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_GUARD")
}
