package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	isolateEnv(t)
	p := writeFile(t, t.TempDir(), "config.toml", `log_level = "info"`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, src, err := Load(fs, []string{"--config", p})
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		got []Config
	)
	w := NewWatcher(src, zap.NewNop(), func(cfg Config) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, cfg)
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(p, []byte(`log_level = "debug"`), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0 && got[len(got)-1].LogLevel == "debug"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherSkipsInvalidReload(t *testing.T) {
	isolateEnv(t)
	p := writeFile(t, t.TempDir(), "config.toml", `log_level = "info"`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, src, err := Load(fs, []string{"--config", p})
	require.NoError(t, err)

	calls := make(chan Config, 4)
	w := NewWatcher(src, zap.NewNop(), func(cfg Config) { calls <- cfg })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(p, []byte(`log_level = "shouting"`), 0o644))

	select {
	case cfg := <-calls:
		t.Fatalf("expected invalid config to be rejected, got %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherWithoutFileIsNoop(t *testing.T) {
	w := NewWatcher(Source{}, zap.NewNop(), func(Config) {})
	assert.NoError(t, w.Start(context.Background()))
}

func TestWatcherStartFailsForMissingDirectory(t *testing.T) {
	src := Source{Path: filepath.Join(t.TempDir(), "gone", "config.toml")}
	w := NewWatcher(src, zap.NewNop(), func(Config) {})
	assert.Error(t, w.Start(context.Background()))
}
