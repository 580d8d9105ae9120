package system

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	sioclient "github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/export"
	"github.com/vk/surfgrid/internal/preview"
	"github.com/vk/surfgrid/internal/testutil"
)

// writeScene rewrites the watched scene file in place.
func writeScene(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// startPreview starts a watching preview server on an ephemeral port with its
// logs captured.
func startPreview(t *testing.T, scenePath string) (*preview.Server, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	ctx, cancel := context.WithCancel(ctxlog.WithLogger(context.Background(), testutil.TestLogger(logBuffer)))

	srv := preview.New(preview.Config{
		Addr:      "127.0.0.1:0",
		ScenePath: scenePath,
		Watch:     true,
		Debounce:  100 * time.Millisecond,
	})
	require.NoError(t, srv.Start(ctx))
	t.Cleanup(func() {
		srv.Shutdown(context.Background())
		cancel()
		if os.Getenv("SURFGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})
	return srv, logBuffer
}

// connectViewer connects a websocket socket.io client to the server and
// forwards every scene push into the returned channel.
func connectViewer(t *testing.T, addr string) (*sioclient.Socket, <-chan any) {
	t.Helper()

	sceneCh := make(chan any, 4)
	opts := sioclient.DefaultOptions()
	opts.SetTransports(types.NewSet(transports.WebSocket))
	manager := sioclient.NewManager("http://"+addr, opts)
	client := manager.Socket("/", opts)

	client.On(types.EventName(preview.SceneEvent), func(data ...any) {
		if len(data) > 0 {
			sceneCh <- data[0]
		}
	})
	client.Connect()
	t.Cleanup(func() { client.Disconnect() })
	return client, sceneCh
}

func waitForScene(t *testing.T, ch <-chan any) any {
	t.Helper()
	select {
	case raw := <-ch:
		return raw
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for scene push")
		return nil
	}
}

func decodeSnapshot(t *testing.T, raw any) export.Scene {
	t.Helper()
	buf, err := json.Marshal(raw)
	require.NoError(t, err)
	var snap export.Scene
	require.NoError(t, json.Unmarshal(buf, &snap))
	return snap
}
