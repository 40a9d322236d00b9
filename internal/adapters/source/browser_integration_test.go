//go:build integration

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// chromeContainer wraps a testcontainers Chrome instance exposing CDP.
type chromeContainer struct {
	testcontainers.Container
	wsURL string
}

func setupChromeContainer(ctx context.Context) (*chromeContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "chromedp/headless-shell:latest",
		ExposedPorts: []string{"9222/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("DevTools listening").WithStartupTimeout(60*time.Second),
			wait.ForHTTP("/json/version").WithPort("9222/tcp").WithStartupTimeout(60*time.Second),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "9222")
	if err != nil {
		return nil, fmt.Errorf("mapped port: %w", err)
	}

	versionURL := fmt.Sprintf("http://%s:%s/json/version", host, port.Port())
	wsURL, err := devtoolsWebSocketURL(versionURL)
	if err != nil {
		return nil, fmt.Errorf("websocket url: %w", err)
	}

	// Chrome reports its container-internal address; swap in the mapped one.
	return &chromeContainer{
		Container: container,
		wsURL:     remapHost(wsURL, host, port.Port()),
	}, nil
}

func devtoolsWebSocketURL(versionURL string) (string, error) {
	resp, err := http.Get(versionURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.WebSocketDebuggerURL, nil
}

func remapHost(wsURL, host, port string) string {
	for i := len("ws://"); i < len(wsURL); i++ {
		if wsURL[i] == '/' {
			return fmt.Sprintf("ws://%s:%s%s", host, port, wsURL[i:])
		}
	}
	return wsURL
}

// remotePool mirrors BrowserPool's tab discipline against a remote Chrome.
type remotePool struct {
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	tabSem chan struct{}
}

func newRemotePool(wsURL string) (*remotePool, error) {
	allocCtx, cancel := chromedp.NewRemoteAllocator(context.Background(), wsURL)
	ctx, _ := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	return &remotePool{
		ctx:    ctx,
		cancel: cancel,
		tabSem: make(chan struct{}, 1),
	}, nil
}

func (bp *remotePool) WithTab(fn func(ctx context.Context) error) error {
	bp.tabSem <- struct{}{}
	defer func() { <-bp.tabSem }()

	bp.mu.Lock()
	tabCtx, tabCancel := chromedp.NewContext(bp.ctx)
	bp.mu.Unlock()
	defer tabCancel()

	return fn(tabCtx)
}

func (bp *remotePool) Close() {
	if bp.cancel != nil {
		bp.cancel()
	}
}

func startPool(t *testing.T) *remotePool {
	t.Helper()
	ctx := context.Background()

	chrome, err := setupChromeContainer(ctx)
	if err != nil {
		t.Fatalf("setup chrome container: %v", err)
	}
	t.Cleanup(func() { _ = chrome.Terminate(ctx) })

	pool, err := newRemotePool(chrome.wsURL)
	if err != nil {
		t.Fatalf("create browser pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func TestIntegration_BrowserPool_ExtractsRenderedHTML(t *testing.T) {
	pool := startPool(t)

	var html string
	err := pool.WithTab(func(tabCtx context.Context) error {
		return chromedp.Run(tabCtx,
			chromedp.Navigate("https://example.com"),
			chromedp.WaitVisible("body", chromedp.ByQuery),
			chromedp.OuterHTML("html", &html),
		)
	})

	if err != nil {
		t.Fatalf("extract html: %v", err)
	}
	if len(html) < 100 {
		t.Errorf("html content too short: %d bytes", len(html))
	}
}

func TestIntegration_BrowserPool_SerializesTabs(t *testing.T) {
	pool := startPool(t)

	var concurrent, maxConcurrent int32
	var wg sync.WaitGroup

	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.WithTab(func(tabCtx context.Context) error {
				current := atomic.AddInt32(&concurrent, 1)
				for {
					max := atomic.LoadInt32(&maxConcurrent)
					if current <= max || atomic.CompareAndSwapInt32(&maxConcurrent, max, current) {
						break
					}
				}

				var title string
				err := chromedp.Run(tabCtx,
					chromedp.Navigate("https://example.com"),
					chromedp.Title(&title),
				)

				atomic.AddInt32(&concurrent, -1)
				return err
			})
		}()
	}

	wg.Wait()

	if maxConcurrent != 1 {
		t.Errorf("maxConcurrent: got %d, want 1", maxConcurrent)
	}
}

func TestIntegration_BrowserPool_ReleasesSlotOnError(t *testing.T) {
	pool := startPool(t)

	// First navigation fails on purpose.
	err := pool.WithTab(func(tabCtx context.Context) error {
		return chromedp.Run(tabCtx,
			chromedp.Navigate("http://invalid.url.that.does.not.exist.local"),
			chromedp.WaitVisible("body", chromedp.ByQuery),
		)
	})
	t.Logf("first request error (expected): %v", err)

	// Second request must not block on a leaked semaphore slot.
	done := make(chan struct{}, 1)
	go func() {
		_ = pool.WithTab(func(tabCtx context.Context) error {
			var title string
			return chromedp.Run(tabCtx,
				chromedp.Navigate("https://example.com"),
				chromedp.Title(&title),
			)
		})
		done <- struct{}{}
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Error("second request blocked after error")
	}
}
