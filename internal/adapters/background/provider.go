// Package background serves the strategic context document that deep-dive
// analysis evaluates posts against.
package background

import (
	"os"
	"strings"
	"sync"
	"time"

	"alpha-radar/pkg/log"
)

// defaultText stands in when no background document is configured, so the
// deep-dive prompts always have an internal context.
const defaultText = "Our project's primary strategic focus is analyzing user sentiment on X for various keywords (including ticker symbols, company names, $)."

// Provider reads the background document from disk and caches it, rereading
// when the file's mtime changes.
type Provider struct {
	path string

	mu      sync.RWMutex
	text    string
	modTime time.Time
}

// NewProvider creates a provider for the given file path. A missing or
// unreadable file is not an error; the default text is served instead.
func NewProvider(path string) *Provider {
	p := &Provider{path: path}
	p.refresh()
	return p
}

// Text returns the current background document.
func (p *Provider) Text() string {
	p.refresh()

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.text
}

// refresh rereads the file when its mtime moved, falling back to the
// default text when the file is gone.
func (p *Provider) refresh() {
	info, err := os.Stat(p.path)
	if err != nil {
		p.mu.Lock()
		p.text = defaultText
		p.mu.Unlock()
		return
	}

	p.mu.RLock()
	current := p.modTime
	p.mu.RUnlock()
	if !info.ModTime().After(current) {
		return
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		log.GlobalWarn("background document unreadable, using default", "path", p.path, "error", err)
		p.mu.Lock()
		p.text = defaultText
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	p.text = strings.TrimSpace(string(data))
	if p.text == "" {
		p.text = defaultText
	}
	p.modTime = info.ModTime()
	p.mu.Unlock()
}
