package source

import (
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// SelectorConfig holds the CSS selectors the scraper waits on before
// grabbing search-result HTML. The markup churns often enough that these
// live in a YAML file and hot-reload without a restart.
type SelectorConfig struct {
	ResultsRegion string
	PostContainer string
	PostText      string
	Timestamp     string
	VerifiedBadge string

	mu          sync.RWMutex
	lastModTime time.Time
	filePath    string
}

// rawConfig represents the YAML structure.
type rawConfig struct {
	Search struct {
		Results string `yaml:"results"`
		Post    string `yaml:"post"`
		Text    string `yaml:"text"`
	} `yaml:"search"`
	Post struct {
		Timestamp string `yaml:"timestamp"`
		Verified  string `yaml:"verified_badge"`
	} `yaml:"post"`
}

// LoadSelectors loads selector configuration from a YAML file and starts a
// background goroutine for hot-reloading.
func LoadSelectors(filePath string) (*SelectorConfig, error) {
	config := &SelectorConfig{filePath: filePath}
	if err := config.reload(); err != nil {
		return nil, err
	}

	go config.watch()

	return config, nil
}

// reload reads the configuration from the file.
func (c *SelectorConfig) reload() error {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		return err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.ResultsRegion = raw.Search.Results
	c.PostContainer = raw.Search.Post
	c.PostText = raw.Search.Text
	c.Timestamp = raw.Post.Timestamp
	c.VerifiedBadge = raw.Post.Verified

	return nil
}

// watch monitors the configuration file for changes and reloads it.
func (c *SelectorConfig) watch() {
	ticker := time.NewTicker(10 * time.Second)
	for range ticker.C {
		info, err := os.Stat(c.filePath)
		if err != nil {
			continue
		}
		if info.ModTime().After(c.lastModTime) {
			_ = c.reload()
			c.lastModTime = info.ModTime()
		}
	}
}

// GetPostContainer returns the post container selector (thread-safe).
func (c *SelectorConfig) GetPostContainer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.PostContainer
}

// GetPostText returns the post text selector (thread-safe).
func (c *SelectorConfig) GetPostText() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.PostText
}
