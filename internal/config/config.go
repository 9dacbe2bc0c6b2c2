package config

import (
	"os"
	"path/filepath"

	"github.com/mtx01cc/mmrtools/internal/common"
)

// Config holds runtime settings shared by the mmrtools commands. Each
// command reads the subset it needs.
type Config struct {
	Token       string `env:"MMR_TOKEN"`
	Server      string `env:"MMR_SERVER"`
	UploadsFile string `env:"MMR_UPLOADS_FILE"`
	PacksDir    string `env:"MMR_PACKS_DIR"`
	ThumbsDir   string `env:"MMR_THUMBS_DIR"`
	RemovedOut  string `env:"MMR_REMOVED_OUT"`
	FromThumbs  bool
	DryRun      bool
	Verbose     bool
}

// LoadDefaults populates c with sensible defaults. Paths follow the
// deployment layout next to the binary's own directory.
func (c *Config) LoadDefaults() {
	base := baseDir()
	c.Server = common.DefaultServerName
	c.UploadsFile = filepath.Join(base, "backup", "uploads")
	c.PacksDir = filepath.Join(base, "stickerpicker", "packs")
	c.ThumbsDir = filepath.Join(base, "stickerpicker", "packs", "thumbnails")
	c.RemovedOut = filepath.Join(base, "backup", "uploads_purpose_none.ndjson")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func baseDir() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	wd, _ := os.Getwd()
	return wd
}
