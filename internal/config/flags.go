package config

import (
	"flag"
	"os"

	"github.com/mtx01cc/mmrtools/internal/flagx"
)

// valueFlags are the flags that consume the following argument; the
// positional-token scan needs to know them to skip their values.
var valueFlags = []string{"-server", "-uploads-file", "-packs-dir", "-thumbs-dir", "-removed-out"}

var boolFlags = []string{"-from-thumbs", "-dry-run", "-v", "-verbose"}

// parseFlags populates selected Config fields from command-line flags and
// picks up the positional access-token argument, if any.
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], valueFlags, boolFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Server, "server", cfg.Server, "media repository server name")
	fs.StringVar(&cfg.UploadsFile, "uploads-file", cfg.UploadsFile, "upload log path")
	fs.StringVar(&cfg.PacksDir, "packs-dir", cfg.PacksDir, "sticker pack directory")
	fs.StringVar(&cfg.ThumbsDir, "thumbs-dir", cfg.ThumbsDir, "thumbnails directory")
	fs.StringVar(&cfg.RemovedOut, "removed-out", cfg.RemovedOut, "output path for removed entries (NDJSON)")
	fs.BoolVar(&cfg.FromThumbs, "from-thumbs", cfg.FromThumbs, "use thumbnail file names as the reference source")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "preview only, perform no mutation or network call")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "per-item diagnostic output (short)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "per-item diagnostic output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if pos := flagx.Positionals(os.Args[1:], valueFlags); len(pos) > 0 {
		cfg.Token = pos[0]
	}
}
