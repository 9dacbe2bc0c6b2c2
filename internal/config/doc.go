// Package config loads runtime configuration for the mmrtools commands.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults). Default paths are
//     resolved relative to the executable's directory, matching the layout
//     the tools are deployed in (backup/ and stickerpicker/ next to bin/).
//  2. Environment variables (see parseEnv), with an optional .env file
//     loaded first.
//  3. Command-line flags (see parseFlags), which override earlier values.
//  4. A positional access-token argument, which overrides MMR_TOKEN.
//
// Supported flags
//
//	-server string        media repository server name
//	-uploads-file string  upload log path
//	-packs-dir string     sticker pack directory
//	-thumbs-dir string    thumbnails directory
//	-removed-out string   side-channel NDJSON path for removed entries
//	-from-thumbs          use thumbnail file names as the reference source
//	-dry-run              preview only, no deletion, rewrite, or API call
//	-v, -verbose          per-item diagnostic output
//
// The core packages never compute paths themselves; whatever ends up in
// Config is what they operate on.
package config
