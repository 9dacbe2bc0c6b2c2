package config

import (
	"os"

	"github.com/mtx01cc/mmrtools/internal/common"
	"github.com/mtx01cc/mmrtools/internal/termx"
)

// ResolveToken returns the admin access token, prompting on the terminal
// as a last resort when neither the positional argument nor MMR_TOKEN
// supplied one. Dry runs may proceed without a token since nothing is
// sent.
func (c *Config) ResolveToken() (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}
	if c.DryRun {
		return "", nil
	}
	tok, err := termx.ReadToken(os.Stderr)
	if err != nil || tok == "" {
		return "", common.ErrNoToken
	}
	return tok, nil
}
