package termx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadToken_TrimsAndReturnsInput(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("  tok123 \n"), nil
	}

	var out bytes.Buffer
	tok, err := ReadToken(&out)
	require.NoError(t, err)

	assert.Equal(t, "tok123", tok)
	assert.Contains(t, out.String(), "Enter access token")
}

func TestReadToken_PropagatesError(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return nil, errors.New("no tty")
	}

	var out bytes.Buffer
	_, err := ReadToken(&out)
	require.Error(t, err)
}
