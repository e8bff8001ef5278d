package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	path := writeAuthorizedKeys(t,
		"# modders",
		"",
		"not a key",
		string(gossh.MarshalAuthorizedKey(allowed)),
	)

	tests := []struct {
		name string
		key  gossh.PublicKey
		path string
		want bool
	}{
		{"listed key", allowed, path, true},
		{"unlisted key", other, path, false},
		{"missing file", allowed, filepath.Join(t.TempDir(), "missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isKeyAuthorized(tt.key, tt.path))
		})
	}
}

func TestGetKeyFingerprint(t *testing.T) {
	key := newPublicKey(t)

	fingerprint := getKeyFingerprint(key)

	assert.Regexp(t, regexp.MustCompile(`^MD5(:[0-9a-f]{2}){16}$`), fingerprint)
	assert.Equal(t, fingerprint, getKeyFingerprint(key))
	assert.NotEqual(t, fingerprint, getKeyFingerprint(newPublicKey(t)))
}
