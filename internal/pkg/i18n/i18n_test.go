package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndTranslate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "id"), 0o755))

	yaml := "STATUSES:\n  PENDING: \"Menunggu\"\n  REJECTED: \"Ditolak\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "id", "statuses.yaml"), []byte(yaml), 0o644))

	require.NoError(t, LoadTranslations(dir))

	assert.Equal(t, "Menunggu", Translate("id", "PENDING"))
	assert.Equal(t, "Ditolak", Translate("id", "REJECTED"))

	// Unknown key and unknown locale fall back to the key.
	assert.Equal(t, "COLLECTED", Translate("id", "COLLECTED"))
	assert.Equal(t, "PENDING", Translate("fr", "PENDING"))
}

func TestLoadTranslations_SkipsLocalesWithoutFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))

	assert.NoError(t, LoadTranslations(dir))
	assert.Equal(t, "PENDING", Translate("empty", "PENDING"))
}
