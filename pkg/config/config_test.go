package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMethodAccountsDefaults(t *testing.T) {
	got, err := loadMethodAccounts("")
	require.NoError(t, err)
	assert.Equal(t, "Chase Bank", got["Chase Bank"])
	assert.Equal(t, "Caja Chica", got["Efectivo"])
}

func TestLoadMethodAccountsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	content := "methodAccounts:\n  Wire: Operating Account\n  Efectivo: Petty Cash\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := loadMethodAccounts(path)
	require.NoError(t, err)
	assert.Equal(t, "Operating Account", got["Wire"])
	assert.Equal(t, "Petty Cash", got["Efectivo"])
	// The file fully replaces the defaults.
	assert.NotContains(t, got, "Chase Bank")
}

func TestLoadMethodAccountsRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("methodAccounts: {}\n"), 0o600))

	_, err := loadMethodAccounts(path)
	assert.Error(t, err)
}

func TestLoadMethodAccountsMissingFile(t *testing.T) {
	_, err := loadMethodAccounts("/nonexistent/accounts.yaml")
	assert.Error(t, err)
}
