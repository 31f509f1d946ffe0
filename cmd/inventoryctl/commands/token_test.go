package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-service/pkg/jwt"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		tokenSubject, tokenPermissions, tokenExpiration = "", nil, 0
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "inventory-test")

	out, err := runRoot(t, "token", "--sub", "alice",
		"--perm", "manage_items_INVENTORY_SERVICE",
		"--perm", "view_items_INVENTORY_SERVICE")
	require.NoError(t, err)

	claims, err := jwt.Parse("cli-secret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "inventory-test", claims.Issuer)
	assert.Equal(t, []string{"manage_items_INVENTORY_SERVICE", "view_items_INVENTORY_SERVICE"}, claims.Permissions)
}

func TestTokenCommand_RequiresSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	_, err := runRoot(t, "token", "--perm", "view_items_INVENTORY_SERVICE")
	assert.ErrorContains(t, err, "--sub")
}

func TestRoot_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := runRoot(t, "token", "--sub", "alice")
	assert.ErrorContains(t, err, "JWT_SECRET")
}
