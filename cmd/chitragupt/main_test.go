package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEED_SOURCE", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestStockCommand_DefaultCatalog(t *testing.T) {
	out, err := execute(t, "stock")
	require.NoError(t, err)

	for _, want := range []string{"Ingredient", "Aata", "20.00 kg", "Milk Powder", "1.00 kg"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, bytes.Index([]byte(out), []byte("Aata")), bytes.Index([]byte(out), []byte("Maida")), "rows sorted by name")
}

func TestStockCommand_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inventory:\n  Besan: 750\n"), 0o644))

	out, err := execute(t, "stock", "--seed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Besan")
	assert.Contains(t, out, "750 g")
	assert.NotContains(t, out, "Aata")
}

func TestRecipesCommand(t *testing.T) {
	out, err := execute(t, "recipes")
	require.NoError(t, err)
	assert.Contains(t, out, "Aate Biscuit (62 pcs)")
	assert.Contains(t, out, "5.50 kg")
	assert.Contains(t, out, "200 g")
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan", "--recipe", "Aate Biscuit (62 pcs)", "--batches", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 x Aate Biscuit (62 pcs)")
	assert.NotContains(t, out, "missing")

	out, err = execute(t, "plan", "--recipe", "Aate Biscuit (62 pcs)", "--batches", "3")
	require.ErrorIs(t, err, errNotFeasible)
	assert.Contains(t, out, "missing 6.50 kg")
}

func TestPlanCommand_Errors(t *testing.T) {
	_, err := execute(t, "plan")
	assert.Error(t, err, "--recipe is required")

	_, err = execute(t, "plan", "--recipe", "Rusk")
	assert.ErrorContains(t, err, "unknown recipe")

	_, err = execute(t, "plan", "--recipe", "Aate Biscuit (62 pcs)", "--batches", "0")
	assert.ErrorContains(t, err, "positive whole number")
}
