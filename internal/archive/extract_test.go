package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windlab/plant-ingest/pkg/logger"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestExtractAll(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()

	writeZip(t, filepath.Join(root, "scada.zip"), map[string]string{
		"Turbine_Data_T1.csv":        "a\n",
		"nested/Turbine_Data_T2.csv": "b\n",
	})
	require.NoError(t, os.WriteFile(filepath.Join(root, "Kelmarsh_WT_static.csv"), []byte("Title\n"), 0644))

	require.NoError(t, ExtractAll(root, dest, logger.NewTestLogger()))

	// zip entries extracted, including nested paths
	data, err := os.ReadFile(filepath.Join(dest, "Turbine_Data_T1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(data))
	_, err = os.Stat(filepath.Join(dest, "nested", "Turbine_Data_T2.csv"))
	assert.NoError(t, err)

	// loose files linked into dest
	link := filepath.Join(dest, "Kelmarsh_WT_static.csv")
	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	data, err = os.ReadFile(link)
	require.NoError(t, err)
	assert.Equal(t, "Title\n", string(data))
}

func TestExtractAllReplacesExistingLink(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()

	src := filepath.Join(root, "meter.csv")
	require.NoError(t, os.WriteFile(src, []byte("x\n"), 0644))
	require.NoError(t, os.Symlink("/nonexistent", filepath.Join(dest, "meter.csv")))

	require.NoError(t, ExtractAll(root, dest, logger.NewTestLogger()))

	data, err := os.ReadFile(filepath.Join(dest, "meter.csv"))
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()

	writeZip(t, filepath.Join(root, "evil.zip"), map[string]string{
		"../outside.csv": "x\n",
	})

	err := ExtractAll(root, dest, logger.NewTestLogger())
	require.Error(t, err)
}
