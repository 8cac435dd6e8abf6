package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns/internal/log"
	"patterns/internal/sorting"
	"patterns/pkg/product"
)

// Helper to create a temporary markdown catalog with given content
func createTempCatalog(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "catalog.md")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

// Helper to read file content as string
func readFileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSortCatalogFile_ByPrice(t *testing.T) {
	path := createTempCatalog(t, `# Shop

- Laptop $999.99 ★120
- Mouse $19.90 *480

Accessories below.

- Keyboard $49 ★310
`)

	sorted, err := SortCatalogFile(path, sorting.ByPrice{})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Mouse", sorted[0].Name)

	assert.Equal(t, `# Shop

- Mouse $19.90 ★480
- Keyboard $49.00 ★310

Accessories below.

- Laptop $999.99 ★120
`, readFileContent(t, path))
}

func TestSortCatalogFile_Errors(t *testing.T) {
	_, err := SortCatalogFile(filepath.Join(t.TempDir(), "missing.md"), sorting.ByPrice{})
	assert.Error(t, err)

	multi := createTempCatalog(t, "- Mouse\n  $20 ★2\n- Laptop $5\n")
	_, err = SortCatalogFile(multi, sorting.ByPrice{})
	assert.ErrorContains(t, err, "spans 2 lines")
	assert.Equal(t, "- Mouse\n  $20 ★2\n- Laptop $5\n", readFileContent(t, multi), "file must be untouched on error")

	_, err = SortCatalogFile(createTempCatalog(t, "- Laptop $5\n"), nil)
	assert.ErrorIs(t, err, sorting.ErrNoStrategy)
}

func TestSortCatalogFile_LogsProductIDs(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(nil) })

	path := createTempCatalog(t, "- Laptop $999.99 ★120\n- Mouse $19.90 ★480\n")
	_, err := SortCatalogFile(path, sorting.ByPrice{})
	require.NoError(t, err)

	mouse := product.Product{Name: "Mouse", Price: 19.90, Popularity: 480}
	assert.Contains(t, logs.String(), "slot=0 id="+mouse.Hash()+" name=Mouse")
}
