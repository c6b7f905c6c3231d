package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"acme"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "index.js"), []byte("export default ..."), 0o644))

	var buf bytes.Buffer
	require.NoError(t, packDir(&buf, dir))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	files := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		content, err := io.ReadAll(tr)
		require.NoError(t, err)
		files[hdr.Name] = string(content)
	}

	assert.Equal(t, `{"name":"acme"}`, files["package.json"])
	assert.Equal(t, "export default ...", files["pages/index.js"])
	assert.Len(t, files, 2)
}
