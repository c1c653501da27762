package contextpack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"name":"app"}`)
	writeFile(t, root, "src/app.ts", "export {};")
	writeFile(t, root, "node_modules/dep/index.js", "ignored")
	writeFile(t, root, ".git/config", "ignored")

	files, capped, err := CollectFiles(root, CollectOptions{})
	require.NoError(t, err)
	assert.False(t, capped)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.RelativePath
	}
	assert.ElementsMatch(t, []string{"package.json", "src/app.ts"}, paths)

	for _, f := range files {
		if f.RelativePath == "package.json" {
			assert.Equal(t, `{"name":"app"}`, f.Content)
		}
	}
}

func TestCollectFiles_MaxFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.ts", "a")
	writeFile(t, root, "b.ts", "b")
	writeFile(t, root, "c.ts", "c")

	files, capped, err := CollectFiles(root, CollectOptions{MaxFiles: 2})
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.True(t, capped)
}

func TestCollectFiles_CustomIgnore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep/a.ts", "a")
	writeFile(t, root, "skipme/b.ts", "b")

	files, _, err := CollectFiles(root, CollectOptions{IgnoreDirs: []string{"skipme"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep/a.ts", files[0].RelativePath)
}
