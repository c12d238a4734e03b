package ddl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	stmts := Split("-- products\r\nCREATE TABLE a (id STRING(36)) PRIMARY KEY (id);\n\n-- trailing; note\nCREATE INDEX i ON a (id);\n")
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (id STRING(36)) PRIMARY KEY (id)", stmts[0])
	assert.Equal(t, "CREATE INDEX i ON a (id)", stmts[1])
}

func TestReadDirInNameOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_b.sql"), []byte("CREATE TABLE b (id INT64) PRIMARY KEY (id);"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_a.sql"), []byte("CREATE TABLE a (id INT64) PRIMARY KEY (id);"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored;"), 0o600))

	stmts, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CREATE TABLE a (id INT64) PRIMARY KEY (id)",
		"CREATE TABLE b (id INT64) PRIMARY KEY (id)",
	}, stmts)
}

func TestRepositoryMigrationsParse(t *testing.T) {
	stmts, err := ReadDir(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	assert.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotContains(t, s, "--")
	}
}
