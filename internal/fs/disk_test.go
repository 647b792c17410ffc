package fs_test

import (
	"github.com/aneshas/gosleep/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path"
	"testing"
)

func TestDiskFS_Should_Create_File_And_Parent_Dir(t *testing.T) {
	disk := fs.NewDisk()

	p := path.Join(t.TempDir(), "content", "data.tree")

	file, err := disk.Create(p, false)

	require.NoError(t, err)

	_, err = file.Write([]byte("header"))

	assert.NoError(t, err)
	assert.NoError(t, file.Close())
	assert.Equal(t, "data.tree", file.Name())
	assert.FileExists(t, p)
}

func TestDiskFS_Should_Not_Overwrite_Existing_File(t *testing.T) {
	disk := fs.NewDisk()

	p := path.Join(t.TempDir(), "data.bitfield")

	require.NoError(t, os.WriteFile(p, []byte("existing"), 0644))

	file, err := disk.Create(p, false)

	assert.ErrorIs(t, err, fs.ErrExists)
	assert.Nil(t, file)

	file, err = disk.Create(p, true)

	require.NoError(t, err)
	assert.NoError(t, file.Close())

	b, err := os.ReadFile(p)

	assert.NoError(t, err)
	assert.Empty(t, b)
}

func TestDiskFS_Should_Report_Non_Dir_Parent_As_An_Error(t *testing.T) {
	disk := fs.NewDisk()

	parent := path.Join(t.TempDir(), "notadir")

	require.NoError(t, os.WriteFile(parent, nil, 0644))

	file, err := disk.Create(path.Join(parent, "data.tree"), false)

	assert.Error(t, err)
	assert.Nil(t, file)
}

func TestDiskFS_Should_Open_Existing_File(t *testing.T) {
	disk := fs.NewDisk()

	p := path.Join(t.TempDir(), "data.signatures")

	require.NoError(t, os.WriteFile(p, []byte("signatures"), 0644))

	file, err := disk.Open(p)

	require.NoError(t, err)

	b, err := io.ReadAll(file)

	assert.NoError(t, err)
	assert.Equal(t, []byte("signatures"), b)
	assert.NoError(t, file.Close())
}

func TestDiskFS_Should_Report_Missing_File(t *testing.T) {
	disk := fs.NewDisk()

	file, err := disk.Open(path.Join(t.TempDir(), "missing.tree"))

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, file)
}

func TestDiskFS_Should_Report_Directory_As_An_Error(t *testing.T) {
	disk := fs.NewDisk()

	file, err := disk.Open(t.TempDir())

	assert.Error(t, err)
	assert.Nil(t, file)
}
