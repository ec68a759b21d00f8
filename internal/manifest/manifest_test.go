package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	m := Default()
	require.NoError(t, m.Validate())
	require.Len(t, m.Features, 2)
	assert.Equal(t, "print42", m.Features[0].Name)
	assert.Equal(t, "lucky", m.Features[1].Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.yaml")

	m := Default()
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestLoadRejectsUnknownFeature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.yaml")
	doc := "features:\n  - name: teleport\n    description: not a thing\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown feature "teleport"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestValidateRejectsDuplicates(t *testing.T) {
	m := Manifest{Features: []Entry{
		{Name: "lucky"},
		{Name: "lucky"},
	}}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate feature "lucky"`)
}

func TestValidateRejectsGroupWithUndeclaredFeature(t *testing.T) {
	m := Manifest{
		Features: []Entry{{Name: "print42"}},
		Groups:   []Group{{Name: "allfeatures", Features: []string{"print42", "lucky"}}},
	}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `group "allfeatures"`)
}
