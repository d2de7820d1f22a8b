package trepw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LocationOf(t *testing.T) {
	assert.Equal(t, "jok", LocationOf("/data/JOK_TRY2020.csv"))
	assert.Equal(t, "vantaa", LocationOf("Vantaa_2050_RCP45.csv"))
	assert.Equal(t, "plain.csv", LocationOf("plain.csv"))
}

func Test_Sites_Lookup(t *testing.T) {
	sites := DefaultSites()

	sod := sites.Lookup("input/SOD_TRY2020.csv")
	assert.Equal(t, "sod", sod.Code)
	assert.Equal(t, "sod", sod.Name)
	assert.Equal(t, 67.37, sod.Latitude)

	// code contained in a longer token
	van := sites.Lookup("vantaa_2050.csv")
	assert.Equal(t, "van", van.Code)
	assert.Equal(t, "vantaa", van.Name)

	unknown := sites.Lookup("oulu_2020.csv")
	assert.Equal(t, "", unknown.Code)
	assert.Equal(t, "oulu", unknown.Name)
	assert.Equal(t, sites.Fallback.Latitude, unknown.Latitude)
	assert.Equal(t, sites.Fallback.Longitude, unknown.Longitude)
}

func Test_LoadSites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	err := os.WriteFile(path, []byte(`sites:
  - code: OUL
    latitude: 64.93
    longitude: 25.37
    elevation: 12
    wmo: 2875
    timezone: 2
`), 0o644)
	require.NoError(t, err)

	sites, err := LoadSites(path)
	require.NoError(t, err)
	require.Len(t, sites.Sites, 1)

	oul := sites.Lookup("oulu_2020.csv")
	assert.Equal(t, "oul", oul.Code)
	assert.Equal(t, 64.93, oul.Latitude)
	assert.Equal(t, 2875, oul.WMO)
	assert.Equal(t, 2.0, oul.TimeZone)

	// fallback from the built-in table
	assert.Equal(t, DefaultSites().Fallback, sites.Fallback)
}

func Test_LoadSites_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSites(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("sites: []\n"), 0o644))
	_, err = LoadSites(empty)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("sites: [\n"), 0o644))
	_, err = LoadSites(broken)
	assert.Error(t, err)
}

func Test_Sites_Find_FallbackWithCode(t *testing.T) {
	sites := &Sites{
		Sites:    []Site{{Code: "oul", Latitude: 64.93}},
		Fallback: Site{Code: "jok", Latitude: 60.81},
	}

	site, matched := sites.Find("oulu_2020.csv")
	assert.True(t, matched)
	assert.Equal(t, "oul", site.Code)

	// a fallback with a code is still a fallback
	site, matched = sites.Find("kuopio_2020.csv")
	assert.False(t, matched)
	assert.Equal(t, "jok", site.Code)
	assert.Equal(t, "kuopio", site.Name)
	assert.Equal(t, 60.81, site.Latitude)
}
