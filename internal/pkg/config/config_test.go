package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, load(v, ""))

	require.Equal(t, ":8080", v.GetString(constants.ViperHTTPAddrKey))
	require.Equal(t, 500, v.GetInt(constants.ViperExplorerRowLimitKey))
	require.Equal(t, 50, v.GetInt(constants.ViperExplorerPageSizeKey))
	require.Equal(t, 10, v.GetInt(constants.ViperTopOrgaosKey))
	require.Equal(t, 2025, v.GetInt(constants.ViperCurrentYearKey))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9000\"\nexplorer:\n  row_limit: 200\n"), 0o600))
	t.Setenv("DASHBOARD_EXPLORER_ROW_LIMIT", "300")

	v := viper.New()
	require.NoError(t, load(v, path))

	require.Equal(t, ":9000", v.GetString(constants.ViperHTTPAddrKey))
	require.Equal(t, 300, v.GetInt(constants.ViperExplorerRowLimitKey))
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	v := viper.New()
	require.NoError(t, load(v, filepath.Join(t.TempDir(), "absent.yaml")))
}
