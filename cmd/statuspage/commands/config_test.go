package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetConfigValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    Config
		wantErr error
	}{
		{name: "api key", key: keyAPIKey, value: "OAuth abc", want: Config{APIKey: "OAuth abc"}},
		{name: "base url", key: keyBaseURL, value: "api.example.com/v1", want: Config{BaseURL: "api.example.com/v1"}},
		{name: "page id", key: keyPageID, value: "p1", want: Config{PageID: "p1"}},
		{name: "output", key: keyOutput, value: "yaml", want: Config{Output: "yaml"}},
		{name: "verbose", key: keyVerbose, value: "true", want: Config{Verbose: true}},
		{name: "bad output", key: keyOutput, value: "xml", wantErr: constants.ErrUnsupportedFormat},
		{name: "bad verbose", key: keyVerbose, value: "sometimes", wantErr: constants.ErrInvalidBool},
		{name: "bad base url", key: keyBaseURL, value: "https://", wantErr: constants.ErrInvalidBaseURL},
		{name: "unknown key", key: "token", value: "x", wantErr: constants.ErrUnknownConfigKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			err := setConfigValue(config, tt.key, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *config)
		})
	}
}

func TestUnsetConfigValue(t *testing.T) {
	config := &Config{APIKey: "k", BaseURL: "u", PageID: "p", Output: "json", Verbose: true}

	for _, key := range []string{keyAPIKey, keyBaseURL, keyPageID, keyOutput, keyVerbose} {
		require.NoError(t, unsetConfigValue(config, key))
	}

	assert.Equal(t, Config{}, *config)
	require.ErrorIs(t, unsetConfigValue(config, "nope"), constants.ErrUnknownConfigKey)
}

func TestMaskSecret(t *testing.T) {
	assert.Empty(t, maskSecret(""))
	assert.Equal(t, "***", maskSecret("abc"))
	assert.Equal(t, "***", maskSecret("abcd"))
	assert.Equal(t, "OAut***", maskSecret("OAuth secret"))
}

func TestConfigSetAndUnsetCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	useViper(t, map[string]interface{}{"config": path})

	out, err := execute(NewConfigCommand(), "", "set", "api_key", "OAuth secret")
	require.NoError(t, err)
	assert.Equal(t, "Set api_key to OAut***\n", out)

	_, err = execute(NewConfigCommand(), "", "set", "page_id", "p1")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, Config{APIKey: "OAuth secret", PageID: "p1"}, *config)

	_, err = execute(NewConfigCommand(), "", "unset", "api_key")
	require.NoError(t, err)

	config, err = readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, Config{PageID: "p1"}, *config)

	_, err = execute(NewConfigCommand(), "", "set", "colour", "blue")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestConfigShowMasksAPIKey(t *testing.T) {
	useViper(t, map[string]interface{}{
		keyAPIKey: "OAuth secret",
		keyPageID: "p1",
		keyOutput: "json",
	})

	out, err := execute(NewConfigCommand(), "", "show")
	require.NoError(t, err)
	assert.JSONEq(t, `{"api_key":"OAut***","page_id":"p1","output":"json"}`, out)
}

func TestReadConfigFile_Missing(t *testing.T) {
	config, err := readConfigFile(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, *config)
}

func TestRequirePageID(t *testing.T) {
	useViper(t, nil)

	_, err := requirePageID()
	require.ErrorIs(t, err, constants.ErrNoPageID)

	useViper(t, map[string]interface{}{keyPageID: "p1"})

	pageID, err := requirePageID()
	require.NoError(t, err)
	assert.Equal(t, "p1", pageID)
}
