package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"[detection]", "[display]", "[logging]", "[logging.file]", "[server]", "[storage]"},
		sectionHeaders(string(content)))

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DisplayModeAuto, decoded.Display.Mode)
	assert.Equal(t, StorageBackendFile, decoded.Storage.Backend)
	assert.Equal(t, defaultPollIntervalSec, decoded.Detection.PollIntervalSec)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	err := WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
}

func TestSortTOMLSections(t *testing.T) {
	input := `[storage]
backend = 'file'

[display]
mode = 'auto'

[storage.extra]
key = 'value'

[detection]
poll_interval_sec = 30
`

	result := sortTOMLSections(input)

	assert.Equal(t,
		[]string{"[detection]", "[display]", "[storage]", "[storage.extra]"},
		sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}
