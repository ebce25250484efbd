package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "DLS.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInferPluginVersion(t *testing.T) {
	tests := []struct {
		name     string
		sections map[string]map[string]string
		want     PluginVersion
	}{
		{
			"v1 keyboard with known keys",
			map[string]map[string]string{
				"Keyboard": {"tone1": "T", "tone2": "Y", "horn": "H"},
			},
			PluginV1,
		},
		{
			"keyboard alone scores v1",
			map[string]map[string]string{
				"Keyboard": {"unrelated": "X"},
			},
			PluginV1,
		},
		{
			"v2 control-group sections",
			map[string]map[string]string{
				"cycle_stages": {"key": "J"},
				"audio_siren1": {"key": "1"},
				"toggle_siren": {"key": "2"},
			},
			PluginV2,
		},
		{
			"one control section is not enough",
			map[string]map[string]string{
				"cycle_stages": {"key": "J"},
			},
			PluginUnknown,
		},
		{
			"v2 settings keys",
			map[string]map[string]string{
				"Settings": {"AudioName": "x", "DevMode": "false"},
			},
			PluginV2,
		},
		{
			"v1 settings keys",
			map[string]map[string]string{
				"Settings": {"IndEnabled": "true"},
			},
			PluginV1,
		},
		{
			"mixed signals favor the stronger side",
			map[string]map[string]string{
				"UI":           {"scale": "1"},
				"cycle_stages": {"key": "J"},
				"audio_siren1": {"key": "1"},
			},
			PluginV2,
		},
		{
			"section names match case-insensitively",
			map[string]map[string]string{
				"CYCLE_STAGES": {"key": "J"},
				"AUDIO_SIREN1": {"key": "1"},
			},
			PluginV2,
		},
		{
			"ui alone is too weak",
			map[string]map[string]string{
				"UI": {"scale": "1"},
			},
			PluginUnknown,
		},
		{
			"empty input is undetermined",
			map[string]map[string]string{},
			PluginUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferPluginVersion(tt.sections))
		})
	}
}

func TestInferPluginVersionFile_V1(t *testing.T) {
	path := writeSettings(t, `# generated by DLS
; legacy comment style
// slash comments are honored too
[Keyboard]
tone1=T
tone2=Y
horn=H

[UI]
scale=1.0
`)
	assert.Equal(t, PluginV1, InferPluginVersionFile(path))
}

func TestInferPluginVersionFile_V2(t *testing.T) {
	path := writeSettings(t, `[cycle_stages]
key=J

[audio_siren1]
key=1

[toggle_siren]
key=2
`)
	assert.Equal(t, PluginV2, InferPluginVersionFile(path))
}

func TestInferPluginVersionFile_DegradesToUndetermined(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		assert.Equal(t, PluginUnknown, InferPluginVersionFile(filepath.Join(t.TempDir(), "nope.ini")))
	})

	t.Run("unparsable file", func(t *testing.T) {
		assert.Equal(t, PluginUnknown, InferPluginVersionFile(writeSettings(t, "[[[broken\x00")))
	})

	t.Run("empty file", func(t *testing.T) {
		assert.Equal(t, PluginUnknown, InferPluginVersionFile(writeSettings(t, "")))
	})
}

func TestReadSettingsFile(t *testing.T) {
	path := writeSettings(t, `// DLS plugin settings
[Settings]
AudioName=siren_pack
// DevMode=true
BrakeLights=false
`)
	sections, err := ReadSettingsFile(path)
	require.NoError(t, err)

	settings, ok := sections["settings"]
	require.True(t, ok, "section names are folded to lowercase")
	assert.Equal(t, "siren_pack", settings["audioname"])
	assert.Equal(t, "false", settings["brakelights"])
	assert.NotContains(t, settings, "devmode", "slash-commented lines are stripped")
}
