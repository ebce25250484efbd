package version

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// PluginVersion is the inferred generation of an installed plugin.
type PluginVersion string

const (
	PluginV1      PluginVersion = "v1"
	PluginV2      PluginVersion = "v2"
	PluginUnknown PluginVersion = ""
)

// String returns the display name of the plugin version.
func (p PluginVersion) String() string {
	if p == PluginUnknown {
		return "undetermined"
	}
	return string(p)
}

// ReadSettingsFile loads a plugin settings file (sections of key=value
// pairs) into a plain section map. Comment markers "#", ";" and "//" are
// all honored; the INI backend only knows the first two, so lines starting
// with "//" are stripped before it sees the bytes.
func ReadSettingsFile(path string) (map[string]map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType("ini")
	if err := v.ReadConfig(bytes.NewReader(stripSlashComments(raw))); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	sections := make(map[string]map[string]string)
	for name, value := range v.AllSettings() {
		kv, ok := value.(map[string]any)
		if !ok {
			continue
		}
		section := make(map[string]string, len(kv))
		for key, item := range kv {
			section[key] = cast.ToString(item)
		}
		sections[name] = section
	}
	return sections, nil
}

func stripSlashComments(raw []byte) []byte {
	lines := strings.Split(string(raw), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		kept = append(kept, line)
	}
	return []byte(strings.Join(kept, "\n"))
}

// InferPluginVersion scores a settings section map for v1 and v2 signals
// and resolves them. It is a pure function; section and key names are
// matched case-insensitively.
func InferPluginVersion(sections map[string]map[string]string) PluginVersion {
	folded := make(map[string]map[string]struct{}, len(sections))
	for name, kv := range sections {
		keys := make(map[string]struct{}, len(kv))
		for k := range kv {
			keys[strings.ToLower(k)] = struct{}{}
		}
		folded[strings.ToLower(name)] = keys
	}

	v1Signals, v2Signals := 0, 0

	if keyboard, ok := folded["keyboard"]; ok {
		v1Signals += 2
		if intersects(keyboard, v1KeyboardKeys) {
			v1Signals += 2
		}
	}

	if _, ok := folded["ui"]; ok {
		v1Signals++
	}

	if settings, ok := folded["settings"]; ok {
		if intersects(settings, v1SettingsKeys) {
			v1Signals += 2
		}
		if intersects(settings, v2SettingsKeys) {
			v2Signals += 2
		}
	}

	controlHits := 0
	for name := range folded {
		if _, ok := v2ControlSections[name]; ok {
			controlHits++
		}
	}
	if controlHits >= 2 {
		v2Signals += 3
	}

	// Resolution order is significant; see the tables for what feeds it.
	switch {
	case v2Signals > v1Signals && v2Signals >= 3:
		return PluginV2
	case v1Signals > v2Signals && v1Signals >= 2:
		return PluginV1
	case v2Signals >= 2:
		return PluginV2
	case v1Signals >= 2:
		return PluginV1
	default:
		return PluginUnknown
	}
}

// InferPluginVersionFile reads and scores a settings file. Any structural
// failure degrades to undetermined, never an error.
func InferPluginVersionFile(path string) PluginVersion {
	sections, err := ReadSettingsFile(path)
	if err != nil {
		return PluginUnknown
	}
	return InferPluginVersion(sections)
}

func intersects(keys map[string]struct{}, set map[string]struct{}) bool {
	for k := range keys {
		if _, ok := set[k]; ok {
			return true
		}
	}
	return false
}
