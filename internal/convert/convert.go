// Package convert maps between the two DLS model generations. Both
// directions are total: they always produce a model and report anything
// dropped or approximated as a warning list instead of failing.
package convert

import (
	"fmt"
	"strings"

	"github.com/astranger1k/DLSTool/internal/model"
)

// v1ToneModes maps each v1 tone slot to the v2 audio mode it becomes:
// mode name and the short engine sound name within the policevehsirens set.
var v1ToneModes = []struct {
	Name  string
	Short string
}{
	{"Siren1", "slow"},
	{"Siren2", "fast"},
	{"Siren3", "warning"},
	{"Siren4", "warning"},
	{"Siren_Horn", "horn"},
}

// v1StageNames are the five fixed v1 slots in order, with the v2 mode name
// each becomes.
var v1StageNames = []string{"Stage 1", "Stage 2", "Stage 3", "Custom Stage 1", "Custom Stage 2"}

// shortSoundNames maps known short engine sound names back to full v1
// sound identifiers. Unknown names map to VEHICLES_HORNS_<UPPER>.
var shortSoundNames = map[string]string{
	"slow":    "VEHICLES_HORNS_SIREN_1",
	"fast":    "VEHICLES_HORNS_SIREN_2",
	"warning": "VEHICLES_HORNS_POLICE_WARNING",
	"horn":    "SIRENS_AIRHORN",
}

// V1ToV2 converts a v1 model to v2. The warning list enumerates every v1
// structure that has no v2 home; it may be empty but is never nil.
func V1ToV2(v1 *model.DLSv1Data) (*model.DLSv2Data, []string) {
	v2 := model.NewDLSv2Data()
	warnings := []string{}

	if v1.Vehicles != "" {
		v2.Vehicles = v1.Vehicles
	}

	tones := []string{v1.Tone1, v1.Tone2, v1.Tone3, v1.Tone4, v1.Horn}
	for i, slot := range v1ToneModes {
		if tones[i] == "" {
			continue
		}
		v2.AudioModes = append(v2.AudioModes, model.AudioMode{
			Name:      slot.Name,
			Soundset:  "policevehsirens",
			SoundName: slot.Short,
		})
	}

	stages := []*model.SirenSettings{v1.Stage1, v1.Stage2, v1.Stage3, v1.CustomStage1, v1.CustomStage2}
	enabled := []bool{v1.Stage1Enabled, v1.Stage2Enabled, v1.Stage3Enabled, v1.CustomStage1Enabled, v1.CustomStage2Enabled}
	for i, name := range v1StageNames {
		if !enabled[i] || stages[i] == nil {
			continue
		}
		v2.LightModes = append(v2.LightModes, model.LightMode{
			Name:          name,
			SirenSettings: stages[i].Clone(),
		})
	}

	if v1.SirenUI != "" {
		warnings = append(warnings, fmt.Sprintf("siren UI preset %q has no v2 equivalent and was dropped", v1.SirenUI))
	}
	if v1.WailSetup.Enabled {
		warnings = append(warnings, "wail setup has no v2 equivalent and was dropped")
	}
	if v1.SteadyBurn.Enabled {
		warnings = append(warnings, "steady burn has no v2 equivalent and was dropped")
	}
	if v1.TrafficAdvisory.Type != "off" {
		warnings = append(warnings, fmt.Sprintf("traffic advisory (type %q) has no v2 equivalent and was dropped", v1.TrafficAdvisory.Type))
	}
	warnings = append(warnings, "v2-specific features (conditions, triggers, extras, animations) are not populated from v1")

	return v2, warnings
}

// V2ToV1 converts a v2 model to v1. This direction is lossier: control
// groups, extras and condition blocks have no v1 equivalent, and only five
// light modes fit v1's fixed slots.
func V2ToV1(v2 *model.DLSv2Data) (*model.DLSv1Data, []string) {
	v1 := model.NewDLSv1Data()
	warnings := []string{}

	if v2.Vehicles != "" {
		v1.Vehicles = v2.Vehicles
	}

	for i, mode := range v2.AudioModes {
		sound := shortSoundNames[strings.ToLower(mode.SoundName)]
		if sound == "" {
			sound = "VEHICLES_HORNS_" + strings.ToUpper(mode.SoundName)
		}

		// Name matching takes precedence over list position. Only the
		// first three slots have a positional fallback: tone4 and the
		// horn are name-match only, mirroring v1's fixed 4-tones-plus-
		// horn layout.
		name := strings.ToLower(mode.Name)
		switch {
		case strings.Contains(name, "siren1"):
			v1.Tone1 = sound
		case strings.Contains(name, "siren2"):
			v1.Tone2 = sound
		case strings.Contains(name, "siren3"):
			v1.Tone3 = sound
		case strings.Contains(name, "siren4"):
			v1.Tone4 = sound
		case strings.Contains(name, "horn"):
			v1.Horn = sound
		case i == 0:
			v1.Tone1 = sound
		case i == 1:
			v1.Tone2 = sound
		case i == 2:
			v1.Tone3 = sound
		default:
			warnings = append(warnings, fmt.Sprintf("audio mode %q has no free v1 tone slot and was dropped", mode.Name))
		}
	}

	slots := []struct {
		settings **model.SirenSettings
		enabled  *bool
	}{
		{&v1.Stage1, &v1.Stage1Enabled},
		{&v1.Stage2, &v1.Stage2Enabled},
		{&v1.Stage3, &v1.Stage3Enabled},
		{&v1.CustomStage1, &v1.CustomStage1Enabled},
		{&v1.CustomStage2, &v1.CustomStage2Enabled},
	}
	for i, mode := range v2.LightModes {
		// Light modes fill the five fixed slots strictly by position;
		// mode names are ignored here.
		if i >= len(slots) {
			warnings = append(warnings, fmt.Sprintf("skipping light mode %q: v1 supports at most 5 stages", mode.Name))
			continue
		}
		*slots[i].settings = mode.SirenSettings.Clone()
		*slots[i].enabled = true

		if len(mode.Extras) > 0 {
			warnings = append(warnings, fmt.Sprintf("light mode %q: %d extra toggles have no v1 equivalent and were dropped", mode.Name, len(mode.Extras)))
		}
		if mode.Conditions != "" {
			warnings = append(warnings, fmt.Sprintf("light mode %q: condition block has no v1 equivalent and was dropped", mode.Name))
		}
	}

	if n := len(v2.AudioControlGroups); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d audio control groups have no v1 equivalent and were dropped", n))
	}

	return v1, warnings
}
