package convert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astranger1k/DLSTool/internal/model"
)

func patternWithSirens(n int) *model.SirenSettings {
	s := model.NewSirenSettings()
	for i := 0; i < n; i++ {
		s.Sirens = append(s.Sirens, model.NewSirenItem())
	}
	return s
}

func TestV1ToV2_Stages(t *testing.T) {
	v1 := model.NewDLSv1Data()
	v1.Stage1 = patternWithSirens(4)
	v1.Stage1Enabled = true
	v1.Stage2 = patternWithSirens(2)
	v1.Stage2Enabled = false // present but disabled
	v1.Stage3 = nil
	v1.Stage3Enabled = true // enabled but absent

	v2, warnings := V1ToV2(v1)
	require.NotNil(t, warnings)

	require.Len(t, v2.LightModes, 1, "only stages both present and enabled convert")
	mode := v2.LightModes[0]
	assert.Equal(t, "Stage 1", mode.Name)
	assert.False(t, mode.YieldEnabled)
	require.NotNil(t, mode.SirenSettings)
	assert.Len(t, mode.SirenSettings.Sirens, 4, "siren count carries over exactly")

	// The converted pattern must not alias the input.
	mode.SirenSettings.Sirens[0].Intensity = 99
	assert.Equal(t, 1.0, v1.Stage1.Sirens[0].Intensity)
}

func TestV1ToV2_AllStageNames(t *testing.T) {
	v1 := model.NewDLSv1Data()
	v1.Stage1, v1.Stage2, v1.Stage3 = patternWithSirens(1), patternWithSirens(1), patternWithSirens(1)
	v1.CustomStage1, v1.CustomStage2 = patternWithSirens(1), patternWithSirens(1)
	v1.CustomStage1Enabled, v1.CustomStage2Enabled = true, true

	v2, _ := V1ToV2(v1)
	var names []string
	for _, mode := range v2.LightModes {
		names = append(names, mode.Name)
	}
	assert.Equal(t, []string{"Stage 1", "Stage 2", "Stage 3", "Custom Stage 1", "Custom Stage 2"}, names)
}

func TestV1ToV2_AudioModes(t *testing.T) {
	v1 := model.NewDLSv1Data()
	v1.Tone3 = "" // an empty slot produces no audio mode

	v2, _ := V1ToV2(v1)

	var got []string
	for _, mode := range v2.AudioModes {
		require.Equal(t, "policevehsirens", mode.Soundset)
		got = append(got, fmt.Sprintf("%s:%s", mode.Name, mode.SoundName))
	}
	assert.Equal(t, []string{"Siren1:slow", "Siren2:fast", "Siren4:warning", "Siren_Horn:horn"}, got)
}

func TestV1ToV2_RecordsLoss(t *testing.T) {
	v1 := model.NewDLSv1Data()
	v1.WailSetup.Enabled = true
	v1.TrafficAdvisory.Type = "custom"

	_, warnings := V1ToV2(v1)

	assert.Contains(t, warnings, "wail setup has no v2 equivalent and was dropped")
	joined := fmt.Sprint(warnings)
	assert.Contains(t, joined, "traffic advisory")
	assert.Contains(t, joined, "v2-specific features")
}

func TestV1ToV2_CarriesVehicles(t *testing.T) {
	v1 := model.NewDLSv1Data()
	v1.Vehicles = "police3"
	v2, _ := V1ToV2(v1)
	assert.Equal(t, "police3", v2.Vehicles)

	v2, _ = V1ToV2(model.NewDLSv1Data())
	assert.Equal(t, "police", v2.Vehicles, "empty vehicle tag keeps the v2 default")
}

func TestV2ToV1_ToneRouting(t *testing.T) {
	tests := []struct {
		name  string
		modes []model.AudioMode
		check func(t *testing.T, v1 *model.DLSv1Data)
	}{
		{
			// Name matching beats list position.
			"name match wins over position",
			[]model.AudioMode{{Name: "Custom_Siren2_Loud", SoundName: "fast"}},
			func(t *testing.T, v1 *model.DLSv1Data) {
				assert.Equal(t, "VEHICLES_HORNS_SIREN_2", v1.Tone2)
				assert.Equal(t, "VEHICLES_HORNS_SIREN_1", v1.Tone1, "tone1 untouched")
			},
		},
		{
			"positional fallback without a name match",
			[]model.AudioMode{{Name: "Foo", SoundName: "slow"}},
			func(t *testing.T, v1 *model.DLSv1Data) {
				assert.Equal(t, "VEHICLES_HORNS_SIREN_1", v1.Tone1)
			},
		},
		{
			"horn routes by name from any position",
			[]model.AudioMode{
				{Name: "Siren1", SoundName: "slow"},
				{Name: "Siren2", SoundName: "fast"},
				{Name: "Air_Horn", SoundName: "horn"},
			},
			func(t *testing.T, v1 *model.DLSv1Data) {
				assert.Equal(t, "SIRENS_AIRHORN", v1.Horn)
			},
		},
		{
			"unknown short names get the engine prefix",
			[]model.AudioMode{{Name: "Siren3", SoundName: "priority"}},
			func(t *testing.T, v1 *model.DLSv1Data) {
				assert.Equal(t, "VEHICLES_HORNS_PRIORITY", v1.Tone3)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v2 := model.NewDLSv2Data()
			v2.AudioModes = tt.modes
			v1, _ := V2ToV1(v2)
			tt.check(t, v1)
		})
	}
}

// tone4 and the horn have no positional fallback: only the first three
// slots take unmatched modes by position. This mirrors v1's fixed
// 4-tones-plus-horn layout and is deliberately asymmetric.
func TestV2ToV1_NoPositionalFallbackPastTone3(t *testing.T) {
	v2 := model.NewDLSv2Data()
	for i := 0; i < 5; i++ {
		v2.AudioModes = append(v2.AudioModes, model.AudioMode{
			Name:      fmt.Sprintf("Mode%d", i),
			SoundName: "slow",
		})
	}

	v1, warnings := V2ToV1(v2)

	assert.Equal(t, "VEHICLES_HORNS_SIREN_1", v1.Tone1)
	assert.Equal(t, "VEHICLES_HORNS_SIREN_1", v1.Tone2)
	assert.Equal(t, "VEHICLES_HORNS_SIREN_1", v1.Tone3)
	assert.Equal(t, "VEHICLES_HORNS_AMBULANCE_WARNING", v1.Tone4, "tone4 keeps its default")
	assert.Equal(t, "SIRENS_AIRHORN", v1.Horn, "horn keeps its default")

	var dropped int
	for _, w := range warnings {
		if strings.Contains(w, "no free v1 tone slot") {
			dropped++
		}
	}
	assert.Equal(t, 2, dropped, "modes 4 and 5 have nowhere to go")
}

func TestV2ToV1_LightModesByPosition(t *testing.T) {
	v2 := model.NewDLSv2Data()
	// Names deliberately contradict positions; position must win.
	names := []string{"Custom Stage 2", "Stage 3", "Blackout", "Stage 1", "Wigwag"}
	for i, name := range names {
		v2.LightModes = append(v2.LightModes, model.LightMode{
			Name:          name,
			SirenSettings: patternWithSirens(i + 1),
		})
	}

	v1, _ := V2ToV1(v2)

	require.NotNil(t, v1.Stage1)
	assert.Len(t, v1.Stage1.Sirens, 1)
	assert.Len(t, v1.Stage2.Sirens, 2)
	assert.Len(t, v1.Stage3.Sirens, 3)
	assert.Len(t, v1.CustomStage1.Sirens, 4)
	assert.Len(t, v1.CustomStage2.Sirens, 5)
	assert.True(t, v1.Stage1Enabled)
	assert.True(t, v1.CustomStage1Enabled)
	assert.True(t, v1.CustomStage2Enabled)
}

func TestV2ToV1_SixthModeDropped(t *testing.T) {
	v2 := model.NewDLSv2Data()
	for i := 0; i < 6; i++ {
		v2.LightModes = append(v2.LightModes, model.LightMode{
			Name:          fmt.Sprintf("Mode %d", i+1),
			SirenSettings: patternWithSirens(1),
		})
	}

	v1, warnings := V2ToV1(v2)

	assert.True(t, v1.Stage1Enabled)
	assert.True(t, v1.Stage2Enabled)
	assert.True(t, v1.Stage3Enabled)
	assert.True(t, v1.CustomStage1Enabled)
	assert.True(t, v1.CustomStage2Enabled)

	var skips []string
	for _, w := range warnings {
		if strings.Contains(w, "skipping light mode") {
			skips = append(skips, w)
		}
	}
	require.Len(t, skips, 1)
	assert.Contains(t, skips[0], `"Mode 6"`)
}

func TestV2ToV1_RecordsStructureLoss(t *testing.T) {
	v2 := model.NewDLSv2Data()
	v2.LightModes = []model.LightMode{{
		Name:       "Code3",
		Extras:     []model.Extra{{ID: 1, Enabled: true}},
		Conditions: `<EngineOn state="true"></EngineOn>`,
	}}
	v2.AudioControlGroups = []model.AudioControlGroup{{Name: "Main"}, {Name: "Aux"}}

	_, warnings := V2ToV1(v2)
	joined := fmt.Sprint(warnings)
	assert.Contains(t, joined, "extra toggles")
	assert.Contains(t, joined, "condition block")
	assert.Contains(t, joined, "2 audio control groups")
}
