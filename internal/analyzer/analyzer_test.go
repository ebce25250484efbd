package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astranger1k/DLSTool/internal/model"
)

func sampleV1() *model.DLSv1Data {
	data := model.NewDLSv1Data()
	data.Vehicles = "police,police2"
	data.SirenUI = "squadui"
	data.WailSetup.Enabled = true
	data.TrafficAdvisory.Type = "three"
	data.TrafficAdvisory.Patterns = map[string]string{"L": "1,2", "R": "3,4"}

	stage := model.NewSirenSettings()
	stage.SequencerBpm = 600
	stage.TextureName = "custom_light"
	stage.Sirens = []model.SirenItem{model.NewSirenItem(), model.NewSirenItem(), model.NewSirenItem()}
	data.Stage1 = stage

	disabled := model.NewSirenSettings()
	disabled.Sirens = []model.SirenItem{model.NewSirenItem()}
	data.Stage2 = disabled
	data.Stage2Enabled = false

	// Enabled but never populated.
	data.Stage3 = nil
	return data
}

func TestAnalyzeV1(t *testing.T) {
	data := sampleV1()
	summary := AnalyzeV1(data)

	assert.Equal(t, "DLS v1", summary.Version)
	assert.Equal(t, "police,police2", summary.Vehicles)
	assert.Equal(t, 3, summary.TotalSirens, "disabled and absent stages do not count")

	require.Len(t, summary.Stages, 5)
	assert.Equal(t, StageSummary{
		Name:       "Stage 1",
		Marker:     "Stage1",
		Enabled:    true,
		SirenCount: 3,
		Bpm:        600,
		Texture:    "custom_light",
	}, summary.Stages[0])
	assert.False(t, summary.Stages[1].Enabled, "present but disabled")
	assert.Zero(t, summary.Stages[1].SirenCount)
	assert.False(t, summary.Stages[2].Enabled, "enabled flag alone is not enough")

	assert.Equal(t, "VEHICLES_HORNS_SIREN_1", summary.Audio.Tone1)
	assert.True(t, summary.Features.CustomUI)
	assert.True(t, summary.Features.WailSetup)
	assert.False(t, summary.Features.SteadyBurn)
	assert.False(t, summary.Features.PresetOnLeave, `"none" means off`)

	assert.True(t, summary.TrafficAdvisory.Enabled)
	assert.Equal(t, "three", summary.TrafficAdvisory.Type)
	assert.Equal(t, 2, summary.TrafficAdvisory.Patterns)
}

func TestAnalyzeV1_Defaults(t *testing.T) {
	summary := AnalyzeV1(model.NewDLSv1Data())

	assert.Zero(t, summary.TotalSirens)
	assert.False(t, summary.TrafficAdvisory.Enabled)
	require.Len(t, summary.Stages, 5)
	for _, stage := range summary.Stages {
		assert.False(t, stage.Enabled, stage.Name)
	}
}

func sampleV2() *model.DLSv2Data {
	data := model.NewDLSv2Data()
	data.Vehicles = "sheriff"
	data.PatternSync = "driftrandom"
	data.DefaultMode = "Code2"

	code2 := model.NewSirenSettings()
	code2.SequencerBpm = 300
	code2.Sirens = []model.SirenItem{model.NewSirenItem(), model.NewSirenItem()}
	data.LightModes = []model.LightMode{
		{Name: "Code2", SirenSettings: code2, Conditions: `<EngineOn state="true"></EngineOn>`},
		{Name: "Blackout", YieldEnabled: true, Extras: []model.Extra{{ID: 3, Enabled: false}}},
	}
	data.AudioModes = []model.AudioMode{
		{Name: "Siren1", Soundset: "policevehsirens", SoundName: "slow"},
	}
	data.AudioControlGroups = []model.AudioControlGroup{
		{
			Exclusive: true,
			Cycle:     "LMENU",
			Modes: []model.AudioControlModeEntry{
				{Names: []string{"Siren1", "Siren2"}},
				{Names: []string{"Horn"}},
			},
		},
	}
	return data
}

func TestAnalyzeV2(t *testing.T) {
	summary := AnalyzeV2(sampleV2())

	assert.Equal(t, "DLS v2", summary.Version)
	assert.Equal(t, "sheriff", summary.Vehicles)
	assert.Equal(t, 2, summary.TotalSirens)

	require.Len(t, summary.LightModes, 2)
	assert.Equal(t, LightModeSummary{
		Name:             "Code2",
		HasSirenSettings: true,
		SirenCount:       2,
		Bpm:              300,
		HasConditions:    true,
	}, summary.LightModes[0])
	assert.Equal(t, LightModeSummary{
		Name:         "Blackout",
		YieldEnabled: true,
		ExtrasCount:  1,
	}, summary.LightModes[1])

	require.Len(t, summary.AudioModes, 1)
	assert.Equal(t, "slow", summary.AudioModes[0].Sound)

	require.Len(t, summary.ControlGroups, 1)
	group := summary.ControlGroups[0]
	assert.Equal(t, "(unnamed)", group.Name)
	assert.True(t, group.Exclusive)
	assert.Equal(t, 2, group.Entries)
	assert.Equal(t, 3, group.Modes, "mode count sums the names across entries")
	assert.True(t, group.HasCycle)
	assert.False(t, group.HasToggle)

	assert.True(t, summary.Features.PatternSync)
	assert.False(t, summary.Features.SpeedDrift)
	assert.True(t, summary.Features.DefaultMode)
	assert.Equal(t, 1, summary.Features.ControlGroups)
}

func TestAnalyzeDoesNotMutate(t *testing.T) {
	v1 := sampleV1()
	first := AnalyzeV1(v1)
	second := AnalyzeV1(v1)
	assert.Equal(t, first, second)

	v2 := sampleV2()
	assert.Equal(t, AnalyzeV2(v2), AnalyzeV2(v2))
}
