// Package analyzer derives read-only summaries from parsed models for
// display. It never fails and never mutates its input.
package analyzer

import "github.com/astranger1k/DLSTool/internal/model"

// StageSummary describes one v1 lighting stage slot. SirenCount, Bpm and
// Texture are only meaningful when the stage is enabled and present.
type StageSummary struct {
	Name       string `json:"name"`
	Marker     string `json:"marker"`
	Enabled    bool   `json:"enabled"`
	SirenCount int    `json:"sirenCount,omitempty"`
	Bpm        int    `json:"bpm,omitempty"`
	Texture    string `json:"texture,omitempty"`
}

// AudioSummary lists v1's fixed tone slots.
type AudioSummary struct {
	Tone1             string `json:"tone1"`
	Tone2             string `json:"tone2"`
	Tone3             string `json:"tone3"`
	Tone4             string `json:"tone4"`
	Horn              string `json:"horn"`
	AirHornInterrupts bool   `json:"airHornInterrupts"`
}

// V1Features flags the v1 special modes in use.
type V1Features struct {
	CustomUI      bool `json:"customUI"`
	WailSetup     bool `json:"wailSetup"`
	SteadyBurn    bool `json:"steadyBurn"`
	PresetOnLeave bool `json:"presetOnLeave"`
}

// TrafficAdvisorySummary condenses the v1 traffic advisory block.
type TrafficAdvisorySummary struct {
	Enabled  bool   `json:"enabled"`
	Type     string `json:"type"`
	Patterns int    `json:"patterns"`
}

// V1Summary is the display summary of a v1 model.
type V1Summary struct {
	Version         string                 `json:"version"`
	Vehicles        string                 `json:"vehicles,omitempty"`
	Stages          []StageSummary         `json:"stages"`
	Audio           AudioSummary           `json:"audio"`
	Features        V1Features             `json:"features"`
	TrafficAdvisory TrafficAdvisorySummary `json:"trafficAdvisory"`
	TotalSirens     int                    `json:"totalSirens"`
}

// AnalyzeV1 summarizes a v1 model. Disabled or absent stages contribute
// nothing to the siren total.
func AnalyzeV1(data *model.DLSv1Data) V1Summary {
	summary := V1Summary{
		Version:  model.VersionV1.String(),
		Vehicles: data.Vehicles,
		Audio: AudioSummary{
			Tone1:             data.Tone1,
			Tone2:             data.Tone2,
			Tone3:             data.Tone3,
			Tone4:             data.Tone4,
			Horn:              data.Horn,
			AirHornInterrupts: data.AirHornInterruptsSiren,
		},
		Features: V1Features{
			CustomUI:      data.SirenUI != "",
			WailSetup:     data.WailSetup.Enabled,
			SteadyBurn:    data.SteadyBurn.Enabled,
			PresetOnLeave: data.PresetSirenOnLeave != "none",
		},
		TrafficAdvisory: TrafficAdvisorySummary{
			Enabled:  data.TrafficAdvisory.Type != "off",
			Type:     data.TrafficAdvisory.Type,
			Patterns: len(data.TrafficAdvisory.Patterns),
		},
	}

	stages := []struct {
		name     string
		marker   string
		settings *model.SirenSettings
		enabled  bool
	}{
		{"Stage 1", "Stage1", data.Stage1, data.Stage1Enabled},
		{"Stage 2", "Stage2", data.Stage2, data.Stage2Enabled},
		{"Stage 3", "Stage3", data.Stage3, data.Stage3Enabled},
		{"Custom Stage 1", "CustomStage1", data.CustomStage1, data.CustomStage1Enabled},
		{"Custom Stage 2", "CustomStage2", data.CustomStage2, data.CustomStage2Enabled},
	}
	for _, stage := range stages {
		entry := StageSummary{Name: stage.name, Marker: stage.marker}
		if stage.enabled && stage.settings != nil {
			entry.Enabled = true
			entry.SirenCount = len(stage.settings.Sirens)
			entry.Bpm = stage.settings.SequencerBpm
			entry.Texture = stage.settings.TextureName
			summary.TotalSirens += entry.SirenCount
		}
		summary.Stages = append(summary.Stages, entry)
	}

	return summary
}

// LightModeSummary describes one v2 light mode.
type LightModeSummary struct {
	Name             string `json:"name"`
	YieldEnabled     bool   `json:"yieldEnabled"`
	ExtrasCount      int    `json:"extrasCount"`
	HasSirenSettings bool   `json:"hasSirenSettings"`
	SirenCount       int    `json:"sirenCount,omitempty"`
	Bpm              int    `json:"bpm,omitempty"`
	HasConditions    bool   `json:"hasConditions"`
}

// AudioModeSummary describes one v2 audio mode.
type AudioModeSummary struct {
	Name         string `json:"name"`
	Soundset     string `json:"soundset"`
	Sound        string `json:"sound"`
	YieldEnabled bool   `json:"yieldEnabled"`
}

// ControlGroupSummary condenses one v2 audio control group.
type ControlGroupSummary struct {
	Name      string `json:"name"`
	Exclusive bool   `json:"exclusive"`
	Entries   int    `json:"entries"`
	Modes     int    `json:"modes"`
	HasCycle  bool   `json:"hasCycle"`
	HasToggle bool   `json:"hasToggle"`
}

// V2Features flags the v2-wide settings in use.
type V2Features struct {
	PatternSync   bool `json:"patternSync"`
	SpeedDrift    bool `json:"speedDrift"`
	DefaultMode   bool `json:"defaultMode"`
	ControlGroups int  `json:"controlGroups"`
}

// V2Summary is the display summary of a v2 model.
type V2Summary struct {
	Version       string                `json:"version"`
	Vehicles      string                `json:"vehicles"`
	LightModes    []LightModeSummary    `json:"lightModes"`
	AudioModes    []AudioModeSummary    `json:"audioModes"`
	ControlGroups []ControlGroupSummary `json:"controlGroups,omitempty"`
	Features      V2Features            `json:"features"`
	TotalSirens   int                   `json:"totalSirens"`
}

// AnalyzeV2 summarizes a v2 model.
func AnalyzeV2(data *model.DLSv2Data) V2Summary {
	summary := V2Summary{
		Version:  model.VersionV2.String(),
		Vehicles: data.Vehicles,
		Features: V2Features{
			PatternSync:   data.PatternSync != "",
			SpeedDrift:    data.SpeedDrift != 0,
			DefaultMode:   data.DefaultMode != "",
			ControlGroups: len(data.AudioControlGroups),
		},
	}

	for _, mode := range data.LightModes {
		entry := LightModeSummary{
			Name:             mode.Name,
			YieldEnabled:     mode.YieldEnabled,
			ExtrasCount:      len(mode.Extras),
			HasSirenSettings: mode.SirenSettings != nil,
			HasConditions:    mode.Conditions != "",
		}
		if mode.SirenSettings != nil {
			entry.SirenCount = len(mode.SirenSettings.Sirens)
			entry.Bpm = mode.SirenSettings.SequencerBpm
			summary.TotalSirens += entry.SirenCount
		}
		summary.LightModes = append(summary.LightModes, entry)
	}

	for _, mode := range data.AudioModes {
		summary.AudioModes = append(summary.AudioModes, AudioModeSummary{
			Name:         mode.Name,
			Soundset:     mode.Soundset,
			Sound:        mode.SoundName,
			YieldEnabled: mode.YieldEnabled,
		})
	}

	for _, group := range data.AudioControlGroups {
		entry := ControlGroupSummary{
			Name:      group.Name,
			Exclusive: group.Exclusive,
			Entries:   len(group.Modes),
			HasCycle:  group.Cycle != "",
			HasToggle: group.Toggle != "",
		}
		if entry.Name == "" {
			entry.Name = "(unnamed)"
		}
		for _, mode := range group.Modes {
			entry.Modes += len(mode.Names)
		}
		summary.ControlGroups = append(summary.ControlGroups, entry)
	}

	return summary
}
