package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/astranger1k/DLSTool/internal/model"
)

// WriteV1 serializes a DLSv1Data model to a schema v1 document file.
// It is the field-by-field mirror of ParseV1: parsing the output yields a
// structurally equal model.
func WriteV1(data *model.DLSv1Data, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing v1 document %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteV1To(f, data); err != nil {
		return fmt.Errorf("writing v1 document %s: %w", path, err)
	}
	return nil
}

// WriteV1To serializes a DLSv1Data model to a writer.
func WriteV1To(out io.Writer, data *model.DLSv1Data) error {
	w := newXMLWriter(out)
	w.start("vcfroot")

	w.leaf("Models", data.Vehicles)

	w.start("StageSettings")
	w.leaf("Stage1Enabled", formatBool(data.Stage1Enabled))
	w.leaf("Stage2Enabled", formatBool(data.Stage2Enabled))
	w.leaf("Stage3Enabled", formatBool(data.Stage3Enabled))
	w.leaf("CustomStage1Enabled", formatBool(data.CustomStage1Enabled))
	w.leaf("CustomStage2Enabled", formatBool(data.CustomStage2Enabled))
	w.leaf("GetStage3FromCarcols", formatBool(data.Stage3FromCarcols))
	w.end("StageSettings")

	w.start("SpecialModes")
	w.leaf("SirenUI", data.SirenUI)
	w.leaf("PresetSirenOnLeaveVehicle", data.PresetSirenOnLeave)
	w.start("WailSetup")
	w.leaf("WailSetupEnabled", formatBool(data.WailSetup.Enabled))
	w.leaf("WailLightStage", data.WailSetup.LightStage)
	w.leaf("WailSirenTone", data.WailSetup.SirenTone)
	w.end("WailSetup")
	w.start("SteadyBurn")
	w.leaf("SteadyBurnEnabled", formatBool(data.SteadyBurn.Enabled))
	w.leaf("Pattern", data.SteadyBurn.Pattern)
	w.leaf("Sirens", data.SteadyBurn.Sirens)
	w.end("SteadyBurn")
	w.end("SpecialModes")

	w.start("SoundSettings")
	w.leaf("Tone1", data.Tone1)
	w.leaf("Tone2", data.Tone2)
	w.leaf("Tone3", data.Tone3)
	w.leaf("Tone4", data.Tone4)
	w.leaf("Horn", data.Horn)
	w.leaf("AirHornInterruptsSiren", formatBool(data.AirHornInterruptsSiren))
	w.end("SoundSettings")

	w.start("TrafficAdvisory")
	w.leaf("Type", data.TrafficAdvisory.Type)
	w.leaf("DivergeOnly", formatBool(data.TrafficAdvisory.DivergeOnly))
	w.leaf("AutoEnableStages", data.TrafficAdvisory.AutoEnableStages)
	w.leaf("DefaultEnabledDirection", data.TrafficAdvisory.DefaultDirection)
	w.leaf("AutoDisableStages", data.TrafficAdvisory.AutoDisableStages)
	for _, dir := range model.TrafficAdvisoryDirections {
		if pattern, ok := data.TrafficAdvisory.Patterns[dir]; ok && pattern != "" {
			w.leaf(dir, pattern)
		}
	}
	w.end("TrafficAdvisory")

	w.start("Sirens")
	writeStage(w, "Stage1", data.Stage1)
	writeStage(w, "Stage2", data.Stage2)
	writeStage(w, "Stage3", data.Stage3)
	writeStage(w, "CustomStage1", data.CustomStage1)
	writeStage(w, "CustomStage2", data.CustomStage2)
	w.end("Sirens")

	w.end("vcfroot")
	return w.flush()
}

// writeStage writes one named pattern block; absent patterns are omitted
// entirely so they parse back as nil.
func writeStage(w *xmlWriter, name string, s *model.SirenSettings) {
	if s == nil {
		return
	}
	w.start(name)
	writeSirenSettings(w, s)
	w.end(name)
}

func writeSirenSettings(w *xmlWriter, s *model.SirenSettings) {
	w.valueLeaf("timeMultiplier", formatFloat(s.TimeMultiplier))
	w.valueLeaf("lightFalloffMax", formatFloat(s.LightFalloffMax))
	w.valueLeaf("lightFalloffExponent", formatFloat(s.LightFalloffExponent))
	w.valueLeaf("lightInnerConeAngle", formatFloat(s.LightInnerConeAngle))
	w.valueLeaf("lightOuterConeAngle", formatFloat(s.LightOuterConeAngle))
	w.valueLeaf("lightOffset", formatFloat(s.LightOffset))
	w.leaf("textureName", s.TextureName)
	w.valueLeaf("sequencerBpm", strconv.Itoa(s.SequencerBpm))

	channels := []struct {
		name      string
		sequencer int
		multiples int
		multName  string
	}{
		{"leftHeadLight", s.LeftHeadLight, s.LeftHeadLightMultiples, "leftHeadLightMultiples"},
		{"rightHeadLight", s.RightHeadLight, s.RightHeadLightMultiples, "rightHeadLightMultiples"},
		{"leftTailLight", s.LeftTailLight, s.LeftTailLightMultiples, "leftTailLightMultiples"},
		{"rightTailLight", s.RightTailLight, s.RightTailLightMultiples, "rightTailLightMultiples"},
	}
	for _, ch := range channels {
		w.start(ch.name)
		w.valueLeaf("sequencer", strconv.Itoa(ch.sequencer))
		w.end(ch.name)
		w.valueLeaf(ch.multName, strconv.Itoa(ch.multiples))
	}
	w.valueLeaf("useRealLights", formatBool(s.UseRealLights))

	w.start("sirens")
	for _, item := range s.Sirens {
		writeSirenItem(w, item)
	}
	w.end("sirens")
}

func writeSequencedParams(w *xmlWriter, name string, p *model.SequencedParams) {
	if p == nil {
		return
	}
	w.start(name)
	w.valueLeaf("delta", formatFloat(p.Delta))
	w.valueLeaf("start", formatFloat(p.Start))
	w.valueLeaf("speed", formatFloat(p.Speed))
	w.valueLeaf("sequencer", strconv.Itoa(p.Sequencer))
	w.valueLeaf("multiples", strconv.Itoa(p.Multiples))
	w.valueLeaf("direction", formatBool(p.Direction))
	w.valueLeaf("syncToBpm", formatBool(p.SyncToBpm))
	w.end(name)
}

func writeSirenItem(w *xmlWriter, item model.SirenItem) {
	w.start("Item")
	writeSequencedParams(w, "rotation", item.Rotation)
	writeSequencedParams(w, "flashiness", item.Flashiness)
	if c := item.Corona; c != nil {
		w.start("corona")
		w.valueLeaf("intensity", formatFloat(c.Intensity))
		w.valueLeaf("size", formatFloat(c.Size))
		w.valueLeaf("pull", formatFloat(c.Pull))
		w.valueLeaf("faceCamera", formatBool(c.FaceCamera))
		w.end("corona")
	}
	w.valueLeaf("color", item.Color)
	w.valueLeaf("intensity", formatFloat(item.Intensity))
	w.valueLeaf("lightGroup", strconv.Itoa(item.LightGroup))
	w.valueLeaf("rotate", formatBool(item.Rotate))
	w.valueLeaf("scale", formatBool(item.Scale))
	w.valueLeaf("scaleFactor", formatFloat(item.ScaleFactor))
	w.valueLeaf("flash", formatBool(item.Flash))
	w.valueLeaf("light", formatBool(item.Light))
	w.valueLeaf("spotLight", formatBool(item.SpotLight))
	w.valueLeaf("castShadows", formatBool(item.CastShadows))
	w.end("Item")
}
