package parser

import (
	"fmt"

	"github.com/astranger1k/DLSTool/internal/model"
)

// ParseV1 reads a schema v1 document file into a DLSv1Data model.
func (p *Parser) ParseV1(path string) (*model.DLSv1Data, error) {
	root, err := Load(path)
	if err != nil {
		return nil, err
	}
	data, err := p.ParseV1Root(root)
	if err != nil {
		return nil, fmt.Errorf("parsing v1 document %s: %w", path, err)
	}
	p.logger.Debug("Parsed v1 document", "path", path, "vehicles", data.Vehicles)
	return data, nil
}

// ParseV1Root populates a DLSv1Data from an already-loaded element tree.
// Missing optional elements fall back to their defaults; a present field
// with a malformed numeric value aborts the parse.
func (p *Parser) ParseV1Root(root *Element) (*model.DLSv1Data, error) {
	data := model.NewDLSv1Data()
	data.Vehicles = root.FindText("Models", "")

	if ss := root.Find("StageSettings"); ss != nil {
		data.Stage1Enabled = ss.boolText("Stage1Enabled", "true")
		data.Stage2Enabled = ss.boolText("Stage2Enabled", "true")
		data.Stage3Enabled = ss.boolText("Stage3Enabled", "true")
		data.CustomStage1Enabled = ss.boolText("CustomStage1Enabled", "false")
		data.CustomStage2Enabled = ss.boolText("CustomStage2Enabled", "false")
		data.Stage3FromCarcols = ss.boolText("GetStage3FromCarcols", "false")
	}

	if sm := root.Find("SpecialModes"); sm != nil {
		data.SirenUI = sm.FindText("SirenUI", "")
		data.PresetSirenOnLeave = sm.FindText("PresetSirenOnLeaveVehicle", "none")

		if ws := sm.Find("WailSetup"); ws != nil {
			data.WailSetup.Enabled = ws.boolText("WailSetupEnabled", "false")
			data.WailSetup.LightStage = ws.FindText("WailLightStage", "")
			data.WailSetup.SirenTone = ws.FindText("WailSirenTone", "")
		}
		if sb := sm.Find("SteadyBurn"); sb != nil {
			data.SteadyBurn.Enabled = sb.boolText("SteadyBurnEnabled", "false")
			data.SteadyBurn.Pattern = sb.FindText("Pattern", "")
			data.SteadyBurn.Sirens = sb.FindText("Sirens", "")
		}
	}

	if snd := root.Find("SoundSettings"); snd != nil {
		data.Tone1 = snd.FindText("Tone1", data.Tone1)
		data.Tone2 = snd.FindText("Tone2", data.Tone2)
		data.Tone3 = snd.FindText("Tone3", data.Tone3)
		data.Tone4 = snd.FindText("Tone4", data.Tone4)
		data.Horn = snd.FindText("Horn", data.Horn)
		data.AirHornInterruptsSiren = snd.boolText("AirHornInterruptsSiren", "false")
	}

	if ta := root.Find("TrafficAdvisory"); ta != nil {
		data.TrafficAdvisory.Type = ta.FindText("Type", "off")
		data.TrafficAdvisory.DivergeOnly = ta.boolText("DivergeOnly", "false")
		data.TrafficAdvisory.AutoEnableStages = ta.FindText("AutoEnableStages", "")
		data.TrafficAdvisory.DefaultDirection = ta.FindText("DefaultEnabledDirection", "")
		data.TrafficAdvisory.AutoDisableStages = ta.FindText("AutoDisableStages", "")
		for _, dir := range model.TrafficAdvisoryDirections {
			if pattern := ta.FindText(dir, ""); pattern != "" {
				data.TrafficAdvisory.Patterns[dir] = pattern
			}
		}
	}

	if sirens := root.Find("Sirens"); sirens != nil {
		var err error
		stages := []struct {
			name string
			dst  **model.SirenSettings
		}{
			{"Stage1", &data.Stage1},
			{"Stage2", &data.Stage2},
			{"Stage3", &data.Stage3},
			{"CustomStage1", &data.CustomStage1},
			{"CustomStage2", &data.CustomStage2},
		}
		for _, stage := range stages {
			*stage.dst, err = parseSirenSettings(sirens.Find(stage.name))
			if err != nil {
				return nil, fmt.Errorf("stage %s: %w", stage.name, err)
			}
		}
	}

	return data, nil
}

// parseSirenSettings parses one lighting pattern block. A nil element means
// the pattern is absent and yields a nil pattern, not an empty one.
func parseSirenSettings(e *Element) (*model.SirenSettings, error) {
	if e == nil {
		return nil, nil
	}

	s := model.NewSirenSettings()
	var err error
	floats := []struct {
		path string
		def  string
		dst  *float64
	}{
		{"timeMultiplier", "1", &s.TimeMultiplier},
		{"lightFalloffMax", "10", &s.LightFalloffMax},
		{"lightFalloffExponent", "10", &s.LightFalloffExponent},
		{"lightInnerConeAngle", "2.29061", &s.LightInnerConeAngle},
		{"lightOuterConeAngle", "70", &s.LightOuterConeAngle},
		{"lightOffset", "0", &s.LightOffset},
	}
	for _, f := range floats {
		if *f.dst, err = e.floatValue(f.path, f.def); err != nil {
			return nil, err
		}
	}

	s.TextureName = e.FindText("textureName", "VehicleLight_sirenlight")
	if s.SequencerBpm, err = e.intValue("sequencerBpm", "220"); err != nil {
		return nil, err
	}

	// Light-channel sequencer indices sit one level down in the document.
	ints := []struct {
		path string
		def  string
		dst  *int
	}{
		{"leftHeadLight/sequencer", "0", &s.LeftHeadLight},
		{"rightHeadLight/sequencer", "0", &s.RightHeadLight},
		{"leftTailLight/sequencer", "0", &s.LeftTailLight},
		{"rightTailLight/sequencer", "0", &s.RightTailLight},
		{"leftHeadLightMultiples", "1", &s.LeftHeadLightMultiples},
		{"rightHeadLightMultiples", "1", &s.RightHeadLightMultiples},
		{"leftTailLightMultiples", "1", &s.LeftTailLightMultiples},
		{"rightTailLightMultiples", "1", &s.RightTailLightMultiples},
	}
	for _, f := range ints {
		if *f.dst, err = e.intValue(f.path, f.def); err != nil {
			return nil, err
		}
	}
	s.UseRealLights = e.boolValue("useRealLights", "true")

	if list := e.Find("sirens"); list != nil {
		for i, item := range list.FindAll("Item") {
			siren, err := parseSirenItem(item)
			if err != nil {
				return nil, fmt.Errorf("siren item %d: %w", i, err)
			}
			s.Sirens = append(s.Sirens, siren)
		}
	}

	return s, nil
}

func parseSequencedParams(e *Element) (*model.SequencedParams, error) {
	if e == nil {
		return nil, nil
	}
	p := &model.SequencedParams{}
	var err error
	if p.Delta, err = e.floatValue("delta", "0"); err != nil {
		return nil, err
	}
	if p.Start, err = e.floatValue("start", "0"); err != nil {
		return nil, err
	}
	if p.Speed, err = e.floatValue("speed", "0"); err != nil {
		return nil, err
	}
	if p.Sequencer, err = e.intValue("sequencer", "0"); err != nil {
		return nil, err
	}
	if p.Multiples, err = e.intValue("multiples", "1"); err != nil {
		return nil, err
	}
	p.Direction = e.boolValue("direction", "false")
	p.SyncToBpm = e.boolValue("syncToBpm", "true")
	return p, nil
}

func parseSirenItem(e *Element) (model.SirenItem, error) {
	siren := model.NewSirenItem()
	var err error

	if siren.Rotation, err = parseSequencedParams(e.Find("rotation")); err != nil {
		return siren, fmt.Errorf("rotation: %w", err)
	}
	if siren.Flashiness, err = parseSequencedParams(e.Find("flashiness")); err != nil {
		return siren, fmt.Errorf("flashiness: %w", err)
	}

	if corona := e.Find("corona"); corona != nil {
		c := &model.CoronaParams{}
		if c.Intensity, err = corona.floatValue("intensity", "50"); err != nil {
			return siren, err
		}
		if c.Size, err = corona.floatValue("size", "1"); err != nil {
			return siren, err
		}
		if c.Pull, err = corona.floatValue("pull", "0"); err != nil {
			return siren, err
		}
		c.FaceCamera = corona.boolValue("faceCamera", "false")
		siren.Corona = c
	}

	siren.Color = e.value("color", "0xFFFFFFFF")
	if siren.Intensity, err = e.floatValue("intensity", "1"); err != nil {
		return siren, err
	}
	if siren.LightGroup, err = e.intValue("lightGroup", "0"); err != nil {
		return siren, err
	}
	siren.Rotate = e.boolValue("rotate", "false")
	siren.Scale = e.boolValue("scale", "true")
	if siren.ScaleFactor, err = e.floatValue("scaleFactor", "1"); err != nil {
		return siren, err
	}
	siren.Flash = e.boolValue("flash", "true")
	siren.Light = e.boolValue("light", "true")
	siren.SpotLight = e.boolValue("spotLight", "true")
	siren.CastShadows = e.boolValue("castShadows", "false")
	return siren, nil
}
