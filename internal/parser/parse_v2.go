package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/astranger1k/DLSTool/internal/model"
)

// ParseV2 reads a schema v2 document file into a DLSv2Data model.
func (p *Parser) ParseV2(path string) (*model.DLSv2Data, error) {
	root, err := Load(path)
	if err != nil {
		return nil, err
	}
	data, err := p.ParseV2Root(root)
	if err != nil {
		return nil, fmt.Errorf("parsing v2 document %s: %w", path, err)
	}
	p.logger.Debug("Parsed v2 document",
		"path", path,
		"audioModes", len(data.AudioModes),
		"lightModes", len(data.LightModes))
	return data, nil
}

// ParseV2Root populates a DLSv2Data from an already-loaded element tree.
func (p *Parser) ParseV2Root(root *Element) (*model.DLSv2Data, error) {
	data := model.NewDLSv2Data()
	data.Vehicles = root.Attr("vehicles", "police")

	if audio := root.Find("Audio"); audio != nil {
		if modes := audio.Find("AudioModes"); modes != nil {
			for _, me := range modes.FindAll("AudioMode") {
				data.AudioModes = append(data.AudioModes, parseAudioMode(me))
			}
		}
		if groups := audio.Find("AudioControlGroups"); groups != nil {
			for _, ge := range groups.FindAll("AudioControlGroup") {
				data.AudioControlGroups = append(data.AudioControlGroups, parseControlGroup(ge))
			}
		}
	}

	if modes := root.Find("Modes"); modes != nil {
		for _, me := range modes.FindAll("Mode") {
			mode, err := parseLightMode(me)
			if err != nil {
				return nil, fmt.Errorf("mode %q: %w", mode.Name, err)
			}
			data.LightModes = append(data.LightModes, mode)
		}
	}

	data.PatternSync = root.FindText("PatternSync", "")
	if root.Find("SpeedDrift") != nil {
		drift, err := root.floatValue("SpeedDrift", "0")
		if err != nil {
			return nil, err
		}
		data.SpeedDrift = drift
	}
	data.DefaultMode = root.FindText("DefaultMode", "")

	return data, nil
}

func parseAudioMode(e *Element) model.AudioMode {
	mode := model.AudioMode{Name: e.Attr("name", "")}
	if sound := e.Find("Sound"); sound != nil {
		mode.Soundset = sound.Attr("soundset", "")
		mode.Soundbank = sound.Attr("soundbank", "")
		mode.SoundName = strings.TrimSpace(sound.Text)
	}
	if y := e.Find("Yield"); y != nil {
		mode.YieldEnabled = strings.EqualFold(y.Attr("enabled", "false"), "true")
	}
	return mode
}

func parseControlGroup(e *Element) model.AudioControlGroup {
	group := model.AudioControlGroup{
		Name:      e.Attr("name", ""),
		Cycle:     e.Attr("cycle", ""),
		RevCycle:  e.Attr("rev_cycle", ""),
		Toggle:    e.Attr("toggle", ""),
		Exclusive: strings.EqualFold(e.Attr("exclusive", "false"), "true"),
	}
	if modes := e.Find("AudioModes"); modes != nil {
		for _, entry := range modes.FindAll("AudioMode") {
			group.Modes = append(group.Modes, model.AudioControlModeEntry{
				Names:  splitNames(entry.Text),
				Toggle: entry.Attr("toggle", ""),
				Hold:   entry.Attr("hold", ""),
			})
		}
	}
	return group
}

// splitNames parses a comma-separated mode-name list, dropping empty entries.
func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func parseExtra(e *Element) (model.Extra, error) {
	s := e.Attr("ID", "0")
	id, err := strconv.Atoi(s)
	if err != nil {
		return model.Extra{}, &FieldTypeError{Path: "Extra/ID", Value: s, Want: "integer"}
	}
	return model.Extra{
		ID:      id,
		Enabled: strings.EqualFold(e.Attr("Enabled", "false"), "true"),
	}, nil
}

func parseLightMode(e *Element) (model.LightMode, error) {
	mode := model.LightMode{Name: e.Attr("name", "")}
	if y := e.Find("Yield"); y != nil {
		mode.YieldEnabled = strings.EqualFold(y.Attr("enabled", "false"), "true")
	}
	if extras := e.Find("Extras"); extras != nil {
		for _, ee := range extras.FindAll("Extra") {
			extra, err := parseExtra(ee)
			if err != nil {
				return mode, err
			}
			mode.Extras = append(mode.Extras, extra)
		}
	}
	if ss := e.Find("SirenSettings"); ss != nil {
		settings, err := parseSirenSettings(ss)
		if err != nil {
			return mode, err
		}
		mode.SirenSettings = settings
	}
	// Condition blocks are not interpreted, only carried through verbatim.
	if cond := e.Find("Conditions"); cond != nil {
		mode.Conditions = strings.TrimSpace(cond.Inner)
	}
	return mode, nil
}
