package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/astranger1k/DLSTool/internal/model"
)

// WriteV2 serializes a DLSv2Data model to a schema v2 document file, the
// mirror of ParseV2.
func WriteV2(data *model.DLSv2Data, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing v2 document %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteV2To(f, data); err != nil {
		return fmt.Errorf("writing v2 document %s: %w", path, err)
	}
	return nil
}

// WriteV2To serializes a DLSv2Data model to a writer.
func WriteV2To(out io.Writer, data *model.DLSv2Data) error {
	w := newXMLWriter(out)
	w.start("Vehicle", attr("vehicles", data.Vehicles))

	w.start("Audio")
	w.start("AudioModes")
	for _, mode := range data.AudioModes {
		w.start("AudioMode", attr("name", mode.Name))
		w.leaf("Sound", mode.SoundName,
			attr("soundset", mode.Soundset),
			attr("soundbank", mode.Soundbank))
		w.start("Yield", attr("enabled", formatBool(mode.YieldEnabled)))
		w.end("Yield")
		w.end("AudioMode")
	}
	w.end("AudioModes")

	w.start("AudioControlGroups")
	for _, group := range data.AudioControlGroups {
		w.start("AudioControlGroup",
			attr("name", group.Name),
			attr("cycle", group.Cycle),
			attr("rev_cycle", group.RevCycle),
			attr("toggle", group.Toggle),
			attr("exclusive", formatBool(group.Exclusive)))
		w.start("AudioModes")
		for _, entry := range group.Modes {
			w.leaf("AudioMode", strings.Join(entry.Names, ","),
				attr("toggle", entry.Toggle),
				attr("hold", entry.Hold))
		}
		w.end("AudioModes")
		w.end("AudioControlGroup")
	}
	w.end("AudioControlGroups")
	w.end("Audio")

	w.start("Modes")
	for _, mode := range data.LightModes {
		w.start("Mode", attr("name", mode.Name))
		w.start("Yield", attr("enabled", formatBool(mode.YieldEnabled)))
		w.end("Yield")
		if len(mode.Extras) > 0 {
			w.start("Extras")
			for _, extra := range mode.Extras {
				w.start("Extra",
					attr("ID", strconv.Itoa(extra.ID)),
					attr("Enabled", formatBool(extra.Enabled)))
				w.end("Extra")
			}
			w.end("Extras")
		}
		if mode.SirenSettings != nil {
			w.start("SirenSettings")
			writeSirenSettings(w, mode.SirenSettings)
			w.end("SirenSettings")
		}
		if mode.Conditions != "" {
			w.start("Conditions")
			w.raw(mode.Conditions)
			w.end("Conditions")
		}
		w.end("Mode")
	}
	w.end("Modes")

	w.leaf("PatternSync", data.PatternSync)
	w.leaf("SpeedDrift", formatFloat(data.SpeedDrift))
	w.leaf("DefaultMode", data.DefaultMode)

	w.end("Vehicle")
	return w.flush()
}
