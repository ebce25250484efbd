package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/astranger1k/DLSTool/internal/analyzer"
	"github.com/astranger1k/DLSTool/internal/config"
	"github.com/astranger1k/DLSTool/internal/convert"
	"github.com/astranger1k/DLSTool/internal/logging"
	"github.com/astranger1k/DLSTool/internal/model"
	"github.com/astranger1k/DLSTool/internal/parser"
	"github.com/astranger1k/DLSTool/internal/scan"
	"github.com/astranger1k/DLSTool/internal/version"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: dlstool [flags] <command> [args]

Commands:
  detect <file>           report which DLS schema a document uses
  analyze <file>          summarize a document (see --json)
  convert <in> <out>      convert between v1 and v2, direction inferred
  scan <dir>              index a folder of documents by schema
  plugin-version <ini>    infer installed plugin generation from settings

Flags:
`)
	pflag.PrintDefaults()
}

func main() {
	configDir := pflag.String("config-dir", ".", "directory containing dlstool.cfg.json")
	logLevel := pflag.String("log-level", "", "override configured log level")
	jsonOut := pflag.Bool("json", false, "emit analyze output as JSON")
	pflag.Usage = usage
	pflag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
		os.Exit(1)
	}
	level := config.GetString("logLevel")
	if *logLevel != "" {
		level = *logLevel
	}

	var logFile io.Writer
	if config.GetBool("logToFile") {
		logsDir := config.GetString("logsDir")
		if err := os.MkdirAll(logsDir, 0o755); err == nil {
			if f, err := os.Create(logging.LogFilePath(logsDir, time.Now())); err == nil {
				defer f.Close()
				logFile = f
			}
		}
	}
	logger := logging.Setup(logFile, level)

	args := pflag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "detect":
		err = runDetect(args[1:])
	case "analyze":
		err = runAnalyze(logger, args[1:], *jsonOut)
	case "convert":
		err = runConvert(logger, args[1:])
	case "scan":
		err = runScan(logger, args[1:])
	case "plugin-version":
		err = runPluginVersion(args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("Command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func runDetect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("detect: expected one file argument")
	}
	detected := version.DetectDocumentFile(args[0])
	fmt.Println(detected)
	if detected == model.VersionUnknown {
		return fmt.Errorf("%s: %w", args[0], parser.ErrUnknownVersion)
	}
	return nil
}

func runAnalyze(logger *slog.Logger, args []string, jsonOut bool) error {
	if len(args) != 1 {
		return fmt.Errorf("analyze: expected one file argument")
	}
	doc, err := version.ParseDocument(parser.New(logger), args[0])
	if err != nil {
		return err
	}

	var summary any
	switch doc.Version {
	case model.VersionV1:
		summary = analyzer.AnalyzeV1(doc.V1)
	case model.VersionV2:
		summary = analyzer.AnalyzeV2(doc.V2)
	}
	if jsonOut {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	printSummary(summary)
	return nil
}

func printSummary(summary any) {
	switch s := summary.(type) {
	case analyzer.V1Summary:
		fmt.Printf("%s  vehicles=%q  total sirens=%d\n", s.Version, s.Vehicles, s.TotalSirens)
		for _, stage := range s.Stages {
			if stage.Enabled {
				fmt.Printf("  %-16s enabled  sirens=%d bpm=%d texture=%s\n", stage.Name, stage.SirenCount, stage.Bpm, stage.Texture)
			} else {
				fmt.Printf("  %-16s disabled\n", stage.Name)
			}
		}
		fmt.Printf("  tones: %s | %s | %s | %s  horn: %s\n", s.Audio.Tone1, s.Audio.Tone2, s.Audio.Tone3, s.Audio.Tone4, s.Audio.Horn)
		if s.TrafficAdvisory.Enabled {
			fmt.Printf("  traffic advisory: %s (%d patterns)\n", s.TrafficAdvisory.Type, s.TrafficAdvisory.Patterns)
		}
	case analyzer.V2Summary:
		fmt.Printf("%s  vehicles=%q  total sirens=%d\n", s.Version, s.Vehicles, s.TotalSirens)
		for _, mode := range s.LightModes {
			fmt.Printf("  light %-20s sirens=%d extras=%d yield=%v\n", mode.Name, mode.SirenCount, mode.ExtrasCount, mode.YieldEnabled)
		}
		for _, mode := range s.AudioModes {
			fmt.Printf("  audio %-20s %s/%s\n", mode.Name, mode.Soundset, mode.Sound)
		}
		if n := s.Features.ControlGroups; n > 0 {
			fmt.Printf("  control groups: %d\n", n)
		}
	}
}

func runConvert(logger *slog.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("convert: expected input and output file arguments")
	}
	in, out := args[0], args[1]

	doc, err := version.ParseDocument(parser.New(logger), in)
	if err != nil {
		return err
	}

	var warnings []string
	switch doc.Version {
	case model.VersionV1:
		v2, warns := convert.V1ToV2(doc.V1)
		warnings = warns
		err = parser.WriteV2(v2, out)
	case model.VersionV2:
		v1, warns := convert.V2ToV1(doc.V2)
		warnings = warns
		err = parser.WriteV1(v1, out)
	}
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		logger.Warn("Conversion loss", "detail", warning)
	}
	logger.Info("Converted document", "input", in, "output", out, "warnings", len(warnings))
	return nil
}

func runScan(logger *slog.Logger, args []string) error {
	root := config.GetString("gameDir")
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		return fmt.Errorf("scan: no directory given and no gameDir configured")
	}
	result, err := scan.Directory(root, logger)
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		fmt.Printf("%-8s %s\n", entry.Version, entry.RelPath)
	}
	logger.Info("Scan complete", "root", root, "files", len(result.Entries))
	return nil
}

func runPluginVersion(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("plugin-version: expected one settings file argument")
	}
	inferred := version.InferPluginVersionFile(args[0])
	fmt.Println(inferred)
	if inferred == version.PluginUnknown {
		return fmt.Errorf("%s: plugin version undetermined", args[0])
	}
	return nil
}
