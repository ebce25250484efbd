// Package version detects which DLS generation produced a document or an
// installed plugin. Document detection is structural (root shape only);
// plugin detection is a weighted-signal heuristic over an INI settings file,
// since that format carries no explicit version tag.
package version

import (
	"github.com/astranger1k/DLSTool/internal/model"
	"github.com/astranger1k/DLSTool/internal/parser"
)

// DetectDocument classifies a loaded document by its root shape. Decision
// order matters: the vehicles-attribute check must win over legacy-named
// elements a v2 document may still carry.
func DetectDocument(root *parser.Element) model.Version {
	if root == nil {
		return model.VersionUnknown
	}
	if root.HasAttr("vehicles") {
		return model.VersionV2
	}
	if root.Find("StageSettings") != nil || root.Find("SoundSettings") != nil {
		return model.VersionV1
	}
	if root.Find("Audio") != nil || root.Find("Modes") != nil {
		return model.VersionV2
	}
	return model.VersionUnknown
}

// DetectDocumentFile loads and classifies a document file. Any read failure
// classifies as unknown rather than erroring.
func DetectDocumentFile(path string) model.Version {
	root, err := parser.Load(path)
	if err != nil {
		return model.VersionUnknown
	}
	return DetectDocument(root)
}

// ParseDocument loads a document, detects its schema generation and
// dispatches to the matching parser. It is the sole constructor of the
// Document tag: an unclassifiable document yields ErrUnknownVersion.
func ParseDocument(p *parser.Parser, path string) (model.Document, error) {
	root, err := parser.Load(path)
	if err != nil {
		return model.Document{Version: model.VersionUnknown}, err
	}
	switch DetectDocument(root) {
	case model.VersionV1:
		v1, err := p.ParseV1Root(root)
		if err != nil {
			return model.Document{Version: model.VersionUnknown}, err
		}
		return model.Document{Version: model.VersionV1, V1: v1}, nil
	case model.VersionV2:
		v2, err := p.ParseV2Root(root)
		if err != nil {
			return model.Document{Version: model.VersionUnknown}, err
		}
		return model.Document{Version: model.VersionV2, V2: v2}, nil
	default:
		return model.Document{Version: model.VersionUnknown}, parser.ErrUnknownVersion
	}
}
