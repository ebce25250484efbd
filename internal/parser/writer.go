package parser

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// xmlWriter wraps an xml.Encoder with sticky-error element helpers so the
// writers read as a flat description of the document shape.
type xmlWriter struct {
	enc *xml.Encoder
	err error
}

func newXMLWriter(w io.Writer) *xmlWriter {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &xmlWriter{enc: enc}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (w *xmlWriter) start(name string, attrs ...xml.Attr) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (w *xmlWriter) end(name string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// leaf writes <name>text</name>.
func (w *xmlWriter) leaf(name, text string, attrs ...xml.Attr) {
	w.start(name, attrs...)
	if w.err == nil && text != "" {
		w.err = w.enc.EncodeToken(xml.CharData(text))
	}
	w.end(name)
}

// valueLeaf writes the <name value="..."/> form used for numeric fields.
func (w *xmlWriter) valueLeaf(name, value string) {
	w.start(name, attr("value", value))
	w.end(name)
}

// raw re-tokenizes a stored innerxml fragment and copies it into the output.
func (w *xmlWriter) raw(fragment string) {
	if w.err != nil || strings.TrimSpace(fragment) == "" {
		return
	}
	dec := xml.NewDecoder(strings.NewReader(fragment))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			w.err = err
			return
		}
		if w.err = w.enc.EncodeToken(xml.CopyToken(tok)); w.err != nil {
			return
		}
	}
}

func (w *xmlWriter) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.enc.Flush()
}
