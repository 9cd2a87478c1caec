package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBinary is returned when the input is a binary DXF file. Only the
// ASCII encoding is supported.
var ErrBinary = errors.New("binary DXF is not supported")

// binarySentinel is the fixed prefix of every binary DXF file.
const binarySentinel = "AutoCAD Binary DXF"

// Open reads the DXF file at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Read parses an ASCII DXF document from r.
//
// Only the ENTITIES section is interpreted; every other section is
// skipped. Unrecognized entity kinds are preserved as [Raw] entities.
// Read returns an error for binary DXF input, truncated tagged pairs,
// non-numeric group codes, and malformed coordinate values. A missing
// EOF marker is tolerated: end of input ends the document.
func Read(r io.Reader) (*Document, error) {
	tr := newTagReader(r)
	doc := &Document{}

	for {
		tag, err := tr.next()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		if tag.Code != 0 {
			// Stray tags between sections (e.g. 999 comments) are ignored.
			continue
		}

		switch tag.Value {
		case "EOF":
			return doc, nil
		case "SECTION":
			name, err := tr.next()
			if err != nil {
				return nil, fmt.Errorf("line %d: SECTION without a name", tr.line)
			}
			if name.Code != 2 {
				return nil, fmt.Errorf("line %d: SECTION name must be group code 2, got %d", tr.line, name.Code)
			}
			if name.Value == "ENTITIES" {
				if err := readEntities(tr, doc); err != nil {
					return nil, err
				}
			} else if err := skipSection(tr); err != nil {
				return nil, err
			}
		}
	}
}

// readEntities consumes the body of an ENTITIES section up to its ENDSEC.
func readEntities(tr *tagReader, doc *Document) error {
	for {
		tag, err := tr.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.Code != 0 {
			continue
		}
		if tag.Value == "ENDSEC" {
			return nil
		}

		entity, err := readEntity(tr, tag.Value)
		if err != nil {
			return err
		}
		doc.Append(entity)
	}
}

// readEntity collects the group codes of one entity (everything up to the
// next code-0 tag) and builds the typed representation.
func readEntity(tr *tagReader, name string) (Entity, error) {
	var tags []Tag
	for {
		tag, err := tr.peek()
		if err == io.EOF || (err == nil && tag.Code == 0) {
			break
		}
		if err != nil {
			return nil, err
		}
		tr.discard()
		tags = append(tags, tag)
	}

	switch name {
	case "LINE":
		return buildLine(tr, tags)
	case "CIRCLE":
		return buildCircle(tr, tags)
	default:
		return &Raw{Name: name, Tags: tags}, nil
	}
}

func buildLine(tr *tagReader, tags []Tag) (Entity, error) {
	l := &Line{Layer: DefaultLayer}
	for _, tag := range tags {
		v, err := tagFloat(tr, tag)
		if err != nil {
			return nil, err
		}
		switch tag.Code {
		case 8:
			l.Layer = tag.Value
		case 10:
			l.Start.X = v
		case 20:
			l.Start.Y = v
		case 30:
			l.Start.Z = v
		case 11:
			l.End.X = v
		case 21:
			l.End.Y = v
		case 31:
			l.End.Z = v
		}
	}
	return l, nil
}

func buildCircle(tr *tagReader, tags []Tag) (Entity, error) {
	c := &Circle{Layer: DefaultLayer}
	for _, tag := range tags {
		v, err := tagFloat(tr, tag)
		if err != nil {
			return nil, err
		}
		switch tag.Code {
		case 8:
			c.Layer = tag.Value
		case 10:
			c.Center.X = v
		case 20:
			c.Center.Y = v
		case 30:
			c.Center.Z = v
		case 40:
			c.Radius = v
		}
	}
	return c, nil
}

// tagFloat parses the tag's value as a coordinate when its group code is
// numeric (10-59 covers the double-precision ranges used here). Other
// codes return 0 with no error; their values stay textual.
func tagFloat(tr *tagReader, tag Tag) (float64, error) {
	if tag.Code < 10 || tag.Code > 59 {
		return 0, nil
	}
	v, err := strconv.ParseFloat(tag.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: group %d: invalid numeric value %q", tr.line, tag.Code, tag.Value)
	}
	return v, nil
}

// skipSection discards tags until the section's ENDSEC.
func skipSection(tr *tagReader) error {
	for {
		tag, err := tr.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.Code == 0 && tag.Value == "ENDSEC" {
			return nil
		}
	}
}

// tagReader yields tagged pairs from line-oriented DXF input with
// single-tag lookahead.
type tagReader struct {
	s       *bufio.Scanner
	line    int
	pending *Tag
}

func newTagReader(r io.Reader) *tagReader {
	return &tagReader{s: bufio.NewScanner(r)}
}

// next returns the following tag, or io.EOF at end of input.
func (tr *tagReader) next() (Tag, error) {
	if tr.pending != nil {
		tag := *tr.pending
		tr.pending = nil
		return tag, nil
	}

	codeLine, ok := tr.scan()
	if !ok {
		if err := tr.s.Err(); err != nil {
			return Tag{}, err
		}
		return Tag{}, io.EOF
	}
	if strings.HasPrefix(codeLine, binarySentinel) {
		return Tag{}, ErrBinary
	}
	code, err := strconv.Atoi(codeLine)
	if err != nil {
		return Tag{}, fmt.Errorf("line %d: invalid group code %q", tr.line, codeLine)
	}

	value, ok := tr.scan()
	if !ok {
		if err := tr.s.Err(); err != nil {
			return Tag{}, err
		}
		return Tag{}, fmt.Errorf("line %d: group code %d has no value", tr.line, code)
	}
	return Tag{Code: code, Value: value}, nil
}

// peek returns the following tag without consuming it.
func (tr *tagReader) peek() (Tag, error) {
	if tr.pending == nil {
		tag, err := tr.next()
		if err != nil {
			return Tag{}, err
		}
		tr.pending = &tag
	}
	return *tr.pending, nil
}

// discard drops the tag returned by the last peek.
func (tr *tagReader) discard() { tr.pending = nil }

// scan reads one trimmed line. Group code lines are space-padded in files
// written by AutoCAD, and values carry no significant outer whitespace in
// the subset handled here.
func (tr *tagReader) scan() (string, bool) {
	if !tr.s.Scan() {
		return "", false
	}
	tr.line++
	return strings.TrimSpace(tr.s.Text()), true
}
