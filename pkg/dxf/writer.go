package dxf

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// acadVersion is the DXF version written to the HEADER section. AC1009
// (AutoCAD R12) is the baseline every DXF consumer accepts.
const acadVersion = "AC1009"

// Write encodes the document as ASCII DXF: a HEADER section declaring the
// version, the ENTITIES section in document order, and the EOF marker.
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	header := []Tag{
		{0, "SECTION"}, {2, "HEADER"},
		{9, "$ACADVER"}, {1, acadVersion},
		{0, "ENDSEC"},
		{0, "SECTION"}, {2, "ENTITIES"},
	}
	for _, tag := range header {
		writeTag(bw, tag)
	}

	for _, e := range d.Entities {
		writeTag(bw, Tag{Code: 0, Value: e.Type()})
		for _, tag := range e.tags() {
			writeTag(bw, tag)
		}
	}

	writeTag(bw, Tag{0, "ENDSEC"})
	writeTag(bw, Tag{0, "EOF"})

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write dxf: %w", err)
	}
	return nil
}

// Save writes the document to a file at path, truncating any existing
// file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeTag emits one tagged pair. Group codes are right-aligned in a
// 3-character field, the layout AutoCAD itself produces.
func writeTag(w *bufio.Writer, tag Tag) {
	fmt.Fprintf(w, "%3d\r\n%s\r\n", tag.Code, tag.Value)
}
