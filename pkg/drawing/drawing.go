// Package drawing exposes the four file persistence operations a host
// application calls: native save/load of the JSON drawing format, and
// DXF export/import.
//
// Every operation is synchronous and stateless. Failures never panic or
// escape as errors; they come back as a result with Success=false and a
// human-readable Message.
// Internally failures are structured [apperr.Error] values; they are
// flattened to strings only here, at the boundary.
//
// Concurrent calls are safe as long as they target different paths; the
// package does no file locking, so concurrent writes to the same path
// are last-writer-wins.
package drawing

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/drafterhq/drafter/pkg/apperr"
	"github.com/drafterhq/drafter/pkg/convert"
	"github.com/drafterhq/drafter/pkg/dxf"
	"github.com/drafterhq/drafter/pkg/shape"
)

// SaveResult reports the outcome of a write operation.
type SaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoadResult reports the outcome of a read operation. Data is nil on
// failure.
type LoadResult struct {
	Success bool    `json:"success"`
	Data    *string `json:"data"`
	Message string  `json:"message"`
}

// SaveFile writes data verbatim to path, truncating any existing file.
// The data is expected to be the serialized drawing JSON, but SaveFile
// does not inspect it; validity is the caller's concern.
func SaveFile(path, data string) SaveResult {
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return failSave(apperr.Wrap(apperr.CodeFileWrite, err, "Failed to save file"))
	}
	return SaveResult{Success: true, Message: fmt.Sprintf("File saved to %s", path)}
}

// LoadFile reads path fully and returns its content verbatim, unparsed.
func LoadFile(path string) LoadResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return failLoad(apperr.Wrap(apperr.CodeFileRead, err, "Failed to load file"))
	}
	data := string(content)
	return LoadResult{Success: true, Data: &data, Message: "File loaded successfully"}
}

// ExportDXF parses shapesJSON, converts the shapes to DXF entities, and
// writes the document to path.
//
// Shapes the converter does not support are skipped silently. A parse
// failure is reported before the target file is opened: the whole
// document is encoded in memory first, so a failed export never creates
// or modifies the file.
func ExportDXF(path, shapesJSON string) SaveResult {
	if err := exportDXF(path, shapesJSON); err != nil {
		return failSave(err)
	}
	return SaveResult{Success: true, Message: fmt.Sprintf("DXF exported to %s", path)}
}

func exportDXF(path, shapesJSON string) error {
	shapes, err := shape.Decode([]byte(shapesJSON))
	if err != nil {
		return apperr.Wrap(apperr.CodeInvalidShapes, err, "Failed to parse shapes")
	}

	doc := convert.ToDocument(shapes)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return apperr.Wrap(apperr.CodeDXFWrite, err, "Failed to export DXF")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return apperr.Wrap(apperr.CodeDXFWrite, err, "Failed to export DXF")
	}
	return nil
}

// ImportDXF reads and parses the DXF file at path, converts its entities
// to shapes, and returns the collection serialized as drawing JSON.
// Entity kinds the converter does not support are skipped silently.
func ImportDXF(path string) LoadResult {
	data, err := importDXF(path)
	if err != nil {
		return failLoad(err)
	}
	text := string(data)
	return LoadResult{Success: true, Data: &text, Message: "DXF imported successfully"}
}

func importDXF(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDXFRead, err, "Failed to load DXF")
	}
	defer f.Close()

	doc, err := dxf.Read(f)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDXFRead, err, "Failed to load DXF")
	}

	data, err := shape.Encode(convert.FromDocument(doc))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeSerialize, err, "Failed to serialize shapes")
	}
	return data, nil
}

// failSave flattens a structured error into the boundary result shape.
func failSave(err error) SaveResult {
	return SaveResult{Success: false, Message: boundaryMessage(err)}
}

func failLoad(err error) LoadResult {
	return LoadResult{Success: false, Message: boundaryMessage(err)}
}

// boundaryMessage renders an error as the single human-readable string
// the host sees: the operation's message plus the underlying cause.
func boundaryMessage(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
