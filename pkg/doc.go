// Package pkg provides the core libraries for the drafter drawing toolkit.
//
// # Overview
//
// Drafter persists 2D vector drawings in a simple JSON format and
// converts them to and from DXF. The pkg directory is organized around
// that data flow:
//
//	drawing JSON
//	     ↓
//	[shape] package (schema + JSON codec)
//	     ↓
//	[convert] package (registry-driven shape ⇄ entity mapping)
//	     ↓
//	[dxf] package (DXF container read/write)
//	     ↓
//	.dxf file
//
// [drawing] composes the layers into the four boundary operations a host
// calls (save, load, DXF export, DXF import), and [apperr] carries the
// structured errors those operations flatten into result messages.
// [buildinfo] holds build-time version information.
//
// # Quick Start
//
// Convert a drawing to DXF:
//
//	shapes, err := shape.Decode(data)
//	if err != nil {
//	    return err
//	}
//	doc := convert.ToDocument(shapes)
//	err = doc.Save("plan.dxf")
//
// Or use the boundary operations directly:
//
//	res := drawing.ExportDXF("plan.dxf", string(data))
//	if !res.Success {
//	    fmt.Println(res.Message)
//	}
//
// [shape]: https://pkg.go.dev/github.com/drafterhq/drafter/pkg/shape
// [convert]: https://pkg.go.dev/github.com/drafterhq/drafter/pkg/convert
// [dxf]: https://pkg.go.dev/github.com/drafterhq/drafter/pkg/dxf
// [drawing]: https://pkg.go.dev/github.com/drafterhq/drafter/pkg/drawing
// [apperr]: https://pkg.go.dev/github.com/drafterhq/drafter/pkg/apperr
// [buildinfo]: https://pkg.go.dev/github.com/drafterhq/drafter/pkg/buildinfo
package pkg
