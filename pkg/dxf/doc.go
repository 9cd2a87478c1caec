// Package dxf reads and writes a minimal subset of the DXF (Drawing
// Exchange Format) CAD file format.
//
// # Format
//
// An ASCII DXF file is a flat sequence of tagged pairs: a numeric group
// code on one line and its value on the next. Pairs are grouped into
// sections; drawable primitives live in the ENTITIES section, each
// introduced by a (0, <TYPE>) pair:
//
//	0            0            10          11
//	SECTION      LINE         1.5         4.0
//	2            8            20          21
//	ENTITIES     0            2.5         8.0
//	...
//
// # Scope
//
// The package models LINE and CIRCLE entities as typed structs. Every
// other entity kind encountered while reading is preserved as a [Raw]
// entity carrying its group codes verbatim, so callers can count or skip
// unsupported primitives without losing the rest of the file. Sections
// other than ENTITIES are skipped.
//
// Writing produces a minimal AutoCAD R12 (AC1009) document: a HEADER
// section declaring the version, the ENTITIES section in document order,
// and the EOF marker. Binary DXF is detected and rejected on read.
//
// # Reading and writing
//
//	doc, err := dxf.Open("plan.dxf")
//	...
//	err = doc.Save("copy.dxf")
//
// [Read] and [Document.Write] are the io.Reader/io.Writer equivalents.
package dxf
