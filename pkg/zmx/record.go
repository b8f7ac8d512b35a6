// Package zmx parses Zemax OpticsStudio prescription files (.zmx).
// A prescription is a line-oriented text file: a short header (units,
// wavelengths, field points) followed by one block per optical surface.
// The parser extracts flat, typed records; interpreting them as concrete
// surfaces is the job of the surface package.
package zmx

import (
	"strconv"
	"strings"
)

// Line tags recognized inside a surface block. Unknown tags are ignored
// so that prescriptions from newer OpticsStudio versions still parse.
const (
	tagSurface      = "SURF" // surface index, starts a block
	tagComment      = "COMM" // surface name ("Comment" in the LDE)
	tagType         = "TYPE" // surface type tag
	tagCurvature    = "CURV" // reciprocal of the curvature radius
	tagThickness    = "DISZ" // thickness to the next surface
	tagGlass        = "GLAS" // material name
	tagSemiDiameter = "DIAM" // semi-diameter of the clear aperture
	tagAperture     = "SQAP" // rectangular aperture half-widths
	tagDecenter     = "OBDC" // aperture decenter
	tagParameter    = "PARM" // keyed family-specific parameter
)

// Vec2 is a pair of length values, used for rectangular apertures and
// aperture decenters.
type Vec2 struct {
	X, Y float64
}

// Record holds the raw fields of one surface block. Values are exactly
// as written in the file: curvature is a reciprocal radius, lengths are
// in lens units, no conversions applied. A Record is produced once by
// the parser and consumed once by the surface factory.
type Record struct {
	Index        int
	Name         string
	Type         string
	Curvature    float64 // 1/radius, 0 means flat
	Thickness    float64 // +Inf for an unbounded tail surface
	Glass        string
	SemiDiameter float64
	Aperture     *Vec2 // nil unless SQAP present
	Decenter     *Vec2 // nil unless OBDC present
	Params       map[int]float64
}

// NewRecord returns an empty Record with the surface index unset.
func NewRecord() Record {
	return Record{Index: -1, Params: make(map[int]float64)}
}

// parseRecord interprets the text block starting at a SURF line and
// stops before the next one. Malformed numeric fields are left at their
// zero values; structural validation happens in the surface factory.
func parseRecord(lines []string) Record {
	rec := NewRecord()
	started := false

	for _, line := range lines {
		columns := strings.Fields(line)
		if len(columns) < 2 {
			continue
		}

		cmd, value := columns[0], columns[1]

		switch cmd {
		case tagSurface:
			if started {
				return rec
			}
			if n, err := strconv.Atoi(value); err == nil {
				rec.Index = n
			}
			started = true

		case tagComment:
			rec.Name = value

		case tagType:
			rec.Type = value

		case tagCurvature:
			rec.Curvature = parseFloat(value)

		case tagThickness:
			// strconv accepts the literal INFINITY used by Zemax
			// for unbounded surfaces.
			rec.Thickness = parseFloat(value)

		case tagGlass:
			rec.Glass = value

		case tagSemiDiameter:
			rec.SemiDiameter = parseFloat(value)

		case tagAperture:
			if len(columns) >= 3 {
				rec.Aperture = &Vec2{X: parseFloat(columns[1]), Y: parseFloat(columns[2])}
			}

		case tagDecenter:
			if len(columns) >= 3 {
				rec.Decenter = &Vec2{X: parseFloat(columns[1]), Y: parseFloat(columns[2])}
			}

		case tagParameter:
			if len(columns) >= 3 {
				if key, err := strconv.Atoi(columns[1]); err == nil {
					rec.Params[key] = parseFloat(columns[2])
				}
			}
		}
	}

	return rec
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
