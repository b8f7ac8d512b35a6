package zmx

import (
	"fmt"
	"math"
	"strings"
)

// FieldType distinguishes how field points are specified.
type FieldType int

const (
	FieldAngle  FieldType = 0 // angle in degrees
	FieldHeight FieldType = 1 // object height, converted to meters
)

// Field is one field point with its vignetting factors.
type Field struct {
	Type   FieldType
	X, Y   float64
	Weight float64
	VDX    float64 // vignetting decenter x
	VDY    float64 // vignetting decenter y
	VCX    float64 // vignetting compression x
	VCY    float64 // vignetting compression y
	VAN    float64 // vignetting angle, radians
}

// Transform maps normalized pupil coordinates through this field's
// vignetting factors: decenter, compression, then rotation.
func (f Field) Transform(px, py float64) (float64, float64) {
	dx := f.VDX + px*(1-f.VCX)
	dy := f.VDY + py*(1-f.VCY)

	sin, cos := math.Sincos(f.VAN)
	return dx*cos - dy*sin, dx*sin + dy*cos
}

// Fields is the prescription's field-point table.
type Fields struct {
	Type   FieldType
	Points []Field
}

// fieldTags maps field table line tags to per-point setters.
var fieldTags = map[string]func(*Field, float64){
	"XFLN": func(f *Field, v float64) { f.X = v },
	"YFLN": func(f *Field, v float64) { f.Y = v },
	"FWGN": func(f *Field, v float64) { f.Weight = v },
	"VDXN": func(f *Field, v float64) { f.VDX = v },
	"VDYN": func(f *Field, v float64) { f.VDY = v },
	"VCXN": func(f *Field, v float64) { f.VCX = v },
	"VCYN": func(f *Field, v float64) { f.VCY = v },
	"VANN": func(f *Field, v float64) { f.VAN = v },
}

// readFields parses the field table starting at the FTYP line. Field
// positions are unit-converted only when the field type is an object
// height; angles pass through. The table ends at the VANN line.
func readFields(lines []string, unitFactor float64) (Fields, error) {
	columns := strings.Fields(lines[0])
	if len(columns) < 4 || columns[0] != "FTYP" {
		return Fields{}, fmt.Errorf("field table must start with FTYP")
	}

	ftype := FieldType(parseFloat(columns[1]))
	if ftype != FieldAngle && ftype != FieldHeight {
		return Fields{}, fmt.Errorf("unsupported field type %d", ftype)
	}
	count := int(parseFloat(columns[3]))

	fields := Fields{Type: ftype, Points: make([]Field, count)}
	for i := range fields.Points {
		fields.Points[i] = Field{Type: ftype, Weight: 1}
	}

	for _, line := range lines[1:] {
		columns := strings.Fields(line)
		if len(columns) == 0 {
			continue
		}

		set, ok := fieldTags[columns[0]]
		if !ok {
			continue
		}

		convert := ftype == FieldHeight && (columns[0] == "XFLN" || columns[0] == "YFLN")
		for i := 0; i < count && i+1 < len(columns); i++ {
			v := parseFloat(columns[i+1])
			if convert {
				v *= unitFactor
			}
			set(&fields.Points[i], v)
		}

		if columns[0] == "VANN" {
			break
		}
	}

	return fields, nil
}
