package surface

import (
	"fmt"

	"github.com/akimov/optiscene/pkg/zmx"
)

// Type tags dispatched by the factory.
const (
	TypeStandard        = "STANDARD"
	TypeCoordinateBreak = "COORDBRK"
	TypeToroidal        = "TOROIDAL"
	TypeBiconicX        = "BICONICX"
	TypeTilted          = "TILTSURF"
)

// UnsupportedSurfaceTypeError reports a record whose type tag has no
// registered constructor.
type UnsupportedSurfaceTypeError struct {
	Type  string
	Index int
}

func (e *UnsupportedSurfaceTypeError) Error() string {
	return fmt.Sprintf("surface %d: type %q is not implemented", e.Index, e.Type)
}

// MalformedRecordError reports a record missing fields its surface
// type requires.
type MalformedRecordError struct {
	Index  int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("surface %d: %s", e.Index, e.Reason)
}

// constructors dispatches a record's type tag to a variant constructor.
// BICONICX shares the Toroidal constructor: a biconic surface without
// conic constants is a toroid.
var constructors = map[string]func(zmx.Record, float64) (Surface, error){
	TypeStandard:        newStandard,
	TypeCoordinateBreak: newCoordinateBreak,
	TypeToroidal:        newToroidal,
	TypeBiconicX:        newToroidal,
	TypeTilted:          newTilted,
}

// FromRecord converts one parsed record into a typed Surface,
// applying unitFactor to every length-valued field. Angular fields
// pass through unconverted.
func FromRecord(rec zmx.Record, unitFactor float64) (Surface, error) {
	create, ok := constructors[rec.Type]
	if !ok {
		return nil, &UnsupportedSurfaceTypeError{Type: rec.Type, Index: rec.Index}
	}
	return create(rec, unitFactor)
}

// FromPrescription converts every record of a prescription in order.
func FromPrescription(p *zmx.Prescription) ([]Surface, error) {
	surfaces := make([]Surface, 0, len(p.Records))
	for _, rec := range p.Records {
		s, err := FromRecord(rec, p.UnitFactor)
		if err != nil {
			return nil, err
		}
		surfaces = append(surfaces, s)
	}
	return surfaces, nil
}

// newCommon builds the fields shared by all variants. The record's
// curvature (a reciprocal radius) is inverted here; zero stays zero.
func newCommon(rec zmx.Record, f float64) Common {
	c := Common{
		Name:         rec.Name,
		Thickness:    rec.Thickness * f,
		Material:     rec.Glass,
		SemiDiameter: rec.SemiDiameter * f,
	}

	if rec.Curvature != 0 {
		c.Radius = 1 / rec.Curvature * f
	}
	if rec.Aperture != nil {
		c.Aperture = &Aperture{HalfWidth: rec.Aperture.X * f, HalfHeight: rec.Aperture.Y * f}
	}
	if rec.Decenter != nil {
		c.Decenter = &Decenter{X: rec.Decenter.X * f, Y: rec.Decenter.Y * f}
	}

	return c
}

func newStandard(rec zmx.Record, f float64) (Surface, error) {
	return Standard{Common: newCommon(rec, f)}, nil
}

func newToroidal(rec zmx.Record, f float64) (Surface, error) {
	if len(rec.Params) < 1 {
		return nil, &MalformedRecordError{
			Index:  rec.Index,
			Reason: "toroidal surface needs at least 1 parameter (second radius)",
		}
	}
	return Toroidal{
		Common:           newCommon(rec, f),
		RadiusHorizontal: rec.Params[1] * f,
	}, nil
}

func newTilted(rec zmx.Record, f float64) (Surface, error) {
	if len(rec.Params) < 2 {
		return nil, &MalformedRecordError{
			Index:  rec.Index,
			Reason: "tilted surface needs 2 parameters (tilt tangents)",
		}
	}
	return Tilted{
		Common: newCommon(rec, f),
		TanX:   rec.Params[1],
		TanY:   rec.Params[2],
	}, nil
}

func newCoordinateBreak(rec zmx.Record, f float64) (Surface, error) {
	if len(rec.Params) < 5 {
		return nil, &MalformedRecordError{
			Index:  rec.Index,
			Reason: "coordinate break needs 5 parameters (decenter x/y, tilt x/y/z)",
		}
	}
	return CoordinateBreak{
		Common:    Common{Name: rec.Name, Thickness: rec.Thickness * f},
		DecenterX: rec.Params[1] * f,
		DecenterY: rec.Params[2] * f,
		TiltX:     rec.Params[3],
		TiltY:     rec.Params[4],
		TiltZ:     rec.Params[5],
	}, nil
}
