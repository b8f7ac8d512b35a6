package zmx

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// MillimeterFactor converts millimeter lengths to meters. It becomes
// the prescription's unit factor when the header declares "UNIT MM".
const MillimeterFactor = 1.0e-3

// Wavelength is one entry of the prescription's wavelength table.
type Wavelength struct {
	N      int
	Value  float64 // nanometers
	Weight float64
}

// Prescription is the parsed contents of a .zmx file: the raw surface
// records in file order plus the header tables. Records still carry
// file units; UnitFactor is the scale to meters that the surface
// factory applies.
type Prescription struct {
	UnitFactor  float64
	Records     []Record
	Wavelengths []Wavelength
	Fields      Fields
}

// ReadFile reads and parses a prescription file.
func ReadFile(path string) (*Prescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("zmx: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("zmx: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and parses raw prescription file contents. The encoding
// is probed from a two-entry whitelist: UTF-8, then UTF-16 (OpticsStudio
// exports are usually UTF-16 with a byte-order mark).
func Parse(data []byte) (*Prescription, error) {
	decoded, err := decodeContents(data)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(decoded), "\n")

	p := &Prescription{UnitFactor: 1.0}

	for i, line := range lines {
		columns := strings.Fields(line)
		if len(columns) == 0 {
			continue
		}

		cmd := columns[0]

		switch {
		case cmd == "UNIT" && len(columns) > 1 && columns[1] == "MM":
			p.UnitFactor = MillimeterFactor

		case cmd == "WAVM" && len(p.Wavelengths) == 0:
			p.Wavelengths = readWavelengths(lines[i:])

		case cmd == "FTYP":
			fields, err := readFields(lines[i:], p.UnitFactor)
			if err != nil {
				slog.Warn("skipping malformed field table", "err", err)
				continue
			}
			p.Fields = fields

		case cmd == tagSurface:
			p.Records = append(p.Records, parseRecord(lines[i:]))
		}
	}

	if len(p.Records) == 0 {
		return nil, fmt.Errorf("no surfaces found in prescription")
	}

	return p, nil
}

// decodeContents probes the candidate encodings and returns UTF-8 text.
// UTF-16LE-encoded ASCII is valid UTF-8 byte-wise (NUL bytes), so the
// UTF-8 probe also rejects contents containing NUL.
func decodeContents(data []byte) ([]byte, error) {
	if utf8.Valid(data) && !bytes.ContainsRune(data, 0) {
		return data, nil
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := dec.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("cannot determine file encoding: %w", err)
	}
	return decoded, nil
}

// readWavelengths parses the contiguous run of WAVM lines starting at
// lines[0]. Values are converted from micrometers to nanometers and
// deduplicated by value: Zemax pads the table by repeating the last
// entry up to its fixed table size.
func readWavelengths(lines []string) []Wavelength {
	var table []Wavelength

	for _, line := range lines {
		columns := strings.Fields(line)
		if len(columns) < 4 || columns[0] != "WAVM" {
			return table
		}

		w := Wavelength{
			N:      int(parseFloat(columns[1])),
			Value:  parseFloat(columns[2]) * 1.0e3,
			Weight: parseFloat(columns[3]),
		}

		duplicate := false
		for _, seen := range table {
			if seen.Value == w.Value {
				duplicate = true
				break
			}
		}
		if !duplicate {
			table = append(table, w)
		}
	}

	return table
}
