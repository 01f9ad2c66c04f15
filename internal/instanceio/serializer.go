package instanceio

import (
	"bufio"
	"encoding/xml"
	"io"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// assignedShiftName returns the name of the one shift assigned to employee
// y on day z, or "" if none is. A roster produced by a feasible (or
// near-feasible) search assigns at most one shift per employee per day;
// if more than one is set, the first found in axis order wins.
func assignedShiftName(s *state.State, axes *domain.Axes, y, z uint64) string {
	for x := uint64(0); x < s.SizeX(); x++ {
		if s.GetXYZ(x, y, z) {
			return axes.Shifts[x].Name
		}
	}
	return ""
}

// WriteTabbed writes one row per employee, tab-separating the assigned
// shift name (or nothing, for an empty tab) at each day of the horizon.
func WriteTabbed(w io.Writer, s *state.State, axes *domain.Axes) error {
	bw := bufio.NewWriter(w)
	for y := uint64(0); y < s.SizeY(); y++ {
		for z := uint64(0); z < s.SizeZ(); z++ {
			if z > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(assignedShiftName(s, axes, y, z)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// rosterXML / rowXML describe the <Roster>/<Employee>/<Day> nesting the
// XML output wraps the same tabbed content in.
type rosterXML struct {
	XMLName xml.Name  `xml:"Roster"`
	XSI     string    `xml:"xmlns:xsi,attr"`
	Rows    []rowXML  `xml:"Employee"`
}

type rowXML struct {
	Name string   `xml:"name,attr"`
	Days []dayXML `xml:"Day"`
}

type dayXML struct {
	Index uint64 `xml:"index,attr"`
	Shift string `xml:",chardata"`
}

// WriteXML writes the same roster as WriteTabbed, wrapped in a
// <Roster xmlns:xsi=...>...</Roster> document.
func WriteXML(w io.Writer, s *state.State, axes *domain.Axes) error {
	doc := rosterXML{XSI: "http://www.w3.org/2001/XMLSchema-instance"}
	for y := uint64(0); y < s.SizeY(); y++ {
		row := rowXML{Name: axes.Employees[y].Name}
		for z := uint64(0); z < s.SizeZ(); z++ {
			row.Days = append(row.Days, dayXML{Index: z, Shift: assignedShiftName(s, axes, y, z)})
		}
		doc.Rows = append(doc.Rows, row)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}
