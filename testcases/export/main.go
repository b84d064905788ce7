// Command export writes the test cases, together with the samples computed
// for them, to JSON for use by external tools.
// Run from the dda module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/dda"
	"seehuhn.de/go/dda/testcases"
)

func main() {
	var out struct {
		PointSize int            `json:"point_size"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.PointSize = dda.PointSize()

	r := dda.NewRasteriser()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(r, category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string      `json:"name"`
	Start    [2]int      `json:"start"`
	End      [2]int      `json:"end"`
	Slope    float32     `json:"slope"`
	Vertical bool        `json:"vertical,omitempty"`
	Error    string      `json:"error,omitempty"`
	Points   [][]float32 `json:"points,omitempty"`
}

func toJSON(r *dda.Rasteriser, category string, tc testcases.TestCase) jsonTestCase {
	slope := dda.Slope(tc.X1, tc.Y1, tc.X2, tc.Y2)
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Start:    [2]int{tc.X1, tc.Y1},
		End:      [2]int{tc.X2, tc.Y2},
		Slope:    slope,
		Vertical: dda.IsVertical(slope),
	}

	pts, err := r.Line(tc.X1, tc.Y1, tc.X2, tc.Y2)
	if err != nil {
		jtc.Error = err.Error()
		return jtc
	}
	jtc.Points = make([][]float32, len(pts))
	for i, p := range pts {
		jtc.Points[i] = []float32{p.X, p.Y}
	}
	return jtc
}
