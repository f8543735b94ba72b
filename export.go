package orbit3d

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soniakeys/meeus/v3/julian"
)

// AU is one astronomical unit in kilometers.
const AU = 1.49597870700e8

const (
	dateFormat = "2006-01-02 15:04:05"
	csvHeader  = "jed,x,y,z"
)

// CgCatalog definition.
type CgCatalog struct {
	Version string     `json:"version"`
	Name    string     `json:"name"`
	Items   []*CgItems `json:"items"`
	Require []string   `json:"require,omitempty"`
}

func (c *CgCatalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// CgItems definition.
type CgItems struct {
	Class           string            `json:"class"`
	Name            string            `json:"name"`
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime"`
	Center          string            `json:"center"`
	TrajectoryFrame string            `json:"trajectoryFrame"`
	Trajectory      *CgTrajectory     `json:"trajectory,omitempty"`
	Label           *CgLabel          `json:"label,omitempty"`
	TrajectoryPlot  *CgTrajectoryPlot `json:"trajectoryPlot,omitempty"`
}

// CgTrajectory definition.
type CgTrajectory struct {
	Type   string `json:"type,omitempty"`
	Source string `json:"source,omitempty"`
}

// CgLabel definition.
type CgLabel struct {
	Color    []float64 `json:"color,omitempty"`
	FadeSize int       `json:"fadeSize,omitempty"`
	ShowText bool      `json:"showText,omitempty"`
}

// CgTrajectoryPlot definition.
type CgTrajectoryPlot struct {
	Color       []float64 `json:"color,omitempty"`
	LineWidth   int       `json:"lineWidth,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Lead        string    `json:"lead,omitempty"`
	Fade        int       `json:"fade,omitempty"`
	SampleCount int       `json:"sampleCount,omitempty"`
}

// ColorComponents converts a 0xRRGGBB color to its [0;1] components.
func ColorComponents(color uint32) []float64 {
	return []float64{float64(color>>16&0xff) / 255, float64(color>>8&0xff) / 255, float64(color&0xff) / 255}
}

// NewCatalog returns the Cosmographia catalog plotting the provided path,
// whose states are stored in the file `source`.
func NewCatalog(path OrbitPath, source string, color uint32) CgCatalog {
	rgb := ColorComponents(color)
	item := &CgItems{
		Class:           "spacecraft",
		Name:            path.Name,
		StartTime:       julian.JDToTime(path.Start).UTC().Format(dateFormat),
		EndTime:         julian.JDToTime(path.End()).UTC().Format(dateFormat),
		Center:          "Sun",
		TrajectoryFrame: "EclipticJ2000",
		Trajectory:      &CgTrajectory{Type: "InterpolatedStates", Source: source},
		Label:           &CgLabel{Color: rgb, FadeSize: 1000000, ShowText: true},
		TrajectoryPlot:  &CgTrajectoryPlot{Color: rgb, LineWidth: 1, Duration: fmt.Sprintf("%d d", int(path.Span())), Lead: "0 d", SampleCount: path.Samples},
	}
	return CgCatalog{Version: "1.0", Name: path.Name, Items: []*CgItems{item}}
}

// WriteCatalog writes the catalog as JSON.
func WriteCatalog(w io.Writer, c CgCatalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// WriteInterpolatedStates writes the positions of the path as a Cosmographia
// .xyz file. The scale converts scene units back to AU, positions are written in km.
func WriteInterpolatedStates(w io.Writer, path OrbitPath, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("invalid scale %f", scale)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `# %s
# Records are <jd> <x> <y> <z>
#   Time is a TDB Julian date
#   Position in km
#   Start (UTC): %s
`, path.Name, julian.JDToTime(path.Start).UTC().Format(dateFormat))
	for k, pos := range path.Positions {
		f := AU / scale
		fmt.Fprintf(&b, "%f %f %f %f\n", path.JEDs[k], pos.X*f, pos.Y*f, pos.Z*f)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCSV writes the path as CSV records of jed,x,y,z in scene units.
func WriteCSV(w io.Writer, path OrbitPath) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(csvHeader, ",")); err != nil {
		return err
	}
	for k, pos := range path.Positions {
		record := []string{
			strconv.FormatFloat(path.JEDs[k], 'f', 6, 64),
			strconv.FormatFloat(pos.X, 'g', -1, 64),
			strconv.FormatFloat(pos.Y, 'g', -1, 64),
			strconv.FormatFloat(pos.Z, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a path written by WriteCSV. Only the positions and time tags are restored.
func ReadCSV(r io.Reader) (OrbitPath, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	records, err := cr.ReadAll()
	if err != nil {
		return OrbitPath{}, err
	}
	if len(records) == 0 {
		return OrbitPath{}, fmt.Errorf("empty path")
	}
	if hdr := strings.Join(records[0], ","); hdr != csvHeader {
		return OrbitPath{}, fmt.Errorf("unexpected header %q, expected %q", hdr, csvHeader)
	}
	if len(records) == 1 {
		return OrbitPath{}, fmt.Errorf("no positions in path")
	}
	var path OrbitPath
	for lno, record := range records[1:] {
		var vals [4]float64
		for k, field := range record {
			if vals[k], err = strconv.ParseFloat(field, 64); err != nil {
				return OrbitPath{}, fmt.Errorf("line %d: %w", lno+2, err)
			}
		}
		path.JEDs = append(path.JEDs, vals[0])
		path.Positions = append(path.Positions, Position{vals[1], vals[2], vals[3]})
	}
	n := len(path.JEDs)
	path.Start = path.JEDs[0]
	path.Samples = n - 1
	if n > 1 {
		path.Step = path.JEDs[1] - path.JEDs[0]
	}
	return path, nil
}
