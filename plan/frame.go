package plan

import (
	"fmt"
	"io"

	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/config/newqf"
	"gonum.org/v1/gonum/stat"
)

// Run draws Samples values from every stream and returns them as a frame
// with one float column per stream, in plan order.
func (p *Plan) Run() qframe.QFrame {
	p.check()

	columns := make(map[string]interface{}, len(p.Streams))
	order := make([]string, 0, len(p.Streams))
	for _, s := range p.Streams {
		values := make([]float64, p.Samples)
		for i := range values {
			values[i] = s.dist.Rand()
		}
		columns[s.Name] = values
		order = append(order, s.Name)
	}
	return qframe.New(columns, newqf.ColumnOrder(order...))
}

// WriteCSV writes the frame as comma-separated values with a header row.
func WriteCSV(w io.Writer, frame qframe.QFrame) error {
	if frame.Err != nil {
		return fmt.Errorf("frame: %w", frame.Err)
	}
	return frame.ToCSV(w)
}

// Summary holds basic statistics of one sampled column.
type Summary struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes a Summary for every column of the frame.
func Summarize(frame qframe.QFrame) ([]Summary, error) {
	if frame.Err != nil {
		return nil, fmt.Errorf("frame: %w", frame.Err)
	}
	summaries := make([]Summary, 0, len(frame.ColumnNames()))
	for _, name := range frame.ColumnNames() {
		view, err := frame.FloatView(name)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		values := view.Slice()
		s := Summary{Name: name, Count: len(values)}
		if len(values) > 0 {
			s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
			s.Min, s.Max = values[0], values[0]
			for _, v := range values[1:] {
				s.Min = min(s.Min, v)
				s.Max = max(s.Max, v)
			}
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
