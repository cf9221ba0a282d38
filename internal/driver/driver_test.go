package driver_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mxlib/internal/driver"
	"github.com/katalvlaran/mxlib/matrix"
)

func smallJobs() []driver.Job {
	return []driver.Job{
		{Name: "one+two", Op: driver.OpAdd, Rows: 4, Cols: 5, LHS: 11, RHS: 2},
		{Name: "one-two", Op: driver.OpSub, Rows: 3, Cols: 3, LHS: 11, RHS: 2},
		{Name: "one*two", Op: driver.OpMul, Rows: 2, Inner: 3, Cols: 4, LHS: 2, RHS: 5},
	}
}

func TestParseOp(t *testing.T) {
	op, err := driver.ParseOp(" MUL ")
	require.NoError(t, err)
	require.Equal(t, driver.OpMul, op)

	_, err = driver.ParseOp("div")
	require.ErrorIs(t, err, driver.ErrUnknownOp)
}

func TestParseElement(t *testing.T) {
	e, err := driver.ParseElement("")
	require.NoError(t, err)
	require.Equal(t, driver.Float64, e)

	e, err = driver.ParseElement("Int32")
	require.NoError(t, err)
	require.Equal(t, driver.Int32, e)

	_, err = driver.ParseElement("complex128")
	require.ErrorIs(t, err, driver.ErrUnknownElement)
}

// TestRunResults checks shapes and checksums for every element type.
func TestRunResults(t *testing.T) {
	for _, elem := range []driver.Element{driver.Float64, driver.Float32, driver.Int64, driver.Int32, driver.Int} {
		t.Run(string(elem), func(t *testing.T) {
			r := &driver.Runner{Workers: 2, Element: elem}
			rep, err := r.Run(context.Background(), smallJobs())
			require.NoError(t, err)
			require.Len(t, rep.Results, 3)
			require.NotEqual(t, uuid.Nil, rep.RunID)
			require.Equal(t, elem, rep.Element)
			require.Equal(t, 2, rep.Workers)

			add, sub, mul := rep.Results[0], rep.Results[1], rep.Results[2]
			require.True(t, add.OK())
			require.Equal(t, "one+two", add.Job)
			require.Equal(t, [2]int{4, 5}, [2]int{add.Rows, add.Cols})
			require.Equal(t, float64(4*5*13), add.Checksum)

			require.Equal(t, [2]int{3, 3}, [2]int{sub.Rows, sub.Cols})
			require.Equal(t, float64(9*9), sub.Checksum)

			// each cell is 3 * (2*5)
			require.Equal(t, [2]int{2, 4}, [2]int{mul.Rows, mul.Cols})
			require.Equal(t, float64(8*30), mul.Checksum)
		})
	}
}

// TestRunTruncatesFills checks that fills are converted to integer elements.
func TestRunTruncatesFills(t *testing.T) {
	r := &driver.Runner{Workers: 1, Element: driver.Int}
	rep, err := r.Run(context.Background(), []driver.Job{
		{Name: "trunc", Op: driver.OpAdd, Rows: 1, Cols: 2, LHS: 1.9, RHS: 1.9},
	})
	require.NoError(t, err)
	require.Equal(t, float64(4), rep.Results[0].Checksum)
}

// TestRunJobFailure checks that one bad job is reported without stopping the rest.
func TestRunJobFailure(t *testing.T) {
	jobs := append(smallJobs(),
		driver.Job{Name: "empty", Op: driver.OpAdd, Rows: 0, Cols: 3},
		driver.Job{Name: "bogus", Op: driver.Op("pow"), Rows: 1, Cols: 1},
	)
	r := &driver.Runner{Workers: 3}
	rep, err := r.Run(context.Background(), jobs)
	require.Error(t, err)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.ErrorIs(t, err, driver.ErrUnknownOp)
	require.Contains(t, err.Error(), "job empty")

	require.Len(t, rep.Results, 5)
	for _, res := range rep.Results[:3] {
		require.True(t, res.OK(), res.Job)
	}
	require.False(t, rep.Results[3].OK())
	require.False(t, rep.Results[4].OK())
}

// TestRunCancelled checks that a cancelled context skips every job.
func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &driver.Runner{Workers: 1}
	rep, err := r.Run(ctx, smallJobs())
	require.ErrorIs(t, err, context.Canceled)
	for _, res := range rep.Results {
		require.False(t, res.OK())
		require.Equal(t, 0, res.Rows)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := (&driver.Runner{}).Run(context.Background(), nil)
	require.ErrorIs(t, err, driver.ErrNoJobs)

	_, err = (&driver.Runner{Element: "uint8"}).Run(context.Background(), smallJobs())
	require.ErrorIs(t, err, driver.ErrUnknownElement)
}

func TestReportWriteText(t *testing.T) {
	rep, err := (&driver.Runner{Workers: 1}).Run(context.Background(), smallJobs())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "run "+rep.RunID.String()))
	require.Contains(t, out, "JOB")
	require.Contains(t, out, "one*two")
	require.Contains(t, out, "2x4")
	require.Contains(t, out, "260")
}

func TestReportWriteYAML(t *testing.T) {
	rep, err := (&driver.Runner{Workers: 2, Element: driver.Int64}).Run(context.Background(), smallJobs())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteYAML(&buf))

	var decoded struct {
		RunID   string `yaml:"run_id"`
		Element string `yaml:"element"`
		Workers int    `yaml:"workers"`
		Results []struct {
			Job      string  `yaml:"job"`
			Op       string  `yaml:"op"`
			Rows     int     `yaml:"rows"`
			Cols     int     `yaml:"cols"`
			Checksum float64 `yaml:"checksum"`
			Error    string  `yaml:"error"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, rep.RunID.String(), decoded.RunID)
	require.Equal(t, "int64", decoded.Element)
	require.Equal(t, 2, decoded.Workers)
	require.Len(t, decoded.Results, 3)
	require.Equal(t, "mul", decoded.Results[2].Op)
	require.Equal(t, float64(240), decoded.Results[2].Checksum)
	require.Empty(t, decoded.Results[0].Error)
}

func TestSample(t *testing.T) {
	s, err := driver.Sample(driver.Int)
	require.NoError(t, err)
	require.Equal(t, "  3   3   3\n  3   3   3\n  3   3   3\n", s)

	_, err = driver.Sample("uint16")
	require.ErrorIs(t, err, driver.ErrUnknownElement)
}
