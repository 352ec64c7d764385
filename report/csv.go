package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fitfusion/fusion/internal/osutil"
	"github.com/fitfusion/fusion/internal/workout"
)

// FileName is the name under which reports are saved or downloaded.
const FileName = "fitness_report.csv"

// Header is the first line of every report.
const Header = "Date,Exercise,Duration (seconds),Calories Burned"

const columns = 4

// ExportCSV serializes the collection in input order, one newline-terminated
// line per record. Fields are written verbatim without quoting.
func ExportCSV(c workout.Collection) (string, error) {
	if len(c) == 0 {
		return "", ErrEmptyCollection
	}

	var b strings.Builder

	b.WriteString(Header)
	b.WriteByte('\n')

	for _, rec := range c {
		fmt.Fprintf(&b, "%s,%s,%d,%d\n", rec.Date, rec.Exercise, rec.Duration, rec.Calories)
	}

	return b.String(), nil
}

// WriteFile saves an exported report into dir and returns its path.
func WriteFile(dir, content string) (string, error) {
	err := os.MkdirAll(dir, osutil.DirPermission)
	if err != nil {
		return "", ErrWriteReport.Wrap(err)
	}

	path := filepath.Join(dir, FileName)

	err = os.WriteFile(path, []byte(content), osutil.FilePermission)
	if err != nil {
		return "", ErrWriteReport.Wrap(err)
	}

	return path, nil
}

// ParseCSV reads a report produced by ExportCSV back into a collection.
func ParseCSV(r io.Reader) (workout.Collection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columns

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMalformedReport.Fmt(1, "missing header")
		}

		return nil, ErrMalformedReport.Fmt(1, err)
	}

	if strings.Join(header, ",") != Header {
		return nil, ErrMalformedReport.Fmt(1, "unexpected header")
	}

	var c workout.Collection

	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, ErrMalformedReport.Fmt(line, err)
		}

		duration, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, ErrMalformedReport.Fmt(line, err)
		}

		calories, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, ErrMalformedReport.Fmt(line, err)
		}

		c = append(c, workout.Record{
			Date:     row[0],
			Exercise: row[1],
			Duration: duration,
			Calories: calories,
		})
	}

	return c, nil
}
