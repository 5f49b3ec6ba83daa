// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/nodegraph/analysis"
)

// PathsHeader is the header row of the path table.
var PathsHeader = []string{"SourceNodeID", "TargetNodeID", "PathLength", "Path"}

// WritePathsCSV writes rows as `source;target;distance;path`. Distances use
// two decimals; rows without a path carry -1.00 and NoPathText.
func WritePathsCSV(w io.Writer, rows []analysis.PathRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(PathsHeader); err != nil {
		return err
	}
	rec := make([]string, 4)
	for _, r := range rows {
		rec[0] = strconv.Itoa(r.Source)
		rec[1] = strconv.Itoa(r.Target)
		rec[2] = FormatDistance(r.Distance)
		if len(r.IDs) == 0 {
			rec[3] = NoPathText
		} else {
			rec[3] = FormatPath(r.IDs, CSVArrow)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WritePathsCSVFile writes the path table to path, truncating it.
func WritePathsCSVFile(path string, rows []analysis.PathRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResource, err)
	}
	if err = WritePathsCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrResource, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrResource, err)
	}

	return nil
}
