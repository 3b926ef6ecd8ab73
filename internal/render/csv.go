// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"rdsq/cli/internal/dataapi"
)

// writeCSV renders a header line of column names followed by one line per
// row. Write statements carry no column metadata; for those (or whenever
// rows were updated) the affected-row count is reported first.
func writeCSV(w io.Writer, res *dataapi.Result) error {
	if res.RecordsUpdated > 0 || res.Columns == nil {
		if _, err := fmt.Fprintf(w, "number_of_records_updated: %d\n", res.RecordsUpdated); err != nil {
			return err
		}
	}
	if res.Columns == nil {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(res.Columns); err != nil {
		return err
	}
	record := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = stringify(row[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
