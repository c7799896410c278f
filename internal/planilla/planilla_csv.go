package planilla

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"Employee", "ContractType", "WorkedHours", "TheoreticalHours", "Balance"}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCSV writes one line per report row after the header.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range r.Rows {
		record := []string{
			row.Name,
			string(row.ContractType),
			formatHours(row.WorkedHours),
			formatHours(row.TheoreticalHours),
			formatHours(row.Balance),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func CSV(r Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
