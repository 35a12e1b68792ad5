package inventory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Dates in the source file are written as MM-DD-YYYY.
const dateLayout = "01-02-2006"

// columns is the exact header set the source file must carry. The
// "montly_begin_inventory" spelling matches the upstream dataset.
var columns = []string{
	"key",
	"key_name",
	"current_month",
	"montly_begin_inventory",
	"last_inventory",
	"status_date",
	"current_status_inventory",
	"sales",
}

// ParseTable parses raw CSV bytes into a Table, preserving file order. The
// header must contain every expected column by exact name. Any cell that
// fails its type makes the whole load fail.
func ParseTable(data []byte) (Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, &DataFormatError{Reason: "missing header row"}
	}
	if err != nil {
		return Table{}, &DataFormatError{Reason: err.Error()}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return Table{}, &DataFormatError{Reason: fmt.Sprintf("missing column %q", name)}
		}
	}

	var table Table
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return Table{}, &DataFormatError{Reason: fmt.Sprintf("row %d: %v", row, err)}
		}

		record, err := parseRecord(fields, index, row)
		if err != nil {
			return Table{}, err
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

func parseRecord(fields []string, index map[string]int, row int) (Record, error) {
	get := func(column string) string {
		return strings.TrimSpace(fields[index[column]])
	}

	record := Record{
		Key:     get("key"),
		KeyName: get("key_name"),
	}

	month, err := strconv.Atoi(get("current_month"))
	if err != nil {
		return Record{}, &ParseError{Row: row, Column: "current_month", Err: err}
	}
	record.CurrentMonth = month

	date, err := time.Parse(dateLayout, get("status_date"))
	if err != nil {
		return Record{}, &ParseError{Row: row, Column: "status_date", Err: err}
	}
	record.StatusDate = date

	numeric := []struct {
		column string
		target *float64
	}{
		{"montly_begin_inventory", &record.BeginInventory},
		{"last_inventory", &record.LastInventory},
		{"current_status_inventory", &record.CurrentInventory},
		{"sales", &record.Sales},
	}
	for _, col := range numeric {
		value, err := strconv.ParseFloat(get(col.column), 64)
		if err != nil {
			return Record{}, &ParseError{Row: row, Column: col.column, Err: err}
		}
		*col.target = value
	}

	return record, nil
}
