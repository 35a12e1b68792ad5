package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `key,key_name,current_month,montly_begin_inventory,last_inventory,status_date,current_status_inventory,sales
y1sp001,Yoga Mat Pro,11,100,94,11-01-2025,94,600
y1sp001,Yoga Mat Pro,11,100,88,11-02-2025,88,550
y1sp001,Yoga Mat Pro,11,100,83,11-03-2025,83,500
y1sp001,Yoga Mat Pro,11,100,78,11-04-2025,78,550
y1sp002,Resistance Band,11,130,120,11-01-2025,120,300
y1sp002,Resistance Band,11,130,110,11-02-2025,110,200
y1sp002,Resistance Band,11,130,105,11-03-2025,105,250
y1sp002,Resistance Band,11,130,98,11-04-2025,98,150
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(sampleCSV))
	require.NoError(t, err)
	require.Len(t, table.Records, 8)

	first := table.Records[0]
	assert.Equal(t, "y1sp001", first.Key)
	assert.Equal(t, "Yoga Mat Pro", first.KeyName)
	assert.Equal(t, 11, first.CurrentMonth)
	assert.Equal(t, 100.0, first.BeginInventory)
	assert.Equal(t, 94.0, first.LastInventory)
	assert.Equal(t, 94.0, first.CurrentInventory)
	assert.Equal(t, 600.0, first.Sales)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), first.StatusDate)

	// File order is preserved.
	assert.Equal(t, "y1sp002", table.Records[4].Key)
	assert.Equal(t, 98.0, table.Records[7].CurrentInventory)
}

func TestParseTableEmptyInput(t *testing.T) {
	_, err := ParseTable(nil)

	var formatErr *DataFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reason, "missing header")
}

func TestParseTableMissingColumn(t *testing.T) {
	csv := "key,key_name,current_month,montly_begin_inventory,last_inventory,current_status_inventory,sales\n" +
		"y1sp001,Yoga Mat Pro,11,100,94,94,600\n"

	_, err := ParseTable([]byte(csv))

	var formatErr *DataFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reason, `missing column "status_date"`)
}

func TestParseTableInvalidDate(t *testing.T) {
	csv := "key,key_name,current_month,montly_begin_inventory,last_inventory,status_date,current_status_inventory,sales\n" +
		"y1sp001,Yoga Mat Pro,11,100,94,13-40-2025,94,600\n"

	_, err := ParseTable([]byte(csv))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Row)
	assert.Equal(t, "status_date", parseErr.Column)
}

func TestParseTableNonNumericCell(t *testing.T) {
	csv := "key,key_name,current_month,montly_begin_inventory,last_inventory,status_date,current_status_inventory,sales\n" +
		"y1sp001,Yoga Mat Pro,11,100,94,11-01-2025,94,lots\n"

	_, err := ParseTable([]byte(csv))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "sales", parseErr.Column)
}

func TestParseTableHeaderOnly(t *testing.T) {
	csv := "key,key_name,current_month,montly_begin_inventory,last_inventory,status_date,current_status_inventory,sales\n"

	table, err := ParseTable([]byte(csv))
	require.NoError(t, err)
	assert.Empty(t, table.Records)
}
