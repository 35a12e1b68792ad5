package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T) Table {
	t.Helper()
	table, err := ParseTable([]byte(sampleCSV))
	require.NoError(t, err)
	return table
}

func TestAggregateFilteredKey(t *testing.T) {
	summaries := Aggregate(mustTable(t), "y1sp001")

	require.Len(t, summaries, 1)
	summary := summaries[0]
	assert.Equal(t, "y1sp001", summary.Key)
	assert.Equal(t, "Yoga Mat Pro", summary.KeyName)
	assert.Equal(t, 11, summary.CurrentMonth)
	assert.Equal(t, 2200.0, summary.TotalSales)
	assert.Equal(t, 550.0, summary.AvgDailySales)
	assert.Equal(t, 78.0, summary.MinInventory)
	assert.Equal(t, 94.0, summary.MaxInventory)
	assert.Equal(t, 4, summary.DaysBelow100)
	require.Len(t, summary.TimeSeries, 4)
	assert.Equal(t, TimePoint{StatusDate: "2025-11-01", CurrentInventory: 94, Sales: 600}, summary.TimeSeries[0])
	assert.Equal(t, TimePoint{StatusDate: "2025-11-04", CurrentInventory: 78, Sales: 550}, summary.TimeSeries[3])
}

func TestAggregateAllKeysFirstAppearanceOrder(t *testing.T) {
	summaries := Aggregate(mustTable(t), "")

	require.Len(t, summaries, 2)
	assert.Equal(t, "y1sp001", summaries[0].Key)
	assert.Equal(t, "y1sp002", summaries[1].Key)
	assert.Equal(t, 900.0, summaries[1].TotalSales)
	assert.Equal(t, 1, summaries[1].DaysBelow100)
}

func TestAggregateFilterMissYieldsEmpty(t *testing.T) {
	summaries := Aggregate(mustTable(t), "nonexistent")

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestAggregateFilterIsCaseSensitive(t *testing.T) {
	summaries := Aggregate(mustTable(t), "Y1SP001")
	assert.Empty(t, summaries)
}

func TestAggregateFilterCommutesWithPreFiltering(t *testing.T) {
	table := mustTable(t)

	filtered := Aggregate(table, "y1sp002")

	var subtable Table
	for _, record := range table.Records {
		if record.Key == "y1sp002" {
			subtable.Records = append(subtable.Records, record)
		}
	}
	prefiltered := Aggregate(subtable, "")

	assert.Equal(t, prefiltered, filtered)
}

func TestAggregateTimeSeriesSortIsStable(t *testing.T) {
	date := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	table := Table{Records: []Record{
		{Key: "k1", KeyName: "first", StatusDate: date.AddDate(0, 0, 1), CurrentInventory: 50, Sales: 10},
		{Key: "k1", KeyName: "second", StatusDate: date, CurrentInventory: 60, Sales: 20},
		{Key: "k1", KeyName: "third", StatusDate: date, CurrentInventory: 70, Sales: 30},
	}}

	summaries := Aggregate(table, "")

	require.Len(t, summaries, 1)
	summary := summaries[0]
	// The two equal-date rows keep their original relative order and the
	// earliest record supplies the display fields.
	assert.Equal(t, "second", summary.KeyName)
	require.Len(t, summary.TimeSeries, 3)
	assert.Equal(t, 60.0, summary.TimeSeries[0].CurrentInventory)
	assert.Equal(t, 70.0, summary.TimeSeries[1].CurrentInventory)
	assert.Equal(t, 50.0, summary.TimeSeries[2].CurrentInventory)
}

func TestAggregateDaysBelow100Boundary(t *testing.T) {
	date := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	table := Table{Records: []Record{
		{Key: "k1", StatusDate: date, CurrentInventory: 100},
		{Key: "k1", StatusDate: date.AddDate(0, 0, 1), CurrentInventory: 99.99},
	}}

	summaries := Aggregate(table, "")

	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].DaysBelow100)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	table := mustTable(t)
	before := make([]Record, len(table.Records))
	copy(before, table.Records)

	first := Aggregate(table, "")
	second := Aggregate(table, "")

	assert.Equal(t, first, second)
	assert.Equal(t, before, table.Records)
}
