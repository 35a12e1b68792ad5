package inventory

import "sort"

const lowInventoryThreshold = 100

// Aggregate computes one Summary per distinct key in the table, optionally
// restricted to records whose key equals filter (exact, case-sensitive). A
// filter that matches nothing yields an empty slice, not an error. Groups
// appear in the order each key is first seen in the table.
func Aggregate(table Table, filter string) []Summary {
	groups := make(map[string][]Record)
	var order []string

	for _, record := range table.Records {
		if filter != "" && record.Key != filter {
			continue
		}
		if _, ok := groups[record.Key]; !ok {
			order = append(order, record.Key)
		}
		groups[record.Key] = append(groups[record.Key], record)
	}

	summaries := make([]Summary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, summarize(key, groups[key]))
	}
	return summaries
}

func summarize(key string, records []Record) Summary {
	// Stable keeps the original row order for records sharing a date, and
	// decides which record is "first" for the display fields.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StatusDate.Before(records[j].StatusDate)
	})

	first := records[0]
	summary := Summary{
		Key:          key,
		KeyName:      first.KeyName,
		CurrentMonth: first.CurrentMonth,
		MinInventory: first.CurrentInventory,
		MaxInventory: first.CurrentInventory,
		TimeSeries:   make([]TimePoint, 0, len(records)),
	}

	for _, record := range records {
		summary.TotalSales += record.Sales
		if record.CurrentInventory < summary.MinInventory {
			summary.MinInventory = record.CurrentInventory
		}
		if record.CurrentInventory > summary.MaxInventory {
			summary.MaxInventory = record.CurrentInventory
		}
		if record.CurrentInventory < lowInventoryThreshold {
			summary.DaysBelow100++
		}
		summary.TimeSeries = append(summary.TimeSeries, TimePoint{
			StatusDate:       record.StatusDate.Format("2006-01-02"),
			CurrentInventory: record.CurrentInventory,
			Sales:            record.Sales,
		})
	}

	summary.AvgDailySales = summary.TotalSales / float64(len(records))
	return summary
}
