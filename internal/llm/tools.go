package llm

import openrouter "github.com/revrost/go-openrouter"

// ToolNameGetInventoryKPIs is the single tool the agent can call.
const ToolNameGetInventoryKPIs = "get_inventory_kpis"

func ToolSchemas() []openrouter.Tool {
	return []openrouter.Tool{
		getInventoryKPIsTool(),
	}
}

func getInventoryKPIsTool() openrouter.Tool {
	return openrouter.Tool{
		Type: openrouter.ToolTypeFunction,
		Function: &openrouter.FunctionDefinition{
			Name: ToolNameGetInventoryKPIs,
			Description: "Get inventory KPIs and daily time series from the inventory analytics API. " +
				"Use this whenever the user asks about inventory levels, sales, trends, graphs, KPIs, or any analytics based on the inventory CSV. " +
				"Returns a JSON object with items, each carrying key, key_name, current_month, total_sales, avg_daily_sales, min_inventory, max_inventory, days_below_100, " +
				"and a time_series of {status_date, current_status_inventory, sales} points.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key": map[string]any{
						"type":        "string",
						"description": "Optional SKU key (e.g. \"y1sp001\") to filter the results. Omit to return KPIs and time series for all products.",
					},
				},
				"additionalProperties": false,
			},
		},
	}
}
