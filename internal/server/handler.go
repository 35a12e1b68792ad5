package server

import (
	"inventory_agent/internal/blob"
	"inventory_agent/internal/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const noDataMessage = "No data found for given filters"

type statsResponse struct {
	Items   []inventory.Summary `json:"items"`
	Message string              `json:"message,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	source blob.Fetcher
	logger *zap.Logger
}

func NewHandler(source blob.Fetcher, logger *zap.Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger.Named("handler"),
	}
}

// InventoryStats handles GET /api/inventory_stats. The optional key query
// parameter restricts the result to a single SKU; a miss is a normal empty
// success, while any fetch or parse failure fails the whole request.
func (h *Handler) InventoryStats(c *fiber.Ctx) error {
	key := c.Query("key")

	data, err := h.source.Fetch(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	table, err := inventory.ParseTable(data)
	if err != nil {
		return h.fail(c, err)
	}

	items := inventory.Aggregate(table, key)
	h.logger.Info("inventory stats computed",
		zap.String("key", key),
		zap.Int("rows", len(table.Records)),
		zap.Int("items", len(items)),
	)

	if len(items) == 0 {
		return c.JSON(statsResponse{Items: items, Message: noDataMessage})
	}
	return c.JSON(statsResponse{Items: items})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	h.logger.Error("inventory stats request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: err.Error()})
}
