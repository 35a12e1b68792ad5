package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory_agent/internal/statsapi"

	"go.uber.org/zap"
)

type response struct {
	Query      string
	AnswerText string
	ToolCalls  []toolCallRecord
	NextStep   string
}

type toolCallRecord struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
	MS   int64          `json:"ms"`
	OK   bool           `json:"ok"`
	Err  string         `json:"err,omitempty"`
}

func trackCall[T any](logger *zap.Logger, name string, args map[string]any, fn func() (T, error)) (T, toolCallRecord, error) {
	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)
	record := toolCallRecord{
		Name: name,
		Args: args,
		MS:   elapsed.Milliseconds(),
		OK:   err == nil,
	}
	if err != nil {
		record.Err = err.Error()
	}
	logToolRecord(logger, record)
	return result, record, err
}

func logToolRecord(logger *zap.Logger, record toolCallRecord) {
	if logger == nil {
		return
	}
	logger.Info("tool call",
		zap.String("name", record.Name),
		zap.Any("args", record.Args),
		zap.Int64("ms", record.MS),
		zap.Bool("ok", record.OK),
		zap.String("err", record.Err),
	)
}

func friendlyToolError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, statsapi.ErrMissingFunctionURL) {
		return "The KPI endpoint is not configured. Set FUNCTION_URL or pass --function-url."
	}

	var apiErr *statsapi.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("The inventory analytics API returned an error: %s", apiErr.Error())
	}

	return err.Error()
}

func getStringArg(args map[string]any, key string) (string, bool) {
	value, ok := args[key]
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
