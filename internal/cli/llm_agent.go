package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"inventory_agent/internal/llm"
	"inventory_agent/internal/statsapi"

	openrouter "github.com/revrost/go-openrouter"
	"go.uber.org/zap"
)

const maxToolRounds = 4

func runLLMAgent(ctx context.Context, logger *zap.Logger, llmClient *llm.Client, statsClient *statsapi.Client, query string, interactive bool, history *SessionHistory) (response, error) {
	if llmClient == nil || !llmClient.Enabled() {
		return response{}, llm.ErrNotConfigured
	}

	var messages []openrouter.ChatCompletionMessage
	if history != nil {
		if len(history.GetMessages()) == 0 {
			history.Append(openrouter.SystemMessage(llm.SystemPromptWithContext(interactive)))
		}
		history.Append(openrouter.UserMessage(query))
		messages = history.GetMessages()
	} else {
		messages = []openrouter.ChatCompletionMessage{
			openrouter.SystemMessage(llm.SystemPromptWithContext(interactive)),
			openrouter.UserMessage(query),
		}
	}

	var toolCalls []toolCallRecord

	for round := 0; round < maxToolRounds; round++ {
		if history != nil {
			messages = history.GetMessages()
		}
		resp, err := llmClient.ChatWithMessages(ctx, messages, llm.ToolSchemas())
		if err != nil {
			return response{}, err
		}
		logLLMUsage(logger, resp)
		if len(resp.Choices) == 0 {
			return response{}, fmt.Errorf("llm returned empty response")
		}

		msg := resp.Choices[0].Message
		logger.Debug("llm response",
			zap.String("content", msg.Content.Text),
			zap.Int("tool_calls", len(msg.ToolCalls)),
		)

		if len(msg.ToolCalls) == 0 {
			if history != nil {
				history.Append(msg)
			}
			return response{
				Query:      query,
				AnswerText: strings.TrimSpace(msg.Content.Text),
				ToolCalls:  toolCalls,
			}, nil
		}

		if history != nil {
			history.Append(msg)
		} else {
			messages = append(messages, msg)
		}

		toolMsgs, callRecords, err := executeToolCalls(ctx, logger, statsClient, msg.ToolCalls)
		toolCalls = append(toolCalls, callRecords...)
		if history != nil {
			for _, toolMsg := range toolMsgs {
				history.Append(toolMsg)
			}
		} else {
			messages = append(messages, toolMsgs...)
		}
		if err != nil {
			return response{
				Query:      query,
				AnswerText: friendlyToolError(err),
				ToolCalls:  toolCalls,
			}, nil
		}
	}

	return response{
		Query:      query,
		AnswerText: "Could not finish the request: tool-call round limit reached.",
		ToolCalls:  toolCalls,
		NextStep:   "Narrow the question or name a specific SKU key.",
	}, nil
}

func executeToolCalls(ctx context.Context, logger *zap.Logger, statsClient *statsapi.Client, calls []openrouter.ToolCall) ([]openrouter.ChatCompletionMessage, []toolCallRecord, error) {
	if statsClient == nil {
		return nil, nil, fmt.Errorf("kpi client is not configured")
	}

	toolMessages := make([]openrouter.ChatCompletionMessage, 0, len(calls))
	records := make([]toolCallRecord, 0, len(calls))

	for _, call := range calls {
		args := map[string]any{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				record := toolCallRecord{
					Name: call.Function.Name,
					OK:   false,
					Err:  fmt.Sprintf("invalid tool args: %v", err),
				}
				records = append(records, record)
				logToolRecord(logger, record)
				toolMessages = append(toolMessages, openrouter.ToolMessage(call.ID, toolErrorPayload(record.Err)))
				continue
			}
		}

		payload, record, err := dispatchToolCall(ctx, logger, statsClient, call.Function.Name, args)
		records = append(records, record)
		if err != nil {
			toolMessages = append(toolMessages, openrouter.ToolMessage(call.ID, toolErrorPayload(err.Error())))
			return toolMessages, records, err
		}
		toolMessages = append(toolMessages, openrouter.ToolMessage(call.ID, payload))
	}

	return toolMessages, records, nil
}

// dispatchToolCall runs one tool invocation. The KPI tool returns raw JSON
// text, which is passed to the model unmodified.
func dispatchToolCall(ctx context.Context, logger *zap.Logger, statsClient *statsapi.Client, name string, args map[string]any) (string, toolCallRecord, error) {
	switch name {
	case llm.ToolNameGetInventoryKPIs:
		key, _ := getStringArg(args, "key")
		return trackCall(logger, name, args, func() (string, error) {
			return statsClient.GetInventoryKPIs(ctx, key)
		})
	default:
		err := fmt.Errorf("unknown tool: %s", name)
		return "", toolCallRecord{Name: name, Args: args, OK: false, Err: err.Error()}, err
	}
}

func toolErrorPayload(message string) string {
	payload := map[string]string{
		"error": message,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, message)
	}
	return string(encoded)
}

func logLLMUsage(logger *zap.Logger, resp openrouter.ChatCompletionResponse) {
	if resp.Usage == nil {
		return
	}
	logger.Info("llm usage",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
		zap.Float64("cost", resp.Usage.Cost),
	)
}
