package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"inventory_agent/internal/config"
	"inventory_agent/internal/llm"
	"inventory_agent/internal/statsapi"

	"github.com/google/uuid"
	openrouter "github.com/revrost/go-openrouter"
	"go.uber.org/zap"
)

type Runner struct {
	options   Options
	logger    *zap.Logger
	llmClient *llm.Client
}

func NewRunner(cfg config.Config, logger *zap.Logger, llmClient *llm.Client) *Runner {
	logger = logger.Named("cli")
	opts := Options{
		FunctionURL: cfg.FunctionURL,
		LLMBaseURL:  cfg.LLMBaseURL,
		LLMAPIKey:   cfg.LLMAPIKey,
		LLMModel:    cfg.LLMModel,
		Timeout:     cfg.Timeout,
		LogFile:     cfg.LogFile,
		Debug:       cfg.Debug,
	}

	return &Runner{
		options:   opts,
		logger:    logger,
		llmClient: llmClient,
	}
}

func (r *Runner) Execute() error {
	return runCLI(&r.options, r.logger)
}

func runCLI(opts *Options, logger *zap.Logger) error {
	var timeoutSeconds int

	fs := flag.NewFlagSet("inventory-ai", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [question]\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.FunctionURL, "function-url", opts.FunctionURL, "KPI endpoint URL (FUNCTION_URL)")
	fs.BoolVar(&opts.JSON, "json", false, "Output JSON format")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "Enable debug logging")
	fs.StringVar(&opts.LogFile, "log-file", opts.LogFile, "Log file path")
	fs.IntVar(&timeoutSeconds, "timeout", int(opts.Timeout.Seconds()), "Timeout in seconds")
	fs.StringVar(&opts.LLMBaseURL, "llm-base-url", opts.LLMBaseURL, "LLM base URL (LLM_BASE_URL)")
	fs.StringVar(&opts.LLMAPIKey, "llm-api-key", opts.LLMAPIKey, "LLM API key (LLM_API_KEY)")
	fs.StringVar(&opts.LLMModel, "llm-model", opts.LLMModel, "LLM model (LLM_MODEL)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fs.Usage()
			return nil
		}
		return err
	}

	if timeoutSeconds > 0 {
		opts.Timeout = time.Duration(timeoutSeconds) * time.Second
	}

	args := fs.Args()
	if len(args) > 1 {
		return fmt.Errorf("only one question argument is supported")
	}
	if len(args) == 1 {
		opts.Query = strings.TrimSpace(args[0])
	}

	llmClient, err := newLLMClientFromOptions(opts, logger)
	if err != nil {
		return err
	}
	statsClient := newStatsClientFromOptions(opts, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	logger = logger.With(zap.String("session_id", uuid.NewString()))

	if opts.Query == "" {
		return runREPL(ctx, opts, logger, llmClient, statsClient)
	}
	return runOneShot(ctx, opts, logger, llmClient, statsClient, opts.Query)
}

func newLLMClientFromOptions(opts *Options, logger *zap.Logger) (*llm.Client, error) {
	cfg := config.Config{
		LLMBaseURL: opts.LLMBaseURL,
		LLMAPIKey:  opts.LLMAPIKey,
		LLMModel:   opts.LLMModel,
		Timeout:    opts.Timeout,
	}
	return llm.NewClient(cfg, logger)
}

func newStatsClientFromOptions(opts *Options, logger *zap.Logger) *statsapi.Client {
	cfg := config.Config{
		FunctionURL: opts.FunctionURL,
		Timeout:     opts.Timeout,
	}
	return statsapi.NewClient(cfg, logger)
}

func runOneShot(ctx context.Context, opts *Options, logger *zap.Logger, llmClient *llm.Client, statsClient *statsapi.Client, query string) error {
	return handleQuery(ctx, opts, logger, llmClient, statsClient, query, false, nil)
}

func runREPL(ctx context.Context, opts *Options, logger *zap.Logger, llmClient *llm.Client, statsClient *statsapi.Client) error {
	reader := bufio.NewScanner(os.Stdin)
	history := NewSessionHistory(defaultHistoryMaxMessages, defaultHistoryMaxTokens, logger)
	history.Append(openrouter.SystemMessage(llm.SystemPromptWithContext(true)))
	fmt.Fprintln(os.Stdout, "Inventory AI (type 'exit' to quit)")

	for {
		fmt.Fprint(os.Stdout, "> ")
		if !reader.Scan() {
			return reader.Err()
		}

		line := strings.TrimSpace(reader.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "/clear":
			history.Clear()
			history.Append(openrouter.SystemMessage(llm.SystemPromptWithContext(true)))
			fmt.Fprintln(os.Stdout, "History cleared.")
			continue
		case "/history":
			printHistory(history)
			continue
		case "exit", "quit":
			return nil
		}

		if err := handleQuery(ctx, opts, logger, llmClient, statsClient, line, true, history); err != nil {
			return err
		}
	}
}

func printHistory(history *SessionHistory) {
	if history == nil {
		fmt.Fprintln(os.Stdout, "No history available.")
		return
	}
	messages := history.GetMessages()
	if len(messages) == 0 {
		fmt.Fprintln(os.Stdout, "History is empty.")
		return
	}
	fmt.Fprintf(os.Stdout, "History (%d messages, ~%d tokens):\n", len(messages), history.TokenCount())
	for i, msg := range messages {
		preview := messagePreview(msg)
		if preview == "" {
			preview = "(empty)"
		}
		fmt.Fprintf(os.Stdout, "%d) %s: %s\n", i+1, msg.Role, preview)
	}
}

func messagePreview(msg openrouter.ChatCompletionMessage) string {
	text := strings.TrimSpace(msg.Content.Text)
	if text == "" && len(msg.Content.Multi) > 0 {
		for _, part := range msg.Content.Multi {
			if strings.TrimSpace(part.Text) != "" {
				text = strings.TrimSpace(part.Text)
				break
			}
		}
	}
	if text == "" {
		return ""
	}
	const maxLen = 120
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}

func handleQuery(ctx context.Context, opts *Options, logger *zap.Logger, llmClient *llm.Client, statsClient *statsapi.Client, query string, interactive bool, history *SessionHistory) error {
	logger.Info("question received",
		zap.String("query", query),
		zap.Bool("json", opts.JSON),
	)

	resp, err := runLLMAgent(ctx, logger, llmClient, statsClient, query, interactive, history)
	if err != nil {
		return err
	}
	logResponse(logger, resp)
	return writeResponse(opts, resp)
}

func logResponse(logger *zap.Logger, resp response) {
	if logger == nil {
		return
	}
	logger.Info("response",
		zap.String("query", strings.TrimSpace(resp.Query)),
		zap.String("answer", strings.TrimSpace(resp.AnswerText)),
		zap.Int("tool_calls", len(resp.ToolCalls)),
		zap.String("next_step", strings.TrimSpace(resp.NextStep)),
	)
}

type jsonResponse struct {
	Query      string           `json:"query"`
	AnswerText string           `json:"answer_text"`
	ToolCalls  []toolCallRecord `json:"tool_calls,omitempty"`
	NextStep   string           `json:"next_step,omitempty"`
}

func writeResponse(opts *Options, resp response) error {
	if opts.JSON {
		return writeJSONResponse(resp)
	}
	return writeHumanResponse(resp)
}

func writeJSONResponse(resp response) error {
	payload := jsonResponse{
		Query:      resp.Query,
		AnswerText: strings.TrimSpace(resp.AnswerText),
		ToolCalls:  resp.ToolCalls,
		NextStep:   strings.TrimSpace(resp.NextStep),
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(payload)
}

func writeHumanResponse(resp response) error {
	answer := strings.TrimSpace(resp.AnswerText)

	if answer != "" {
		fmt.Fprintln(os.Stdout, answer)
	} else {
		fmt.Fprintln(os.Stdout, "(empty response)")
	}

	if len(resp.ToolCalls) > 0 {
		fmt.Fprintf(os.Stdout, "\n[%d tool call(s)", len(resp.ToolCalls))
		for _, call := range resp.ToolCalls {
			fmt.Fprintf(os.Stdout, " %s(%dms)", call.Name, call.MS)
		}
		fmt.Fprintln(os.Stdout, "]")
	}

	if strings.TrimSpace(resp.NextStep) != "" {
		fmt.Fprintf(os.Stdout, "\nNext step: %s\n", strings.TrimSpace(resp.NextStep))
	}

	return nil
}
