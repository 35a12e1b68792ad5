package cli

import "time"

type Options struct {
	Query       string
	FunctionURL string
	JSON        bool
	Debug       bool
	LogFile     string
	Timeout     time.Duration
	LLMBaseURL  string
	LLMAPIKey   string
	LLMModel    string
}
