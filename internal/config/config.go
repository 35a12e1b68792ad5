package config

import (
	"fmt"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

type Config struct {
	// Blob source for the KPI server. SourceEndpoint is the storage
	// connection string and is required; the container and blob names fall
	// back to the dataset defaults.
	SourceEndpoint string `koanf:"source_endpoint"`
	ContainerName  string `koanf:"container_name"`
	BlobName       string `koanf:"blob_name"`

	// HTTP listen address of the KPI server.
	ListenAddr string `koanf:"listen_addr"`

	// FunctionURL is the deployed inventory_stats endpoint the chat tool
	// calls.
	FunctionURL string `koanf:"function_url"`

	LLMBaseURL string        `koanf:"llm_base_url"`
	LLMAPIKey  string        `koanf:"llm_api_key"`
	LLMModel   string        `koanf:"llm_model"`
	Timeout    time.Duration `koanf:"timeout"`
	LogFile    string        `koanf:"log_file"`
	Debug      bool          `koanf:"debug"`
}

func New() (Config, error) {
	cfg := Config{
		ContainerName: "datasets",
		BlobName:      "gestion_demanda.csv",
		ListenAddr:    ":8080",
		Timeout:       10 * time.Second,
		LogFile:       "./inventory-ai.log",
		Debug:         false,
	}

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}
