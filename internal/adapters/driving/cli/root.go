// Package cli implements the tquery command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bijilboby/TQuery/internal/adapters/driven/config/file"
	"github.com/bijilboby/TQuery/internal/adapters/driven/fewshot"
	"github.com/bijilboby/TQuery/internal/adapters/driven/llm/gemini"
	"github.com/bijilboby/TQuery/internal/adapters/driven/llm/openai"
	"github.com/bijilboby/TQuery/internal/adapters/driven/oracle"
	"github.com/bijilboby/TQuery/internal/adapters/driven/storage/sqlite"
	"github.com/bijilboby/TQuery/internal/core/ports/driven"
	"github.com/bijilboby/TQuery/internal/core/services"
	"github.com/bijilboby/TQuery/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services shared across commands. Populated by initPipeline; commands that
// need them call it in their RunE.
var (
	configStore  driven.ConfigStore
	promptStore  *file.PromptStore
	exampleStore driven.ExampleStore
	inventory    *sqlite.Store
	llmService   driven.LLMService
	askService   *services.Pipeline
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tquery",
	Short: "Ask questions about your t-shirt inventory",
	Long: `TQuery answers natural-language questions about a t-shirt inventory.
Questions are translated to SQL by an LLM, executed against the local
database, and the results are phrased as conversational answers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	defer closeServices()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initPipeline wires the full question pipeline: config, prompts, example
// corpus, inventory store, LLM and oracle. Idempotent; later calls are
// no-ops.
func initPipeline() error {
	if askService != nil {
		return nil
	}

	var err error
	configStore, err = file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	promptStore, err = file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	inventory, err = sqlite.NewStore(configStore.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening inventory store: %w", err)
	}

	llmService, err = newLLMService(configStore)
	if err != nil {
		return err
	}
	logger.Debug("Using LLM model %s", llmService.ModelName())

	exampleStore = fewshot.NewStore()

	sqlOracle := oracle.New(llmService, inventory, exampleStore, oracle.Config{
		Prompts: promptStore,
	})
	askService = services.NewPipeline(sqlOracle)
	return nil
}

// newLLMService builds the configured LLM backend. The API key may come from
// the config file or the conventional environment variables.
func newLLMService(cfg driven.ConfigStore) (driven.LLMService, error) {
	provider := cfg.GetString(file.KeyLLMProvider)
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		apiKey := cfg.GetString(file.KeyLLMAPIKey)
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		svc, err := gemini.NewLLMService(gemini.LLMConfig{
			APIKey:  apiKey,
			BaseURL: cfg.GetString(file.KeyLLMBaseURL),
			Model:   cfg.GetString(file.KeyLLMModel),
		})
		if err != nil {
			return nil, err
		}
		return svc, nil
	case "openai":
		apiKey := cfg.GetString(file.KeyLLMAPIKey)
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		svc, err := openai.NewLLMService(openai.LLMConfig{
			APIKey:  apiKey,
			BaseURL: cfg.GetString(file.KeyLLMBaseURL),
			Model:   cfg.GetString(file.KeyLLMModel),
		})
		if err != nil {
			return nil, err
		}
		return svc, nil
	default:
		return nil, errors.New("unknown llm.provider: " + provider)
	}
}

// closeServices releases whatever initPipeline opened.
func closeServices() {
	if llmService != nil {
		if err := llmService.Close(); err != nil {
			logger.Warn("Closing LLM service: %v", err)
		}
	}
	if inventory != nil {
		if err := inventory.Close(); err != nil {
			logger.Warn("Closing inventory store: %v", err)
		}
	}
}
