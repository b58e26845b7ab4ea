package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bijilboby/TQuery/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `View and change configuration values.

Well-known keys:
  llm.provider      LLM backend, "gemini" or "openai" (default gemini)
  llm.model         Model name (default per provider)
  llm.api_key       API key for the LLM backend
  llm.base_url      Override the LLM API base URL
  storage.data_dir  Directory holding the inventory database
  server.addr       Listen address for the HTTP server`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

When setting llm.api_key without a value argument the key is read from the
terminal without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func openConfigStore() (*file.ConfigStore, error) {
	store, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return store, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}

	display := func(key string) string {
		val := store.GetString(key)
		if val == "" {
			return "(not set)"
		}
		if key == file.KeyLLMAPIKey {
			return maskAPIKey(val)
		}
		return val
	}

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", display(file.KeyLLMProvider))
	cmd.Printf("  Model: %s\n", display(file.KeyLLMModel))
	cmd.Printf("  API Key: %s\n", display(file.KeyLLMAPIKey))
	cmd.Printf("  Base URL: %s\n", display(file.KeyLLMBaseURL))
	cmd.Println()
	cmd.Println("[Storage]")
	cmd.Printf("  Data Dir: %s\n", display(file.KeyDataDir))
	cmd.Println()
	cmd.Println("[Server]")
	cmd.Printf("  Addr: %s\n", display(file.KeyServeAddr))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}
	cmd.Println(store.GetString(args[0]))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else if key == file.KeyLLMAPIKey {
		cmd.Print("Enter API key: ")
		value = readPassword()
		cmd.Println()
		if value == "" {
			return errors.New("API key must not be empty")
		}
	} else {
		return errors.New("value required")
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
