package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HafizhRaihan31/Chatbot-MPL/cmd/chatbot-cli/ui"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/chat"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/llm"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

var askCmd = &cobra.Command{
	Use:   "ask [pertanyaan]",
	Short: "Ask a question about the league",
	Long: `Ask answers a single question, or starts an interactive session when no
question is given. Questions about schedules, standings, rosters, and coaches
are answered from the local dataset; anything else goes to the configured
AI provider.`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	provider, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		if !errors.Is(err, llm.ErrNoAPIKey) {
			return fmt.Errorf("configure provider: %w", err)
		}
		ui.Warning("No API key set; answering from the local dataset only.")
		provider = nil
	}

	router := chat.NewRouter(store, provider, nil, observability.Nop(), chat.Config{
		Polish: cfg.Chat.Polish,
	})

	if len(args) > 0 {
		return askOnce(router, strings.Join(args, " "))
	}
	return askInteractive(router)
}

func askOnce(router *chat.Router, question string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	spin := ui.NewSpinner("Mencari jawaban...")
	spin.Start()
	answer, err := router.Answer(ctx, question)
	spin.Stop()

	if err != nil {
		if errors.Is(err, chat.ErrEmptyQuestion) {
			return errors.New("pertanyaan tidak boleh kosong")
		}
		return providerFailure(err)
	}

	ui.Answer(answer)
	return nil
}

func askInteractive(router *chat.Router) error {
	ui.Section("Chatbot MPL Indonesia")
	ui.Info("Ketik pertanyaan, atau \"exit\" untuk keluar.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" || question == "keluar" {
			break
		}

		if err := askOnce(router, question); err != nil {
			ui.Error("%v", err)
		}
	}

	return scanner.Err()
}

// providerFailure translates a generation failure into the message a user
// should see, mirroring the API's error mapping.
func providerFailure(err error) error {
	switch llm.Classify(err) {
	case llm.KindQuotaExceeded:
		return errors.New("kuota layanan AI habis, coba lagi nanti")
	case llm.KindModelUnavailable:
		return errors.New("model AI tidak tersedia, periksa konfigurasi LLM_MODEL")
	case llm.KindTimeout:
		return errors.New("layanan AI tidak merespons, coba lagi")
	default:
		return fmt.Errorf("layanan AI gagal: %w", err)
	}
}
