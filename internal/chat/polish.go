package chat

import (
	"context"
	"strings"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/llm"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// polishSystemPrompt constrains the pass to style only. The model may not add,
// change, or drop facts, and must answer in the same language.
const polishSystemPrompt = "Tulis ulang jawaban berikut agar terdengar lebih luwes dan ramah. " +
	"JANGAN menambah, mengubah, atau menghapus fakta apa pun. " +
	"Gunakan bahasa yang sama dengan jawaban aslinya. " +
	"Balas hanya dengan teks jawabannya, tanpa penjelasan."

// Polisher optionally rephrases an already-correct answer. It is a cosmetic
// best-effort step: any provider failure, missing credential, or blank output
// returns the original answer unchanged.
type Polisher struct {
	provider llm.Provider
	logger   *observability.Logger
}

// NewPolisher creates a polisher. A nil provider turns the pass into a no-op.
func NewPolisher(provider llm.Provider, logger *observability.Logger) *Polisher {
	if logger == nil {
		logger = observability.Nop()
	}
	return &Polisher{provider: provider, logger: logger}
}

// Polish rephrases the answer, or returns it verbatim when it cannot.
func (p *Polisher) Polish(ctx context.Context, answer string) string {
	if p.provider == nil || answer == "" {
		return answer
	}

	out, err := p.provider.Generate(ctx, polishSystemPrompt, answer)
	if err != nil {
		p.logger.Debug().Err(err).Msg("Polish pass failed, keeping original answer")
		return answer
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return answer
	}
	return out
}
