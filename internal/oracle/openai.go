// Package oracle provides the network-backed heuristic oracle used by the
// solver: an OpenAI chat-completion model asked to estimate how many face
// turns remain to solve a given cube state.
package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a Rubik's cube expert. You are shown the sticker layout " +
	"of a scrambled 3x3 cube and its solved layout. Estimate the minimum number of " +
	"face turns needed to solve it. Answer with a single integer."

// OpenAI implements the cubesolver.Oracle interface against the OpenAI
// chat completion API. It is best-effort by design: the solver treats any
// error from Advise as a cue to fall back to its local heuristic.
type OpenAI struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAI builds a client from the OPENAI_API_KEY and OPENAI_MODEL
// environment variables.
func NewOpenAI(logger *slog.Logger) (*OpenAI, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
		logger.Warn("OPENAI_MODEL not set, using default", "model", model)
	}

	logger.Info("heuristic oracle enabled", "model", model)
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}, nil
}

// Advise asks the model for a remaining-move estimate and returns its raw
// text answer. The caller extracts and validates the number.
func (o *OpenAI) Advise(ctx context.Context, state, goal string) (string, error) {
	prompt := fmt.Sprintf("Current cube state:\n%s\nSolved state:\n%s\nHow many face turns are needed to solve it?", state, goal)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   16,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	answer := resp.Choices[0].Message.Content
	o.logger.Debug("oracle answered", "answer", answer)
	return answer, nil
}
