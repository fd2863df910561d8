package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const systemPrompt = `You are the bookkeeper of a small Indonesian shop.
You answer questions about the shop's daily cash ledger: sales, cash
received, bank transfers, expenses, and the reconciliation difference
(cash + transfers - sales - expenses). Amounts are in rupiah. Base every
answer on the reports below; say so when they do not contain the answer.

`

// Bookkeeper is a chat with the shop's accounting expert, seeded with the
// ledger's current reports.
type Bookkeeper struct {
	ModelName string
	reports   string
	chat      *genai.Chat
}

// NewBookkeeper creates a bookkeeper grounded with the given report
// markdown (typically the summary and the history table).
func NewBookkeeper(reports string) *Bookkeeper {
	return &Bookkeeper{
		ModelName: "gemini-2.5-flash",
		reports:   reports,
	}
}

// Start creates the underlying chat session.
func (b *Bookkeeper) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt + b.reports}},
		},
	}
	chat, err := client.Chats.Create(ctx, b.ModelName, config, nil)
	if err != nil {
		return err
	}
	b.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (b *Bookkeeper) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := b.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the bookkeeper")
	}
	return resp.Candidates[0].Content, nil
}
