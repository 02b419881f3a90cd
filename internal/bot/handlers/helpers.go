package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
)

// reply sends a plain text message to the chat and logs delivery failures.
func reply(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// commandArgs returns the text after the command itself, trimmed. For
// "/delete 42" it returns "42"; for a bare command it returns "".
func commandArgs(text string) string {
	_, args, found := strings.Cut(text, " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(args)
}
