package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewClearHandler returns a handler for the /clear admin command, which
// deletes every stored customer record.
func NewClearHandler(deps HandlerDeps) bot.HandlerFunc {
	return clearHandler{deps}.Handle
}

type clearHandler struct {
	deps HandlerDeps
}

func (h clearHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "clear")

	if update.Message == nil {
		log.WarnContext(ctx, "Clear handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Admin requested full data clear", "chat_id", chatID)

	if err := h.deps.Remover.DeleteAll(ctx); err != nil {
		log.ErrorContext(ctx, "Failed to clear customer data", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Gagal menghapus data: %v", err))
		return
	}

	reply(ctx, b, log, chatID, "Semua data berhasil dihapus.")
}
