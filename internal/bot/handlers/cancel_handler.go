package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewCancelHandler returns a handler for the /cancel command, which
// discards the chat's intake session.
func NewCancelHandler(deps HandlerDeps) bot.HandlerFunc {
	return cancelHandler{deps}.Handle
}

type cancelHandler struct {
	deps HandlerDeps
}

func (h cancelHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "cancel")

	if update.Message == nil {
		log.WarnContext(ctx, "Cancel handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID

	if _, ok := h.deps.Sessions.Get(chatID); !ok {
		reply(ctx, b, log, chatID, "Tidak ada sesi yang sedang berjalan. Ketik /order untuk mulai.")
		return
	}

	h.deps.Sessions.End(chatID)
	log.InfoContext(ctx, "Intake session cancelled", "chat_id", chatID)
	reply(ctx, b, log, chatID, "Sesi dibatalkan. Ketik /order untuk mulai dari awal.")
}
