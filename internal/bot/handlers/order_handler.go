package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewOrderHandler returns a handler for the /order command, which begins
// a fresh guided intake session for the chat.
func NewOrderHandler(deps HandlerDeps) bot.HandlerFunc {
	return orderHandler{deps}.Handle
}

type orderHandler struct {
	deps HandlerDeps
}

func (h orderHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "order")

	if update.Message == nil {
		log.WarnContext(ctx, "Order handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Starting guided intake session", "chat_id", chatID)

	// Replaces any in-progress session for this chat.
	session := h.deps.Sessions.Start(chatID)
	reply(ctx, b, log, chatID, h.deps.Controller.Greeting(session))
}
