package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const msgNoSession = "Ketik /order untuk mulai mengisi data pengiriman, atau /start untuk melihat semua perintah."

// NewChatHandler returns the default handler for plain text messages.
// When the chat has an active intake session the message advances it;
// otherwise the user is pointed at the commands.
func NewChatHandler(deps HandlerDeps) bot.HandlerFunc {
	return chatHandler{deps}.Handle
}

type chatHandler struct {
	deps HandlerDeps
}

func (h chatHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "chat")

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text

	if strings.HasPrefix(text, "/") {
		reply(ctx, b, log, chatID, "Perintah tidak dikenal. Ketik /start untuk melihat daftar perintah.")
		return
	}

	session, ok := h.deps.Sessions.Get(chatID)
	if !ok {
		reply(ctx, b, log, chatID, msgNoSession)
		return
	}

	log.DebugContext(ctx, "Advancing intake session", "chat_id", chatID, "step", session.Step)
	reply(ctx, b, log, chatID, h.deps.Controller.Advance(ctx, session, text))
}
