package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewDeleteHandler returns a handler for the /delete admin command,
// removing one customer record by ID.
func NewDeleteHandler(deps HandlerDeps) bot.HandlerFunc {
	return deleteHandler{deps}.Handle
}

type deleteHandler struct {
	deps HandlerDeps
}

func (h deleteHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "delete")

	if update.Message == nil {
		log.WarnContext(ctx, "Delete handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		reply(ctx, b, log, chatID, "Format: /delete <id> (lihat ID lewat /list)")
		return
	}

	if err := h.deps.Remover.Delete(ctx, id); err != nil {
		log.ErrorContext(ctx, "Failed to delete customer", "error", err, "id", id, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Gagal menghapus data: %v", err))
		return
	}

	log.InfoContext(ctx, "Customer record deleted", "id", id, "chat_id", chatID)
	reply(ctx, b, log, chatID, fmt.Sprintf("Data dengan ID %d berhasil dihapus.", id))
}
