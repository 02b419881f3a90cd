package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// listPageSize caps how many records a single /list reply shows, keeping
// the message well under Telegram's length limit.
const listPageSize = 25

// NewListHandler returns a handler for the /list admin command, showing
// the stored customer records newest first.
func NewListHandler(deps HandlerDeps) bot.HandlerFunc {
	return listHandler{deps}.Handle
}

type listHandler struct {
	deps HandlerDeps
}

func (h listHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "list")

	if update.Message == nil {
		log.WarnContext(ctx, "List handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Admin requested customer list", "chat_id", chatID)

	customers, err := h.deps.Records.List(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list customers", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Gagal mengambil data: %v", err))
		return
	}

	if len(customers) == 0 {
		reply(ctx, b, log, chatID, "Belum ada data pelanggan.")
		return
	}

	shown := customers
	if len(shown) > listPageSize {
		shown = shown[:listPageSize]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Data pelanggan (%d total):\n\n", len(customers))
	for _, c := range shown {
		fmt.Fprintf(&sb, "#%d | %s | %s | %s | %s\n", c.ID, c.Name, c.Phone, c.Address, c.DeliveryDate)
	}
	if len(customers) > listPageSize {
		fmt.Fprintf(&sb, "\n... %d data lainnya. Gunakan /export untuk data lengkap.", len(customers)-listPageSize)
	}

	reply(ctx, b, log, chatID, sb.String())
}
