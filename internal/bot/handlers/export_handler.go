package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/hafizn/kirimbot/internal/report"
)

// NewExportHandler returns a handler for the /export admin command,
// sending the full customer listing as a CSV document.
func NewExportHandler(deps HandlerDeps) bot.HandlerFunc {
	return exportHandler{deps}.Handle
}

type exportHandler struct {
	deps HandlerDeps
}

func (h exportHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "export")

	if update.Message == nil {
		log.WarnContext(ctx, "Export handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Admin requested CSV export", "chat_id", chatID)

	customers, err := h.deps.Records.List(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list customers for export", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Gagal mengambil data: %v", err))
		return
	}

	if len(customers) == 0 {
		reply(ctx, b, log, chatID, "Belum ada data untuk diekspor.")
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, customers); err != nil {
		log.ErrorContext(ctx, "Failed to build CSV export", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Gagal membuat file CSV: %v", err))
		return
	}

	filename := fmt.Sprintf("customers_%s.csv", time.Now().Format("20060102_150405"))
	_, err = b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: filename,
			Data:     bytes.NewReader(buf.Bytes()),
		},
		Caption: fmt.Sprintf("%d data pelanggan", len(customers)),
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send CSV document", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Gagal mengirim file: %v", err))
		return
	}

	log.InfoContext(ctx, "CSV export sent", "chat_id", chatID, "rows", len(customers), "filename", filename)
}
