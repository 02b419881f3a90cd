package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/hafizn/kirimbot/internal/report"
)

// NewStatsHandler returns a handler for the /stats admin command,
// summarizing the stored records.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")

	if update.Message == nil {
		log.WarnContext(ctx, "Stats handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Admin requested stats", "chat_id", chatID)

	customers, err := h.deps.Records.List(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list customers for stats", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Gagal mengambil data: %v", err))
		return
	}

	summary := report.Summarize(customers, time.Now())
	reply(ctx, b, log, chatID, formatSummary(summary))
}

// formatSummary renders a summary as a Telegram-friendly text block with
// per-month lines in chronological order.
func formatSummary(s report.Summary) string {
	var sb strings.Builder
	sb.WriteString("Statistik pengiriman:\n\n")
	fmt.Fprintf(&sb, "Total data: %d\n", s.Total)
	fmt.Fprintf(&sb, "Pengiriman mendatang: %d\n", s.Upcoming)
	fmt.Fprintf(&sb, "Nomor telepon unik: %d\n", s.UniquePhones)

	if len(s.PerMonth) > 0 {
		sb.WriteString("\nPer bulan:\n")
		months := make([]string, 0, len(s.PerMonth))
		for m := range s.PerMonth {
			months = append(months, m)
		}
		sort.Strings(months)
		for _, m := range months {
			fmt.Fprintf(&sb, "- %s: %d\n", m, s.PerMonth[m])
		}
	}

	return sb.String()
}
