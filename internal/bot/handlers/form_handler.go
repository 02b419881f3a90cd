package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/hafizn/kirimbot/internal/database"
	"github.com/hafizn/kirimbot/internal/normalize"
)

const msgFormUsage = "Kirim data dalam satu pesan dengan format:\n\n" +
	"/form Nama; Nomor telepon; Alamat lengkap; Tanggal pengiriman\n\n" +
	"Contoh: /form Budi; 08123456789; Jl. Merdeka 10; 27 September 2025 jam 17.00"

// NewFormHandler returns a handler for the /form command, a one-shot
// intake that accepts all four fields in a single semicolon-separated
// message.
func NewFormHandler(deps HandlerDeps) bot.HandlerFunc {
	return formHandler{deps}.Handle
}

type formHandler struct {
	deps HandlerDeps
}

func (h formHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "form")

	if update.Message == nil {
		log.WarnContext(ctx, "Form handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	args := commandArgs(update.Message.Text)
	if args == "" {
		reply(ctx, b, log, chatID, msgFormUsage)
		return
	}

	customer, err := parseFormInput(args)
	if err != nil {
		log.InfoContext(ctx, "Rejected form submission", "chat_id", chatID, "reason", err)
		reply(ctx, b, log, chatID, fmt.Sprintf("%v\n\n%s", err, msgFormUsage))
		return
	}

	if err := h.deps.Submitter.Submit(ctx, customer); err != nil {
		log.ErrorContext(ctx, "Form submission failed", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, fmt.Sprintf("Terjadi kesalahan saat menyimpan data: %v", err))
		return
	}

	log.InfoContext(ctx, "Form submission saved", "chat_id", chatID)
	reply(ctx, b, log, chatID, "Data kamu sudah berhasil disimpan. Terima kasih!")
}

// parseFormInput splits a semicolon-separated one-shot submission into a
// customer record, applying the same phone and date normalization as the
// guided intake.
func parseFormInput(input string) (database.Customer, error) {
	parts := strings.Split(input, ";")
	if len(parts) != 4 {
		return database.Customer{}, fmt.Errorf("data harus terdiri dari 4 bagian dipisah titik koma, diterima %d", len(parts))
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return database.Customer{}, fmt.Errorf("nama tidak boleh kosong")
	}

	phone, ok := normalize.ExtractPhone(parts[1])
	if !ok {
		return database.Customer{}, fmt.Errorf("nomor telepon tidak terbaca (contoh: 08123456789)")
	}

	address := strings.TrimSpace(parts[2])
	if address == "" {
		return database.Customer{}, fmt.Errorf("alamat tidak boleh kosong")
	}

	date, ok := normalize.ExtractDate(parts[3])
	if !ok {
		return database.Customer{}, fmt.Errorf("format tanggal/jam belum dipahami (contoh: 27 September 2025 jam 17.00)")
	}

	return database.Customer{
		Name:         name,
		Phone:        phone,
		Address:      address,
		DeliveryDate: date,
	}, nil
}
