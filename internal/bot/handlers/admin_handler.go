package handlers

import (
	"context"
	"crypto/subtle"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewAdminLoginHandler returns a handler for the /admin command. The chat
// supplies the static admin password as the command argument and, on a
// match, gains access to the admin commands until /logout.
func NewAdminLoginHandler(deps HandlerDeps) bot.HandlerFunc {
	return adminLoginHandler{deps}.Handle
}

type adminLoginHandler struct {
	deps HandlerDeps
}

func (h adminLoginHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "admin_login")

	if update.Message == nil {
		log.WarnContext(ctx, "Admin login handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID

	if h.deps.Admins.IsAdmin(chatID) {
		reply(ctx, b, log, chatID, "Kamu sudah login sebagai admin.")
		return
	}

	password := commandArgs(update.Message.Text)
	if password == "" {
		reply(ctx, b, log, chatID, "Format: /admin <password>")
		return
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(h.deps.Config.Admin.Password)) != 1 {
		log.WarnContext(ctx, "Failed admin login attempt", "chat_id", chatID)
		reply(ctx, b, log, chatID, "Password salah.")
		return
	}

	h.deps.Admins.Login(chatID)
	log.InfoContext(ctx, "Admin login", "chat_id", chatID)
	reply(ctx, b, log, chatID, "Login admin berhasil. Perintah tersedia: /list, /delete <id>, /clear, /export, /stats, /logout")
}

// NewLogoutHandler returns a handler for the /logout command.
func NewLogoutHandler(deps HandlerDeps) bot.HandlerFunc {
	return logoutHandler{deps}.Handle
}

type logoutHandler struct {
	deps HandlerDeps
}

func (h logoutHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "logout")

	if update.Message == nil {
		log.WarnContext(ctx, "Logout handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID

	if !h.deps.Admins.IsAdmin(chatID) {
		reply(ctx, b, log, chatID, "Kamu belum login sebagai admin.")
		return
	}

	h.deps.Admins.Logout(chatID)
	log.InfoContext(ctx, "Admin logout", "chat_id", chatID)
	reply(ctx, b, log, chatID, "Logout berhasil.")
}
