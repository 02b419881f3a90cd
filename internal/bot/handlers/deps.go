package handlers

import (
	"log/slog"
	"sync"

	"github.com/hafizn/kirimbot/internal/config"
	"github.com/hafizn/kirimbot/internal/dialogue"
	"github.com/hafizn/kirimbot/internal/intake"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger     *slog.Logger
	Config     *config.Config
	Records    intake.Source
	Remover    intake.Remover
	Submitter  intake.Submitter
	Controller *dialogue.Controller
	Sessions   *dialogue.Manager
	Admins     *AdminSet
}

// AdminSet tracks which chats are currently logged in as admin. Login is
// per chat and lasts until an explicit /logout; there is no expiry.
type AdminSet struct {
	mu    sync.Mutex
	chats map[int64]struct{}
}

// NewAdminSet creates an empty admin login set.
func NewAdminSet() *AdminSet {
	return &AdminSet{chats: make(map[int64]struct{})}
}

// Login marks the given chat as admin.
func (a *AdminSet) Login(chatID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chats[chatID] = struct{}{}
}

// Logout removes the given chat from the admin set.
func (a *AdminSet) Logout(chatID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.chats, chatID)
}

// IsAdmin reports whether the given chat is logged in as admin.
func (a *AdminSet) IsAdmin(chatID int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.chats[chatID]
	return ok
}
