package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hafizn/kirimbot/internal/assist"
	"github.com/hafizn/kirimbot/internal/intake"
	"github.com/hafizn/kirimbot/internal/normalize"
)

// Prompts and replies shown by the guided intake. Re-prompts name what
// was invalid and show the expected format; that wording is part of the
// usability contract, not just log text.
const (
	promptName       = "Siapa nama kamu?"
	promptNameFormat = "Baik, %s. Nomor telepon yang bisa kami hubungi berapa ya?"
	promptPhoneRetry = "Nomor telepon tidak terbaca. Coba lagi dengan format yang benar (contoh: 08123456789)"
	promptAddress    = "Terima kasih! Sekarang mohon alamat lengkap tujuan pengiriman."
	promptDate       = "Alamat sudah dicatat. Kapan dan jam berapa pengiriman diinginkan? (contoh: 27 September 2025 jam 17.00 WIB)"
	promptDateRetry  = "Format tanggal/jam belum saya pahami. Coba lagi (contoh: 27 September 2025 jam 17.00)"

	confirmSummaryFormat = "Berikut data pengiriman yang kamu isi:\n\n" +
		"- Nama: %s\n" +
		"- Nomor: %s\n" +
		"- Alamat: %s\n" +
		"- Tanggal & Jam: %s WIB\n\n" +
		"Ketik \"konfirmasi\" untuk menyimpan atau \"edit\" untuk mengulang dari awal."

	replySubmitOK         = "Data kamu sudah berhasil disimpan. Terima kasih! Silakan tanya apa saja, atau ketik /cancel untuk kembali ke menu awal."
	replySubmitFailFormat = "Terjadi kesalahan saat menyimpan data: %v\nData kamu masih tersimpan di percakapan ini, ketik \"konfirmasi\" untuk mencoba lagi."
	replyAssistFailFormat = "(AI error: %v)"
)

// Controller advances intake sessions through the fixed step sequence.
// Validation failures re-prompt and keep the current step; submission
// failures keep the session in the confirm step so the user can retry
// without re-entering anything.
type Controller struct {
	submitter intake.Submitter
	assistant assist.Responder
	log       *slog.Logger
}

// NewController creates a dialogue controller. The assistant may be nil,
// in which case the done step replies with a fixed notice instead of
// generated text.
func NewController(submitter intake.Submitter, assistant assist.Responder, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		submitter: submitter,
		assistant: assistant,
		log:       log.With("component", "dialogue"),
	}
}

// Greeting logs and returns the opening prompt for a fresh session.
func (c *Controller) Greeting(s *Session) string {
	s.logAssistant(promptName)
	return promptName
}

// Advance processes one user message against the session's current step
// and returns the single assistant reply for it. The reply is also
// appended to the session's message log.
func (c *Controller) Advance(ctx context.Context, s *Session, input string) string {
	s.logUser(input)

	var reply string
	switch s.Step {
	case StepName:
		reply = c.handleName(s, input)
	case StepPhone:
		reply = c.handlePhone(s, input)
	case StepAddress:
		reply = c.handleAddress(s, input)
	case StepDeliveryDate:
		reply = c.handleDeliveryDate(s, input)
	case StepConfirm:
		reply = c.handleConfirm(ctx, s, input)
	case StepDone:
		reply = c.handleDone(ctx, input)
	default:
		c.log.WarnContext(ctx, "Session in unknown step, restarting", "step", s.Step)
		s.clear()
		reply = promptName
	}

	s.logAssistant(reply)
	return reply
}

func (c *Controller) handleName(s *Session, input string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		return promptName
	}

	s.Name = name
	s.Step = StepPhone
	return fmt.Sprintf(promptNameFormat, s.Name)
}

func (c *Controller) handlePhone(s *Session, input string) string {
	phone, ok := normalize.ExtractPhone(input)
	if !ok {
		return promptPhoneRetry
	}

	s.Phone = phone
	s.Step = StepAddress
	return promptAddress
}

func (c *Controller) handleAddress(s *Session, input string) string {
	address := strings.TrimSpace(input)
	if address == "" {
		return promptAddress
	}

	s.Address = address
	s.Step = StepDeliveryDate
	return promptDate
}

func (c *Controller) handleDeliveryDate(s *Session, input string) string {
	date, ok := normalize.ExtractDate(input)
	if !ok {
		return promptDateRetry
	}

	s.DeliveryDate = date
	s.Step = StepConfirm
	return c.confirmSummary(s)
}

func (c *Controller) handleConfirm(ctx context.Context, s *Session, input string) string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "konfirmasi", "confirm", "ya", "ok":
		if err := c.submitter.Submit(ctx, s.Record()); err != nil {
			c.log.WarnContext(ctx, "Record submission failed", "error", err)
			return fmt.Sprintf(replySubmitFailFormat, err)
		}
		s.Step = StepDone
		return replySubmitOK
	case "edit", "ubah":
		s.clear()
		return promptName
	default:
		return c.confirmSummary(s)
	}
}

func (c *Controller) handleDone(ctx context.Context, input string) string {
	if c.assistant == nil {
		return "Asisten tidak tersedia saat ini. Ketik /cancel untuk kembali ke menu awal."
	}

	reply, err := c.assistant.Reply(ctx, input)
	if err != nil {
		// Assistant failure degrades to an inline error reply; the
		// session stays usable.
		return fmt.Sprintf(replyAssistFailFormat, err)
	}
	return reply
}

func (c *Controller) confirmSummary(s *Session) string {
	return fmt.Sprintf(confirmSummaryFormat, s.Name, s.Phone, s.Address, s.DeliveryDate)
}
