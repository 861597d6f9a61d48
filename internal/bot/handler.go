package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"moneymanager/internal/core"
	"moneymanager/internal/ledger"
	applog "moneymanager/internal/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// Handler is the Telegram command dispatcher. It owns no ledger logic: each
// command body parses arguments, calls the ledger service, and renders the
// classified outcome as a reply.
type Handler struct {
	api *tgbotapi.BotAPI
	svc *ledger.Service
	log *applog.Logger
}

func New(token string, svc *ledger.Service, logger *applog.Logger) (*Handler, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram api: %w", err)
	}
	return &Handler{api: api, svc: svc, log: logger.WithComponent("bot")}, nil
}

// Run consumes updates until ctx is cancelled. Commands for different chats
// arrive on one channel; the service layer handles per-user serialization.
func (h *Handler) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.api.GetUpdatesChan(u)
	h.log.Info("Bot online", "username", h.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			h.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			h.handleCommand(ctx, update.Message)
		}
	}
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	traceID := uuid.NewString()
	userID := strconv.FormatInt(msg.Chat.ID, 10)
	cmd := msg.Command()
	args := strings.Fields(msg.CommandArguments())

	log := h.log.With("trace_id", traceID, "command", cmd, "user_id", userID)
	log.InfoContext(ctx, "Command received", "args", len(args))

	var reply string
	switch cmd {
	case "add":
		reply = h.add(ctx, log, userID, args)
	case "report":
		reply = h.report(ctx, log, userID, args)
	case "history":
		reply = h.history(ctx, log, userID, args)
	case "share":
		reply = h.share(ctx, log, userID, args)
	case "help", "start":
		reply = helpText
	default:
		reply = "Unknown command. Send /help for usage."
	}

	if _, err := h.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		log.ErrorContext(ctx, "Send reply failed", "error", err)
	}
}

func (h *Handler) add(ctx context.Context, log *applog.Logger, userID string, args []string) string {
	if len(args) < 2 {
		return "Usage: /add <item> <price> [category]"
	}
	category := ""
	if len(args) > 2 {
		category = strings.Join(args[2:], " ")
	}
	e, err := h.svc.Add(ctx, userID, args[0], args[1], category)
	if err != nil {
		return h.failureText(ctx, log, "add", err)
	}
	log.InfoContext(ctx, "Expense recorded", "item", e.Item, "price", e.Price, "category", e.Category)
	return formatAdded(e)
}

func (h *Handler) report(ctx context.Context, log *applog.Logger, userID string, args []string) string {
	if len(args) < 1 {
		return "Usage: /report <daily|weekly|monthly>"
	}
	rep, err := h.svc.Report(ctx, userID, args[0])
	if err != nil {
		return h.failureText(ctx, log, "report", err)
	}
	if rep.Empty() {
		return fmt.Sprintf("No entries found in the last %s window.", rep.Period)
	}
	return formatReport(rep)
}

func (h *Handler) history(ctx context.Context, log *applog.Logger, userID string, args []string) string {
	if len(args) < 2 {
		return "Usage: /history <count|category|date> <value>"
	}
	entries, err := h.svc.History(ctx, userID, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return h.failureText(ctx, log, "history", err)
	}
	if len(entries) == 0 {
		return "No matching entries found."
	}
	return formatHistory(entries)
}

func (h *Handler) share(ctx context.Context, log *applog.Logger, userID string, args []string) string {
	if len(args) < 1 {
		return "Usage: /share <email>"
	}
	if err := h.svc.Share(ctx, userID, args[0]); err != nil {
		return h.failureText(ctx, log, "share", err)
	}
	log.InfoContext(ctx, "Ledger shared", "email", args[0])
	return fmt.Sprintf("Ledger shared with %s.", args[0])
}

// failureText turns a classified error into user-facing text. Validation
// messages go back verbatim; store failures get a generic reply and a
// detailed operator log line.
func (h *Handler) failureText(ctx context.Context, log *applog.Logger, op string, err error) string {
	if core.IsValidation(err) {
		return err.Error()
	}
	log.ErrorContext(ctx, "Command failed", "op", op, "error", err)
	return "Something went wrong talking to your ledger. Please try again later."
}
