package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"remindtrack/internal/application/dto"
	"remindtrack/internal/application/service"
	"remindtrack/internal/infrastructure/line"
	"remindtrack/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

const howToUse = `登録済みのリマインドを検索できます。

「今日」または「today」: 今日発生するリマインド
「一覧」または「list」: すべてのリマインド
それ以外の文字列: 説明・種類・曜日で検索`

// LineHandler handles incoming LINE webhook events.
type LineHandler struct {
	lineClient      *line.Client
	reminderService service.ReminderService
	location        *time.Location
	now             func() time.Time
	log             logger.Logger
}

// NewLineHandler creates a new LineHandler. loc decides what "today" means.
func NewLineHandler(
	lineClient *line.Client,
	reminderService service.ReminderService,
	loc *time.Location,
	log logger.Logger,
) *LineHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &LineHandler{
		lineClient:      lineClient,
		reminderService: reminderService,
		location:        loc,
		now:             time.Now,
		log:             log,
	}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	events, err := h.lineClient.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	for _, event := range events {
		h.log.Info(fmt.Sprintf("Processing event type: %s", event.Type))
		switch event.Type {
		case linebot.EventTypeMessage:
			h.handleMessageEvent(ctx, event)
		case linebot.EventTypeFollow:
			h.reply(ctx, event.ReplyToken, howToUse)
		default:
			h.log.Info(fmt.Sprintf("Unhandled event type: %s", event.Type))
		}
	}

	return c.String(http.StatusOK, "OK")
}

func (h *LineHandler) handleMessageEvent(ctx context.Context, event *linebot.Event) {
	message, ok := event.Message.(*linebot.TextMessage)
	if !ok {
		h.reply(ctx, event.ReplyToken, howToUse)
		return
	}
	userID := event.Source.UserID
	h.log.Info(fmt.Sprintf("Received text message from %s: %s", userID, message.Text))

	title, req := h.listRequestFor(message.Text)
	reminders, err := h.reminderService.ListReminders(ctx, userID, req)
	if err != nil {
		h.log.Error(fmt.Sprintf("Failed to list reminders for LINE user %s", userID), err)
		h.reply(ctx, event.ReplyToken, "リマインド一覧の取得に失敗しました。")
		return
	}
	h.reply(ctx, event.ReplyToken, service.FormatReminderList(title, reminders))
}

// listRequestFor maps a chat command to list parameters.
func (h *LineHandler) listRequestFor(text string) (string, dto.ListRemindersRequest) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "today", "今日":
		today := h.now().In(h.location).Format(dto.QueryDateLayout)
		return fmt.Sprintf("今日のリマインド (%s)", today), dto.ListRemindersRequest{StartDate: today, EndDate: today}
	case "list", "一覧":
		return "リマインド一覧", dto.ListRemindersRequest{}
	default:
		return fmt.Sprintf("「%s」の検索結果", text), dto.ListRemindersRequest{Search: text}
	}
}

func (h *LineHandler) reply(ctx context.Context, replyToken, text string) {
	if err := h.lineClient.ReplyText(ctx, replyToken, text); err != nil {
		h.log.Error("Failed to send reply message", err)
	}
}
