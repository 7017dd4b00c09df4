package telegram

import (
	"fmt"
	"linkedin-scraper/internal/scraper"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

var markdownReplacer = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
	")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
	"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
	"}", "\\}", ".", "\\.", "!", "\\!",
)

// EscapeMarkdown escapes text for MarkdownV2 messages.
func EscapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}

// FormatJob renders one record as a MarkdownV2 message.
func FormatJob(rec scraper.JobRecord) string {
	msgText := fmt.Sprintf("💼 *%s*\n", EscapeMarkdown(rec.Title))
	msgText += fmt.Sprintf("🏢 %s\n", EscapeMarkdown(rec.CompanyName))
	if rec.PostedTime != "" {
		msgText += fmt.Sprintf("📅 %s\n", EscapeMarkdown(rec.PostedTime))
	}
	msgText += fmt.Sprintf("🔗 [View Job](%s)\n", rec.URL)
	return msgText
}

func (b *Bot) SendJob(rec scraper.JobRecord) error {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔗 View Job", rec.URL),
		),
	)

	msg := tgbotapi.NewMessage(b.chatID, FormatJob(rec))
	msg.ParseMode = "MarkdownV2"
	msg.ReplyMarkup = keyboard

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
