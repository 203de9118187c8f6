// Package bot is the Telegram front-end for studying flashcards.
package bot

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/prepdeck/internal/deck"
	"github.com/example/prepdeck/internal/session"
	"github.com/example/prepdeck/pkg/models"
)

var ErrNoOwnerChat = errors.New("owner chat is not configured")

// messenger is the part of the Telegram API the bot talks to.
// *tgbotapi.BotAPI satisfies it.
type messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// tracker is the mastery tracker as seen by the bot.
type tracker interface {
	session.Ranker
	RecordAnswer(ctx context.Context, cardID string, correct bool) (models.CardProgress, error)
	Progress(ctx context.Context, cardID string) (models.CardProgress, bool)
	MasteryStats(ctx context.Context, cardIDs []string) models.MasteryStats
	Reset(ctx context.Context, cardID string) error
	ResetAll(ctx context.Context) error
}

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Bot represents the Telegram bot application
type Bot struct {
	api     messenger
	tracker tracker
	catalog *deck.Catalog
	config  Config
	log     *zap.Logger

	mu       sync.Mutex // guards sessions and rng
	sessions map[int64]*session.Session
	rng      *rand.Rand

	wg sync.WaitGroup
}

// New creates a new bot instance
func New(api messenger, tr tracker, catalog *deck.Catalog, config Config, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{
		api:      api,
		tracker:  tr,
		catalog:  catalog,
		config:   config,
		log:      log.Named("bot"),
		sessions: make(map[int64]*session.Session),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run handles updates until ctx is done or the channel is closed, then waits
// for in-flight handlers.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.handleUpdate(ctx, update)
			}()
		}
	}
}

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var err error
	switch {
	case update.CallbackQuery != nil:
		err = b.HandleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		err = b.HandleCommand(ctx, update.Message)
	case update.Message != nil && update.Message.Chat != nil:
		if !b.allowed(update.Message.Chat.ID) {
			err = b.refuse(update.Message.Chat.ID)
		} else {
			err = b.sendText(update.Message.Chat.ID, "Utilisez /menu pour choisir une catégorie ou /help pour l'aide.")
		}
	}
	if err != nil {
		b.log.Error("failed to handle update", zap.Int("update_id", update.UpdateID), zap.Error(err))
	}
}

// allowed reports whether chatID may use the bot.
func (b *Bot) allowed(chatID int64) bool {
	return b.config.OwnerChatID == 0 || chatID == b.config.OwnerChatID
}

func (b *Bot) refuse(chatID int64) error {
	b.log.Warn("refused chat", zap.Int64("chat_id", chatID))
	return b.sendText(chatID, "⛔ Ce bot est privé.")
}

// SendDueReminder implements the scheduler.Notifier interface
func (b *Bot) SendDueReminder(count int) error {
	if b.config.OwnerChatID == 0 {
		return ErrNoOwnerChat
	}

	msg := tgbotapi.NewMessage(b.config.OwnerChatID, reminderText(count))
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{{Text: "🔁 Réviser maintenant", CallbackData: studyCallback("all", session.ModeReview)}},
	})
	if err := b.sendMessage(msg); err != nil {
		return err
	}
	b.log.Info("sent due reminder", zap.Int("due", count))
	return nil
}

// chatSession returns the chat's session, if any. Callers hold b.mu.
func (b *Bot) chatSession(chatID int64) (*session.Session, bool) {
	s, ok := b.sessions[chatID]
	return s, ok
}

func (b *Bot) sendText(chatID int64, text string) error {
	return b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", msg.ChatID, err)
	}
	return nil
}

func (b *Bot) editMessage(msg tgbotapi.EditMessageTextConfig) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("edit message %d in chat %d: %w", msg.MessageID, msg.ChatID, err)
	}
	return nil
}
