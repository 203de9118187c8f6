package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/prepdeck/internal/deck"
	"github.com/example/prepdeck/internal/session"
	"github.com/example/prepdeck/pkg/models"
)

// HandleCommand handles bot commands
func (b *Bot) HandleCommand(ctx context.Context, message *tgbotapi.Message) error {
	if message == nil || message.Chat == nil {
		return fmt.Errorf("invalid message: required fields are missing")
	}
	chatID := message.Chat.ID
	if !b.allowed(chatID) {
		return b.refuse(chatID)
	}

	args := strings.Fields(message.CommandArguments())
	switch message.Command() {
	case "start", "menu":
		return b.showMenu(chatID)
	case "help":
		return b.handleHelp(chatID)
	case "study":
		return b.handleStudy(ctx, chatID, args)
	case "stats":
		return b.handleStats(ctx, chatID, args)
	case "reset":
		return b.handleReset(ctx, chatID, args)
	default:
		return b.handleUnknownCommand(chatID)
	}
}

func (b *Bot) showMenu(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, menuText)
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	return b.sendMessage(msg)
}

func (b *Bot) handleHelp(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, helpText)
	msg.ReplyMarkup = createKeyboard(backToMenuButtons())
	return b.sendMessage(msg)
}

func (b *Bot) handleUnknownCommand(chatID int64) error {
	return b.sendText(chatID, "Commande inconnue. Tapez /help pour la liste des commandes.")
}

func (b *Bot) handleStudy(ctx context.Context, chatID int64, args []string) error {
	if len(args) == 0 {
		return b.showMenu(chatID)
	}

	cards, err := b.cardsFor(args[0])
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("❌ Catégorie inconnue: %s", args[0]))
	}

	modeArg := ""
	if len(args) > 1 {
		modeArg = args[1]
	}
	mode, err := session.ParseMode(modeArg)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("❌ Mode inconnu: %s (smart, review ou shuffle)", modeArg))
	}

	text, markup := b.startSession(ctx, chatID, cards, mode)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	return b.sendMessage(msg)
}

// cardsFor resolves a category argument, where "all" means the whole deck.
func (b *Bot) cardsFor(arg string) ([]models.Flashcard, error) {
	if strings.EqualFold(arg, allCategories) {
		return b.catalog.All(), nil
	}
	category, err := models.ParseCategory(arg)
	if err != nil {
		return nil, err
	}
	return b.catalog.ByCategory(category), nil
}

// startSession replaces the chat's session and renders its first card.
func (b *Bot) startSession(ctx context.Context, chatID int64, cards []models.Flashcard, mode session.Mode) (string, tgbotapi.InlineKeyboardMarkup) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := session.New(ctx, b.tracker, cards, mode, b.rng)
	if s.Done() {
		delete(b.sessions, chatID)
		text := "🎉 Aucune carte à étudier dans cette sélection."
		if mode == session.ModeReview {
			text = "🎉 Aucune carte à réviser pour le moment!"
		}
		return text, createKeyboard(backToMenuButtons())
	}

	b.sessions[chatID] = s
	b.log.Debug("session started", zap.Int64("chat_id", chatID), zap.String("mode", string(s.Mode)), zap.Int("cards", len(cards)))
	return b.renderCurrent(ctx, s)
}

// renderCurrent renders the session's current card or its summary. Callers hold b.mu.
func (b *Bot) renderCurrent(ctx context.Context, s *session.Session) (string, tgbotapi.InlineKeyboardMarkup) {
	card, ok := s.Current()
	if !ok {
		return renderSummary(s.Score()), createKeyboard(backToMenuButtons())
	}
	progress, seen := b.tracker.Progress(ctx, card.ID)
	index, total := s.Position()
	return renderCard(card, progress, seen, s.Flipped(), index, total), createKeyboard(cardButtons(card.ID, s.Flipped(), index > 0))
}

func (b *Bot) handleStats(ctx context.Context, chatID int64, args []string) error {
	var text strings.Builder
	text.WriteString("📊 Progression\n\n")

	if len(args) > 0 {
		category, err := models.ParseCategory(args[0])
		if err != nil {
			return b.sendText(chatID, fmt.Sprintf("❌ Catégorie inconnue: %s", args[0]))
		}
		info := deck.Info(category)
		stats := b.tracker.MasteryStats(ctx, deck.IDs(b.catalog.ByCategory(category)))
		text.WriteString(renderStatsLine(info.Icon+" "+info.Name, stats))
	} else {
		stats := b.tracker.MasteryStats(ctx, deck.IDs(b.catalog.All()))
		text.WriteString(renderStatsLine("Total", stats))
		text.WriteString("\n\n")
		for _, info := range b.catalog.Categories() {
			stats := b.tracker.MasteryStats(ctx, deck.IDs(b.catalog.ByCategory(info.ID)))
			text.WriteString(renderStatsLine(info.Icon+" "+info.Name, stats))
			text.WriteString("\n")
		}
	}

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ReplyMarkup = createKeyboard(backToMenuButtons())
	return b.sendMessage(msg)
}

func (b *Bot) handleReset(ctx context.Context, chatID int64, args []string) error {
	if len(args) == 0 {
		return b.sendText(chatID, "Usage: /reset <identifiant de carte|all>")
	}

	target := args[0]
	if strings.EqualFold(target, allCategories) {
		if err := b.tracker.ResetAll(ctx); err != nil {
			b.log.Error("failed to reset progress", zap.Error(err))
			return b.sendText(chatID, "❌ Impossible de réinitialiser la progression.")
		}
		return b.sendText(chatID, "🧹 Toute la progression a été réinitialisée.")
	}

	if _, ok := b.catalog.Get(target); !ok {
		return b.sendText(chatID, fmt.Sprintf("❌ Carte inconnue: %s", target))
	}
	if err := b.tracker.Reset(ctx, target); err != nil {
		b.log.Error("failed to reset card", zap.String("card_id", target), zap.Error(err))
		return b.sendText(chatID, "❌ Impossible de réinitialiser cette carte.")
	}
	return b.sendText(chatID, fmt.Sprintf("🧹 Progression de la carte %s réinitialisée.", target))
}

// HandleCallback handles inline keyboard presses
func (b *Bot) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	if callback == nil || callback.Message == nil || callback.Message.Chat == nil {
		return fmt.Errorf("invalid callback data: required fields are missing")
	}

	// Always send an answer to the callback query to remove the loading state
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.log.Warn("failed to answer callback", zap.Error(err))
	}

	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID
	if !b.allowed(chatID) {
		return b.refuse(chatID)
	}

	action, args := parseCallback(callback.Data)
	switch action {
	case callbackMenu:
		return b.editMessage(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, menuText, createKeyboard(b.MainMenuButtons())))
	case callbackStats:
		return b.handleStats(ctx, chatID, nil)
	case callbackCategory:
		return b.handleStudyCallback(ctx, chatID, messageID, args)
	case callbackFlip, callbackSkip, callbackPrev, callbackAnswer:
		return b.handleCardCallback(ctx, chatID, messageID, action, args)
	default:
		return b.sendText(chatID, "⚠️ Action inconnue")
	}
}

func (b *Bot) handleStudyCallback(ctx context.Context, chatID int64, messageID int, args []string) error {
	if len(args) != 2 {
		return b.sendText(chatID, "⚠️ Action inconnue")
	}
	cards, err := b.cardsFor(args[0])
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("❌ Catégorie inconnue: %s", args[0]))
	}
	mode, err := session.ParseMode(args[1])
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("❌ Mode inconnu: %s", args[1]))
	}

	text, markup := b.startSession(ctx, chatID, cards, mode)
	return b.editMessage(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup))
}

var errInvalidAnswer = errors.New("invalid answer callback")

// handleCardCallback flips, skips, steps back or answers the current card of
// the chat's session. Callbacks rendered for another card are ignored, so a
// repeated tap never lands on the card that replaced it.
func (b *Bot) handleCardCallback(ctx context.Context, chatID int64, messageID int, action string, args []string) error {
	var verdict string
	if action == callbackAnswer {
		if len(args) < 2 || (args[0] != "0" && args[0] != "1") {
			return fmt.Errorf("%w: %v", errInvalidAnswer, args)
		}
		verdict, args = args[0], args[1:]
	}
	cardID := strings.Join(args, ":")

	b.mu.Lock()
	s, ok := b.chatSession(chatID)
	if !ok {
		b.mu.Unlock()
		msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
			"Aucune session en cours. Choisissez une catégorie.", createKeyboard(b.MainMenuButtons()))
		return b.editMessage(msg)
	}
	if current, ok := s.Current(); !ok || cardID == "" || current.ID != cardID {
		b.mu.Unlock()
		b.log.Debug("ignoring stale card callback",
			zap.Int64("chat_id", chatID),
			zap.String("action", action),
			zap.String("card_id", cardID),
		)
		return nil
	}

	var saveErr error
	switch action {
	case callbackFlip:
		s.Flip()
	case callbackSkip:
		s.Skip()
	case callbackPrev:
		s.Prev()
	case callbackAnswer:
		correct := verdict == "1"
		if _, err := b.tracker.RecordAnswer(ctx, cardID, correct); err != nil {
			saveErr = err
			b.log.Error("failed to record answer", zap.String("card_id", cardID), zap.Error(err))
		}
		s.Answer(correct)
	}

	text, markup := b.renderCurrent(ctx, s)
	if s.Done() {
		delete(b.sessions, chatID)
	}
	b.mu.Unlock()

	if saveErr != nil {
		text = "⚠️ La progression n'a pas pu être enregistrée.\n\n" + text
	}
	return b.editMessage(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup))
}
