package bot

import (
	"fmt"
	"strings"

	"github.com/example/prepdeck/internal/deck"
	"github.com/example/prepdeck/internal/mastery"
	"github.com/example/prepdeck/internal/session"
	"github.com/example/prepdeck/pkg/models"
)

// Callback data. Parameterised callbacks use ':' as separator.
// Card callbacks end with the ID of the card they were rendered for.
const (
	callbackFlip     = "flip"
	callbackSkip     = "skip"
	callbackPrev     = "prev"
	callbackMenu     = "menu"
	callbackStats    = "stats"
	callbackCategory = "cat"
	callbackAnswer   = "ans"
)

const allCategories = "all"

func studyCallback(category string, mode session.Mode) string {
	return callbackCategory + ":" + category + ":" + string(mode)
}

func cardCallback(action, cardID string) string {
	return action + ":" + cardID
}

func answerCallback(correct bool, cardID string) string {
	verdict := "0"
	if correct {
		verdict = "1"
	}
	return callbackAnswer + ":" + verdict + ":" + cardID
}

// parseCallback splits callback data into its action and arguments.
func parseCallback(data string) (string, []string) {
	parts := strings.Split(data, ":")
	return parts[0], parts[1:]
}

// MainMenuButtons lists one smart session per category plus whole-deck sessions.
func (b *Bot) MainMenuButtons() [][]MenuButton {
	var rows [][]MenuButton
	for _, info := range b.catalog.Categories() {
		rows = append(rows, []MenuButton{{
			Text:         fmt.Sprintf("%s %s", info.Icon, info.Name),
			CallbackData: studyCallback(string(info.ID), session.ModeSmart),
		}})
	}
	rows = append(rows,
		[]MenuButton{
			{Text: "🔁 À réviser", CallbackData: studyCallback(allCategories, session.ModeReview)},
			{Text: "🎲 Mélange", CallbackData: studyCallback(allCategories, session.ModeShuffle)},
		},
		[]MenuButton{{Text: "📊 Statistiques", CallbackData: callbackStats}},
	)
	return rows
}

func cardButtons(cardID string, flipped, hasPrev bool) [][]MenuButton {
	var nav []MenuButton
	if hasPrev {
		nav = append(nav, MenuButton{Text: "⏮ Précédent", CallbackData: cardCallback(callbackPrev, cardID)})
	}
	nav = append(nav,
		MenuButton{Text: "⏭ Passer", CallbackData: cardCallback(callbackSkip, cardID)},
		MenuButton{Text: "🏠 Menu", CallbackData: callbackMenu},
	)
	if !flipped {
		return [][]MenuButton{{{Text: "👀 Voir la réponse", CallbackData: cardCallback(callbackFlip, cardID)}}, nav}
	}
	return [][]MenuButton{
		{
			{Text: "✅ Je savais", CallbackData: answerCallback(true, cardID)},
			{Text: "❌ À revoir", CallbackData: answerCallback(false, cardID)},
		},
		nav,
	}
}

func backToMenuButtons() [][]MenuButton {
	return [][]MenuButton{{{Text: "🏠 Menu", CallbackData: callbackMenu}}}
}

const menuText = "🎯 Flashcards\n\nChoisissez une catégorie pour une session intelligente, " +
	"ou révisez les cartes dues de toutes les catégories."

const helpText = "📖 Aide\n\n" +
	"/menu - Choisir une catégorie\n" +
	"/study <catégorie|all> [smart|review|shuffle] - Lancer une session\n" +
	"/stats [catégorie] - Voir la progression\n" +
	"/reset <carte|all> - Réinitialiser la progression\n" +
	"/help - Afficher cette aide\n\n" +
	"🔄 Intervalles de révision:\n" +
	"Niveau 1: 1 min, 2: 5 min, 3: 30 min, 4: 1 jour, 5: 1 semaine\n\n" +
	"Modes:\n" +
	"• smart - les cartes les plus urgentes d'abord\n" +
	"• review - seulement les cartes à réviser\n" +
	"• shuffle - toutes les cartes dans le désordre"

// renderCard formats a card face for the chat.
func renderCard(card models.Flashcard, progress models.CardProgress, seen bool, flipped bool, index, total int) string {
	info := deck.Info(card.Category)

	var text strings.Builder
	fmt.Fprintf(&text, "🃏 Carte %d/%d · %s %s\n", index+1, total, info.Icon, info.Name)
	if seen {
		fmt.Fprintf(&text, "Niveau %d/%d", progress.MasteryLevel, mastery.MaxLevel)
		if progress.Streak > 1 {
			fmt.Fprintf(&text, " · 🔥 %d", progress.Streak)
		}
		text.WriteString("\n")
	} else {
		text.WriteString("🆕 Nouvelle carte\n")
	}

	fmt.Fprintf(&text, "\n❓ %s\n", card.Front)
	if !flipped {
		return text.String()
	}

	fmt.Fprintf(&text, "\n💡 %s\n", card.Back)
	if len(card.Examples) > 0 {
		text.WriteString("\nExemples:\n")
		for _, ex := range card.Examples {
			fmt.Fprintf(&text, "• %s\n", ex)
		}
	}
	return text.String()
}

func renderSummary(correct, incorrect int) string {
	answered := correct + incorrect
	if answered == 0 {
		return "🏁 Session terminée.\n\nAucune réponse enregistrée."
	}
	return fmt.Sprintf("🏁 Session terminée!\n\n✅ %d correcte(s)\n❌ %d à revoir\n🎯 %.0f%% de réussite",
		correct, incorrect, float64(correct)/float64(answered)*100)
}

func renderStatsLine(label string, s models.MasteryStats) string {
	percent := 0.0
	if s.Total > 0 {
		percent = float64(s.Mastered) / float64(s.Total) * 100
	}
	return fmt.Sprintf("%s: %d cartes · 🆕 %d · 📚 %d · ✅ %d (%.0f%%)", label, s.Total, s.New, s.Learning, s.Mastered, percent)
}

func reminderText(count int) string {
	if count == 1 {
		return "⏰ 1 carte est à réviser!"
	}
	return fmt.Sprintf("⏰ %d cartes sont à réviser!", count)
}
