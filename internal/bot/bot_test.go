package bot

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/prepdeck/internal/deck"
	"github.com/example/prepdeck/internal/mastery"
	"github.com/example/prepdeck/internal/storage"
	"github.com/example/prepdeck/pkg/models"
)

type fakeMessenger struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeMessenger) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeMessenger) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// last returns the text and keyboard of the most recent send or edit.
func (f *fakeMessenger) last(t *testing.T) (int64, string, *tgbotapi.InlineKeyboardMarkup) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		t.Fatal("nothing was sent")
	}
	switch m := f.sent[len(f.sent)-1].(type) {
	case tgbotapi.MessageConfig:
		markup, _ := m.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		return m.ChatID, m.Text, &markup
	case tgbotapi.EditMessageTextConfig:
		return m.ChatID, m.Text, m.ReplyMarkup
	default:
		t.Fatalf("unexpected chattable %T", m)
		return 0, "", nil
	}
}

func (f *fakeMessenger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

var testCards = []models.Flashcard{
	{ID: "sq-12", Front: "12² = ?", Back: "144", Category: models.CategorySquares, Examples: []string{"12 × 12 = 144"}},
	{ID: "sq-13", Front: "13² = ?", Back: "169", Category: models.CategorySquares},
	{ID: "cube-3", Front: "3³ = ?", Back: "27", Category: models.CategoryCubes},
}

func newTestBot(t *testing.T, config Config) (*Bot, *fakeMessenger, *mastery.Tracker) {
	t.Helper()
	catalog, err := deck.NewCatalog(testCards)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	tr := mastery.New(
		storage.NewProgressStore(storage.NewMemoryBackend(), "", nil),
		mastery.WithClock(func() time.Time { return now }),
	)
	api := &fakeMessenger{}
	return New(api, tr, catalog, config, nil), api, tr
}

func command(chatID int64, text string) *tgbotapi.Message {
	name := strings.Fields(text)[0]
	return &tgbotapi.Message{
		MessageID: 1,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: chatID},
		From:      &tgbotapi.User{ID: chatID},
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}
}

func callback(chatID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: chatID},
		Message: &tgbotapi.Message{MessageID: 10, Chat: &tgbotapi.Chat{ID: chatID}},
		Data:    data,
	}
}

func firstCallback(markup *tgbotapi.InlineKeyboardMarkup) string {
	if markup == nil || len(markup.InlineKeyboard) == 0 || len(markup.InlineKeyboard[0]) == 0 {
		return ""
	}
	data := markup.InlineKeyboard[0][0].CallbackData
	if data == nil {
		return ""
	}
	return *data
}

func TestStudySessionFlow(t *testing.T) {
	ctx := context.Background()
	b, api, tr := newTestBot(t, DefaultConfig())

	if err := b.HandleCommand(ctx, command(1, "/study carres")); err != nil {
		t.Fatalf("study: %v", err)
	}
	_, text, markup := api.last(t)
	if !strings.Contains(text, "Carte 1/2") || !strings.Contains(text, "12² = ?") || strings.Contains(text, "144") {
		t.Fatalf("unexpected first card:\n%s", text)
	}
	if got := firstCallback(markup); got != "flip:sq-12" {
		t.Fatalf("first button = %q, want flip:sq-12", got)
	}

	if err := b.HandleCallback(ctx, callback(1, "flip:sq-12")); err != nil {
		t.Fatalf("flip: %v", err)
	}
	_, text, markup = api.last(t)
	if !strings.Contains(text, "144") || !strings.Contains(text, "12 × 12 = 144") {
		t.Fatalf("flipped card misses the answer:\n%s", text)
	}
	if got := firstCallback(markup); got != "ans:1:sq-12" {
		t.Fatalf("first button = %q, want ans:1:sq-12", got)
	}

	if err := b.HandleCallback(ctx, callback(1, "ans:1:sq-12")); err != nil {
		t.Fatalf("answer: %v", err)
	}
	p, ok := tr.Progress(ctx, "sq-12")
	if !ok || p.MasteryLevel != 1 {
		t.Fatalf("answer not recorded: %+v, %v", p, ok)
	}
	_, text, _ = api.last(t)
	if !strings.Contains(text, "Carte 2/2") || !strings.Contains(text, "13² = ?") {
		t.Fatalf("expected second card:\n%s", text)
	}

	if err := b.HandleCallback(ctx, callback(1, "skip:sq-13")); err != nil {
		t.Fatalf("skip: %v", err)
	}
	_, text, _ = api.last(t)
	if !strings.Contains(text, "Session terminée") || !strings.Contains(text, "✅ 1") {
		t.Fatalf("expected summary:\n%s", text)
	}
	if _, ok := tr.Progress(ctx, "sq-13"); ok {
		t.Fatal("skipped card must not be recorded")
	}

	b.mu.Lock()
	_, active := b.sessions[1]
	b.mu.Unlock()
	if active {
		t.Fatal("finished session should be dropped")
	}
}

func TestStudyFromMenuCallback(t *testing.T) {
	ctx := context.Background()
	b, api, _ := newTestBot(t, DefaultConfig())

	if err := b.HandleCallback(ctx, callback(1, "cat:cubes:shuffle")); err != nil {
		t.Fatalf("callback: %v", err)
	}
	_, text, _ := api.last(t)
	if !strings.Contains(text, "3³ = ?") || !strings.Contains(text, "Carte 1/1") {
		t.Fatalf("unexpected card:\n%s", text)
	}
	if len(api.requests) != 1 {
		t.Fatalf("callback was not answered")
	}
}

func TestReviewWithNothingDue(t *testing.T) {
	ctx := context.Background()
	b, api, tr := newTestBot(t, DefaultConfig())

	// Level 3 and a future next review puts cube-3 out of the due set.
	for i := 0; i < 3; i++ {
		if _, err := tr.RecordAnswer(ctx, "cube-3", true); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.HandleCommand(ctx, command(1, "/study cubes review")); err != nil {
		t.Fatalf("study: %v", err)
	}
	_, text, _ := api.last(t)
	if !strings.Contains(text, "Aucune carte à réviser") {
		t.Fatalf("unexpected reply:\n%s", text)
	}
}

func TestStudyRejectsBadArguments(t *testing.T) {
	ctx := context.Background()
	b, api, _ := newTestBot(t, DefaultConfig())

	tests := []struct {
		text string
		want string
	}{
		{"/study geometrie", "Catégorie inconnue"},
		{"/study all fast", "Mode inconnu"},
		{"/study", "Choisissez une catégorie"},
		{"/frobnicate", "Commande inconnue"},
	}
	for _, tt := range tests {
		if err := b.HandleCommand(ctx, command(1, tt.text)); err != nil {
			t.Fatalf("%s: %v", tt.text, err)
		}
		if _, text, _ := api.last(t); !strings.Contains(text, tt.want) {
			t.Errorf("%s: reply %q does not contain %q", tt.text, text, tt.want)
		}
	}
}

func TestCardCallbackWithoutSession(t *testing.T) {
	b, api, _ := newTestBot(t, DefaultConfig())
	if err := b.HandleCallback(context.Background(), callback(1, "flip:sq-12")); err != nil {
		t.Fatalf("flip: %v", err)
	}
	if _, text, _ := api.last(t); !strings.Contains(text, "Aucune session") {
		t.Fatalf("unexpected reply %q", text)
	}
}

func TestInvalidAnswerCallback(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBot(t, DefaultConfig())
	if err := b.HandleCommand(ctx, command(1, "/study all")); err != nil {
		t.Fatal(err)
	}
	for _, data := range []string{"ans:maybe:sq-12", "ans:1"} {
		if err := b.HandleCallback(ctx, callback(1, data)); !errors.Is(err, errInvalidAnswer) {
			t.Fatalf("%s: error = %v, want errInvalidAnswer", data, err)
		}
	}
}

func TestRepeatedAnswerTapIsIgnored(t *testing.T) {
	ctx := context.Background()
	b, api, tr := newTestBot(t, DefaultConfig())

	if err := b.HandleCommand(ctx, command(1, "/study carres shuffle")); err != nil {
		t.Fatalf("study: %v", err)
	}
	_, _, markup := api.last(t)
	if err := b.HandleCallback(ctx, callback(1, firstCallback(markup))); err != nil {
		t.Fatalf("flip: %v", err)
	}
	_, _, markup = api.last(t)
	answer := firstCallback(markup)
	if !strings.HasPrefix(answer, "ans:1:sq-") {
		t.Fatalf("first button = %q, want an answer for a square", answer)
	}

	if err := b.HandleCallback(ctx, callback(1, answer)); err != nil {
		t.Fatalf("answer: %v", err)
	}
	sent := api.count()
	if err := b.HandleCallback(ctx, callback(1, answer)); err != nil {
		t.Fatalf("repeated answer: %v", err)
	}

	if n := len(tr.AllProgress(ctx)); n != 1 {
		t.Fatalf("recorded %d cards, want 1", n)
	}
	if api.count() != sent {
		t.Fatal("repeated tap should not edit the message")
	}
	b.mu.Lock()
	correct, _ := b.sessions[1].Score()
	b.mu.Unlock()
	if correct != 1 {
		t.Fatalf("session counted %d correct answers, want 1", correct)
	}
}

func TestPreviousCardCallback(t *testing.T) {
	ctx := context.Background()
	b, api, _ := newTestBot(t, DefaultConfig())

	if err := b.HandleCommand(ctx, command(1, "/study carres")); err != nil {
		t.Fatalf("study: %v", err)
	}
	_, _, markup := api.last(t)
	if data := markup.InlineKeyboard[1][0].CallbackData; data == nil || *data != "skip:sq-12" {
		t.Fatalf("first card should not offer previous, nav starts with %v", data)
	}

	if err := b.HandleCallback(ctx, callback(1, "skip:sq-12")); err != nil {
		t.Fatalf("skip: %v", err)
	}
	_, _, markup = api.last(t)
	prev := markup.InlineKeyboard[1][0].CallbackData
	if prev == nil || *prev != "prev:sq-13" {
		t.Fatalf("nav starts with %v, want prev:sq-13", prev)
	}

	if err := b.HandleCallback(ctx, callback(1, *prev)); err != nil {
		t.Fatalf("prev: %v", err)
	}
	_, text, _ := api.last(t)
	if !strings.Contains(text, "Carte 1/2") || !strings.Contains(text, "12² = ?") {
		t.Fatalf("expected first card again:\n%s", text)
	}
}

func TestStatsCommand(t *testing.T) {
	ctx := context.Background()
	b, api, tr := newTestBot(t, DefaultConfig())
	for i := 0; i < 3; i++ {
		if _, err := tr.RecordAnswer(ctx, "sq-12", true); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := tr.RecordAnswer(ctx, "cube-3", false); err != nil {
		t.Fatal(err)
	}

	if err := b.HandleCommand(ctx, command(1, "/stats")); err != nil {
		t.Fatalf("stats: %v", err)
	}
	_, text, _ := api.last(t)
	if !strings.Contains(text, "Total: 3 cartes · 🆕 1 · 📚 1 · ✅ 1") {
		t.Fatalf("unexpected stats:\n%s", text)
	}

	if err := b.HandleCommand(ctx, command(1, "/stats carres")); err != nil {
		t.Fatalf("stats carres: %v", err)
	}
	_, text, _ = api.last(t)
	if !strings.Contains(text, "2 cartes · 🆕 1 · 📚 0 · ✅ 1 (50%)") {
		t.Fatalf("unexpected category stats:\n%s", text)
	}
}

func TestResetCommand(t *testing.T) {
	ctx := context.Background()
	b, api, tr := newTestBot(t, DefaultConfig())
	for _, id := range []string{"sq-12", "sq-13"} {
		if _, err := tr.RecordAnswer(ctx, id, true); err != nil {
			t.Fatal(err)
		}
	}

	if err := b.HandleCommand(ctx, command(1, "/reset sq-12")); err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.Progress(ctx, "sq-12"); ok {
		t.Fatal("sq-12 should be reset")
	}
	if _, ok := tr.Progress(ctx, "sq-13"); !ok {
		t.Fatal("sq-13 should be kept")
	}

	if err := b.HandleCommand(ctx, command(1, "/reset nope")); err != nil {
		t.Fatal(err)
	}
	if _, text, _ := api.last(t); !strings.Contains(text, "Carte inconnue") {
		t.Fatalf("unexpected reply %q", text)
	}

	if err := b.HandleCommand(ctx, command(1, "/reset all")); err != nil {
		t.Fatal(err)
	}
	if len(tr.AllProgress(ctx)) != 0 {
		t.Fatal("progress should be empty after /reset all")
	}
}

func TestOwnerRestriction(t *testing.T) {
	ctx := context.Background()
	b, api, _ := newTestBot(t, Config{OwnerChatID: 7})

	if err := b.HandleCommand(ctx, command(8, "/study all")); err != nil {
		t.Fatal(err)
	}
	chatID, text, _ := api.last(t)
	if chatID != 8 || !strings.Contains(text, "privé") {
		t.Fatalf("stranger got %q", text)
	}
	if err := b.HandleCallback(ctx, callback(8, "cat:all:smart")); err != nil {
		t.Fatal(err)
	}
	if len(b.sessions) != 0 {
		t.Fatal("stranger must not start a session")
	}

	if err := b.HandleCommand(ctx, command(7, "/study all")); err != nil {
		t.Fatal(err)
	}
	if _, text, _ := api.last(t); !strings.Contains(text, "Carte 1/3") {
		t.Fatalf("owner got %q", text)
	}
}

func TestSendDueReminder(t *testing.T) {
	b, _, _ := newTestBot(t, DefaultConfig())
	if err := b.SendDueReminder(3); !errors.Is(err, ErrNoOwnerChat) {
		t.Fatalf("error = %v, want ErrNoOwnerChat", err)
	}

	b, api, _ := newTestBot(t, Config{OwnerChatID: 7})
	if err := b.SendDueReminder(3); err != nil {
		t.Fatalf("SendDueReminder: %v", err)
	}
	chatID, text, markup := api.last(t)
	if chatID != 7 || text != "⏰ 3 cartes sont à réviser!" {
		t.Fatalf("unexpected reminder %d %q", chatID, text)
	}
	if got := firstCallback(markup); got != "cat:all:review" {
		t.Fatalf("reminder button = %q", got)
	}
}

func TestRunHandlesUpdatesUntilClosed(t *testing.T) {
	b, api, _ := newTestBot(t, DefaultConfig())
	updates := make(chan tgbotapi.Update, 2)
	updates <- tgbotapi.Update{UpdateID: 1, Message: command(1, "/help")}
	updates <- tgbotapi.Update{UpdateID: 2, Message: &tgbotapi.Message{Text: "bonjour", Chat: &tgbotapi.Chat{ID: 1}}}
	close(updates)

	b.Run(context.Background(), updates)
	if api.count() != 2 {
		t.Fatalf("sent %d messages, want 2", api.count())
	}
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data   string
		action string
		args   []string
	}{
		{"menu", "menu", []string{}},
		{"flip:sq-12", "flip", []string{"sq-12"}},
		{"ans:1:sq-12", "ans", []string{"1", "sq-12"}},
		{"cat:carres:smart", "cat", []string{"carres", "smart"}},
	}
	for _, tt := range tests {
		action, args := parseCallback(tt.data)
		if action != tt.action || !reflect.DeepEqual(args, tt.args) {
			t.Errorf("parseCallback(%q) = %q %v", tt.data, action, args)
		}
	}
}

func TestMainMenuButtons(t *testing.T) {
	b, _, _ := newTestBot(t, DefaultConfig())
	rows := b.MainMenuButtons()
	if len(rows) != 4 {
		t.Fatalf("expected 2 category rows and 2 extra rows, got %d", len(rows))
	}
	if rows[0][0].CallbackData != "cat:carres:smart" || rows[1][0].CallbackData != "cat:cubes:smart" {
		t.Fatalf("unexpected category buttons %+v", rows[:2])
	}
	if kb := createKeyboard(rows); len(kb.InlineKeyboard) != 4 || len(kb.InlineKeyboard[2]) != 2 {
		t.Fatalf("unexpected keyboard %+v", kb)
	}
}
