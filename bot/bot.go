package bot

import (
	"context"
	"log"
	"strings"
	"sync"

	"restaurant-telegram/config"
	"restaurant-telegram/db"
	"restaurant-telegram/models"
	"restaurant-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const welcomeText = `🤖 Welcome to the Korean Restaurant Chatbot!

💡 Steps:
1. Say: Show me the menu
2. Say: I want to order
3. Add your items (e.g. 2 bibimbap, 1 banana milk)
4. Choose: Delivery or Pickup
5. Provide: Address & Contact Number
6. Choose: Card or Cash on Delivery
7. Type: confirm to place the order ✅
8. Type: track ORD-XXXXXX to check status`

// Bot renders the conversation over Telegram. It owns one session per chat,
// cached in memory and persisted to Postgres when a pool is configured, and
// hands every plain-text message to the chat engine. Updates arrive on a
// single goroutine, so turns within one chat are naturally serialized.
type Bot struct {
	api  *tgbotapi.BotAPI
	cfg  *config.Config
	chat *services.Chatbot

	sessions   map[int64]*models.Session
	sessionsMu sync.RWMutex
}

func New(cfg *config.Config, chat *services.Chatbot) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		cfg:      cfg,
		chat:     chat,
		sessions: make(map[int64]*models.Session),
	}, nil
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "How to order"},
			{Command: "menu", Description: "Show the menu"},
			{Command: "reset", Description: "Start over"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

func (b *Bot) Start() {
	_ = b.setBotCommands()
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			continue
		}

		switch text {
		case "/start":
			b.send(chatID, welcomeText)
		case "/menu":
			b.handleTurn(chatID, "Show me the menu")
		case "/reset":
			b.handleReset(chatID)
		default:
			b.handleTurn(chatID, text)
		}
	}
}

func (b *Bot) handleTurn(chatID int64, text string) {
	ctx := context.Background()
	sess := b.getSession(ctx, chatID)
	response := b.chat.Respond(ctx, sess, text)
	b.saveSession(ctx, chatID, sess)
	b.send(chatID, response)
}

func (b *Bot) handleReset(chatID int64) {
	ctx := context.Background()
	b.sessionsMu.Lock()
	delete(b.sessions, chatID)
	b.sessionsMu.Unlock()
	if db.Pool != nil {
		if err := services.DeleteSession(ctx, chatID); err != nil {
			log.Printf("delete session chat_id=%d: %v", chatID, err)
		}
	}
	b.send(chatID, "🔄 Chat reset. Say 'Show me the menu' to start again.")
}

// getSession checks the in-memory cache first and falls back to the
// database for sessions that survived a restart.
func (b *Bot) getSession(ctx context.Context, chatID int64) *models.Session {
	b.sessionsMu.RLock()
	sess, ok := b.sessions[chatID]
	b.sessionsMu.RUnlock()
	if ok {
		return sess
	}

	sess = models.NewSession()
	if db.Pool != nil {
		stored, err := services.GetSession(ctx, chatID)
		if err != nil {
			log.Printf("load session chat_id=%d: %v", chatID, err)
		} else {
			sess = stored
		}
	}
	b.sessionsMu.Lock()
	b.sessions[chatID] = sess
	b.sessionsMu.Unlock()
	return sess
}

func (b *Bot) saveSession(ctx context.Context, chatID int64, sess *models.Session) {
	b.sessionsMu.Lock()
	b.sessions[chatID] = sess
	b.sessionsMu.Unlock()
	if db.Pool != nil {
		if err := services.SaveSession(ctx, chatID, sess); err != nil {
			log.Printf("save session chat_id=%d: %v", chatID, err)
		}
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}
