// Package bot is the Telegram front-end. Every chat gets its own engine
// backed by that chat's view of the database.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/chatbot"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/config"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/database"
)

const (
	cmdStart    = "start"
	cmdName     = "name"
	cmdQuiz     = "quiz"
	cmdScore    = "score"
	cmdTasks    = "tasks"
	cmdActivity = "activity"
	cmdHistory  = "history"
	cmdHelp     = "help"

	callbackPrefix = "answer:"
)

const welcomeText = `Welcome to the Cybersecurity Awareness Bot!

I can answer questions about passwords, phishing, privacy and safe browsing, keep a list of security tasks for you, and quiz you on what you know.`

const helpText = `Commands:
/start - Show the welcome message
/name <your name> - Tell me your name
/quiz - Start the cybersecurity quiz
/score - Show your quiz score
/tasks - List your tasks
/activity - Show recent activity
/history - Show our conversation
/help - Show this message

You can also just write to me, for example:
"tell me about phishing"
"add task enable two-factor authentication remind me on 12/06/2026"
"complete task 1"`

// sender is the part of tgbotapi.BotAPI the handlers use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// StoreFunc returns the store of one chat.
type StoreFunc func(chatID int64) chatbot.Store

// Bot represents the Telegram bot
type Bot struct {
	api        *tgbotapi.BotAPI
	out        sender
	stores     StoreFunc
	engineOpts []chatbot.Option
	logger     *zap.Logger

	mu      sync.Mutex
	engines map[int64]*chatbot.Engine
}

// New connects to Telegram with the configured token.
func New(cfg *config.Config, db *database.DB, logger *zap.Logger) (*Bot, error) {
	if err := cfg.RequireBotToken(); err != nil {
		return nil, err
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	botAPI.Debug = cfg.Debug
	logger.Info("Authorized on Telegram", zap.String("account", botAPI.Self.UserName))

	b := newBot(botAPI, func(chatID int64) chatbot.Store {
		return db.ForUser(chatID)
	}, logger,
		chatbot.WithLogger(logger),
		chatbot.WithActivityLimit(cfg.ActivityLimit),
	)
	b.api = botAPI
	return b, nil
}

func newBot(out sender, stores StoreFunc, logger *zap.Logger, opts ...chatbot.Option) *Bot {
	return &Bot{
		out:        out,
		stores:     stores,
		engineOpts: opts,
		logger:     logger,
		engines:    make(map[int64]*chatbot.Engine),
	}
}

// Start polls for updates until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot polling")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("Stopped bot polling")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

// engine returns the chat's engine, creating it on first use.
func (b *Bot) engine(chatID int64) (*chatbot.Engine, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.engines[chatID]; ok {
		return e, nil
	}
	e, err := chatbot.New(b.stores(chatID), b.engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("create engine for chat %d: %w", chatID, err)
	}
	b.engines[chatID] = e
	b.logger.Debug("Created engine", zap.Int64("chat_id", chatID))
	return e, nil
}

// handleMessage processes incoming messages
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	b.logger.Debug("Received message", zap.Int64("chat_id", chatID), zap.String("text", message.Text))

	e, err := b.engine(chatID)
	if err != nil {
		b.logger.Error("Failed to start engine", zap.Int64("chat_id", chatID), zap.Error(err))
		b.sendMessage(chatID, "Sorry, something went wrong. Please try again later.")
		return
	}

	if !message.IsCommand() {
		b.reply(chatID, e, e.ProcessInput(message.Text))
		return
	}

	switch message.Command() {
	case cmdStart:
		text := welcomeText + "\n\n" + helpText
		if e.UserName() == "" {
			text += "\n\nWhat's your name? Reply with /name followed by your name."
		}
		b.sendMessage(chatID, text)
	case cmdName:
		name := message.CommandArguments()
		if strings.TrimSpace(name) == "" {
			b.sendMessage(chatID, "Please tell me your name, for example: /name Alice")
			return
		}
		b.sendMessage(chatID, e.SaveUserName(name))
	case cmdQuiz:
		b.reply(chatID, e, e.StartQuiz())
	case cmdScore:
		b.reply(chatID, e, e.QuizScore())
	case cmdTasks:
		b.sendMessage(chatID, e.ListTasks())
	case cmdActivity:
		b.sendMessage(chatID, "Recent activity log:\n"+strings.Join(e.ActivityLog(), "\n"))
	case cmdHistory:
		history := e.ConversationHistory()
		if len(history) == 0 {
			b.sendMessage(chatID, "No conversation yet.")
			return
		}
		b.sendMessage(chatID, "Conversation history:\n"+strings.Join(history, "\n"))
	case cmdHelp:
		b.sendMessage(chatID, helpText)
	default:
		b.sendMessage(chatID, "Unknown command. Use /help to see what I can do.")
	}
}

// handleCallback processes answer buttons.
func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || !strings.HasPrefix(callback.Data, callbackPrefix) {
		b.logger.Warn("Ignoring callback", zap.String("data", callback.Data))
		return
	}
	chatID := callback.Message.Chat.ID
	answer := strings.TrimPrefix(callback.Data, callbackPrefix)

	b.sendCallbackResponse(callback.ID, "Answer "+answer)

	e, err := b.engine(chatID)
	if err != nil {
		b.logger.Error("Failed to start engine", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}
	b.reply(chatID, e, e.AnswerQuiz(answer))
}

// reply sends text and, while a quiz question is open, its answer buttons.
func (b *Bot) reply(chatID int64, e *chatbot.Engine, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if q, ok := e.CurrentQuestion(); ok {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
		for i, option := range q.Options {
			data := callbackPrefix + strconv.Itoa(i+1)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(option, data)))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	b.send(msg)
}

// sendMessage sends a text message
func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.out.Send(msg); err != nil {
		b.logger.Warn("Failed to send message", zap.Int64("chat_id", msg.ChatID), zap.Error(err))
	}
}

// sendCallbackResponse sends a response to a callback query
func (b *Bot) sendCallbackResponse(callbackID, text string) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.out.Request(callback); err != nil {
		b.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}
