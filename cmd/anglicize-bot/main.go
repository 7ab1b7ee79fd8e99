// Command anglicize-bot is a Telegram bot that replies to every message
// with its English transcription. A reply carries an inline keyboard that
// toggles the transcription between its original casing and ALL CAPS.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ad/anglicize"
)

const ConfigFileName = "/data/options.json"

// Config ...
type Config struct {
	Token string `json:"TOKEN"`
}

func main() {
	token := ""
	var initFromFile = false

	if _, err := os.Stat(ConfigFileName); err == nil {
		jsonFile, err := os.Open(ConfigFileName)
		if err == nil {
			config := &Config{}

			byteValue, _ := io.ReadAll(jsonFile)
			if err = json.Unmarshal(byteValue, &config); err != nil {
				log.Printf("error on unmarshal config from file %s\n", err.Error())
			} else {
				token = config.Token

				initFromFile = true
			}
		}
	}

	if !initFromFile {
		flag.StringVar(&token, "TOKEN", lookupEnvOrString("TOKEN", token), "telegram bot token")
		flag.Parse()
	}

	if token == "" {
		log.Fatal("TOKEN env var not set")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(handler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("bot started")

	b.Start(ctx)
}

func lookupEnvOrString(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}

	return defaultVal
}

type callbackPayload struct {
	C string `json:"c"`
}

func handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		message := update.CallbackQuery.Message.Message
		if message == nil {
			// The message is too old for the API to hand back its
			// content; nothing to re-case.
			return
		}

		payload := &callbackPayload{}
		if err := json.Unmarshal([]byte(update.CallbackQuery.Data), payload); err != nil {
			payload.C = update.CallbackQuery.Data
		}

		messageText := message.Text
		kb := &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{},
		}

		switch payload.C {
		case "caps":
			messageText = strings.ToUpper(messageText)
			kb.InlineKeyboard = [][]models.InlineKeyboardButton{{lowerButton()}}
		case "lower":
			messageText = strings.ToLower(messageText)
			kb.InlineKeyboard = [][]models.InlineKeyboardButton{{capsButton()}}
		default:
			return
		}

		editedMessage := &bot.EditMessageTextParams{
			ChatID:      message.Chat.ID,
			MessageID:   message.ID,
			Text:        messageText,
			ReplyMarkup: kb,
		}

		b.EditMessageText(ctx, editedMessage)

		return
	}

	if update.Message != nil && update.Message.Text != "" {
		if update.Message.Text == "/start" {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: update.Message.Chat.ID,
				Text:   "Send me any text and I will reply with its English transcription.",
			})

			return
		}

		kb := &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{{capsButton()}},
		}

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      update.Message.Chat.ID,
			Text:        foldMarks(anglicize.String(update.Message.Text)),
			ReplyMarkup: kb,
		})

		return
	}

	log.Printf("message %#v\n", update)
}

func capsButton() models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: "⬆️ CAPS", CallbackData: minifyJson([]byte(`{"c": "caps"}`))}
}

func lowerButton() models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: "⬇️ lower", CallbackData: minifyJson([]byte(`{"c": "lower"}`))}
}
