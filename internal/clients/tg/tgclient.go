package tg

import (
	"context"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	updateTimeout       = 60
	photoMimeType       = "image/jpeg"
	maxPhotoBytes       = 10 << 20
)

type tokenGetter interface {
	Token() string
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client     *tgbotapi.BotAPI
	httpClient *http.Client
	timeout    time.Duration
}

// New connects to the bot API. timeout bounds the handling of one update.
func New(tokenGetter tokenGetter, timeout time.Duration) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{
		client:     client,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, handler messageHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updateTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, handler)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, handler messageHandler) {
	if update.Message == nil {
		return
	}
	logger.Info(update.Message.Text, zap.String("user", update.Message.From.UserName))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg := messages.Message{
		Text:   update.Message.Text,
		UserID: update.Message.From.ID,
	}
	if len(update.Message.Photo) > 0 {
		msg.Text = update.Message.Caption
		img, err := c.downloadPhoto(ctx, update.Message.Photo)
		if err != nil {
			logger.Error("cannot download photo", zap.Error(err))
			_ = c.SendMessage("Sorry, I couldn't read that photo. Please try again.", msg.UserID)
			return
		}
		msg.Image = img
	}

	err := handler.HandleIncomingMessage(ctx, msg)
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}

// downloadPhoto fetches the largest size Telegram offers.
func (c *Client) downloadPhoto(ctx context.Context, sizes []tgbotapi.PhotoSize) (*assistant.Image, error) {
	largest := sizes[0]
	for _, s := range sizes[1:] {
		if s.FileSize > largest.FileSize {
			largest = s
		}
	}

	url, err := c.client.GetFileDirectURL(largest.FileID)
	if err != nil {
		return nil, errors.Wrap(err, "get file url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build file request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "download file")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}
	return &assistant.Image{MimeType: photoMimeType, Data: data}, nil
}
