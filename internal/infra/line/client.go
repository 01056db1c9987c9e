package line

import (
	"context"
	"fmt"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
)

// Client wraps the LINE Messaging API: webhook parsing with signature
// verification on the way in, reply/push on the way out.
type Client struct {
	channelSecret string
	bot           *messaging_api.MessagingApiAPI
}

// NewClient creates a new LINE client.
func NewClient(channelSecret, channelToken string) (*Client, error) {
	bot, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("create messaging api client: %w", err)
	}
	return &Client{
		channelSecret: channelSecret,
		bot:           bot,
	}, nil
}

// ParseRequest verifies the webhook signature and normalizes the batch
// into text-message events. Every other event type is discarded here, so
// the dispatcher only ever sees text messages.
func (c *Client) ParseRequest(r *http.Request) ([]domain.Event, error) {
	cb, err := webhook.ParseRequest(c.channelSecret, r)
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	for _, ev := range cb.Events {
		msgEvent, ok := ev.(webhook.MessageEvent)
		if !ok {
			continue
		}
		textMsg, ok := msgEvent.Message.(webhook.TextMessageContent)
		if !ok {
			continue
		}

		userID := ""
		switch src := msgEvent.Source.(type) {
		case webhook.UserSource:
			userID = src.UserId
		case webhook.GroupSource:
			userID = src.UserId
		case webhook.RoomSource:
			userID = src.UserId
		}
		if userID == "" {
			continue
		}

		events = append(events, domain.Event{
			UserID:     userID,
			ReplyToken: msgEvent.ReplyToken,
			MessageID:  textMsg.Id,
			Text:       textMsg.Text,
			Timestamp:  msgEvent.Timestamp,
		})
	}
	return events, nil
}

// Reply sends the single reply tied to an inbound event's reply token.
func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	_, err := c.bot.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("reply message: %w", err)
	}
	return nil
}

// Push sends an asynchronous message to the user.
func (c *Client) Push(ctx context.Context, userID, text string) error {
	_, err := c.bot.PushMessage(&messaging_api.PushMessageRequest{
		To: userID,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	}, "")
	if err != nil {
		return fmt.Errorf("push message: %w", err)
	}
	return nil
}
