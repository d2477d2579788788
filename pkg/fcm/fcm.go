package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the FCM limit on tokens per multicast request.
const MaxMulticastTokens = 500

// Client wraps Firebase Cloud Messaging functionality
type Client struct {
	messagingClient *messaging.Client
	log             logrus.FieldLogger
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(ctx context.Context, credentialsFile string, log logrus.FieldLogger) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log = log.WithField("component", "fcm")
	log.Info("client initialized")
	return &Client{
		messagingClient: messagingClient,
		log:             log,
	}, nil
}

// NotificationData contains the data to send in a push notification
type NotificationData struct {
	Title    string
	Body     string
	ImageURL string            // Optional notification image
	Data     map[string]string // Custom data payload
}

// SendResult summarizes a multicast across all chunks.
type SendResult struct {
	SuccessCount int
	FailureCount int
	// InvalidTokens were rejected as unregistered or malformed and should be forgotten.
	InvalidTokens []string
}

// SendToDevices sends a push notification to multiple device tokens. Tokens
// are split into chunks of MaxMulticastTokens. A chunk-level transport error
// aborts the remaining chunks and is returned together with partial results.
func (c *Client) SendToDevices(ctx context.Context, tokens []string, notification NotificationData) (*SendResult, error) {
	result := &SendResult{}
	if len(tokens) == 0 {
		return result, nil
	}

	for _, chunk := range chunkTokens(tokens, MaxMulticastTokens) {
		message := &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title:    notification.Title,
				Body:     notification.Body,
				ImageURL: notification.ImageURL,
			},
			Data: notification.Data,
			Webpush: &messaging.WebpushConfig{
				Notification: &messaging.WebpushNotification{
					Title: notification.Title,
					Body:  notification.Body,
					Icon:  "/logo.png",
				},
			},
		}

		response, err := c.messagingClient.SendEachForMulticast(ctx, message)
		if err != nil {
			return result, fmt.Errorf("failed to send FCM multicast message: %w", err)
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for i, resp := range response.Responses {
			if resp.Success {
				continue
			}
			if isInvalidToken(resp.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[i])
			}
			c.log.WithError(resp.Error).WithField("token", redact(chunk[i])).Debug("send to token failed")
		}
	}

	c.log.WithFields(logrus.Fields{
		"success": result.SuccessCount,
		"failure": result.FailureCount,
		"invalid": len(result.InvalidTokens),
	}).Info("multicast sent")
	return result, nil
}

// isInvalidToken reports whether the gateway rejected the token itself, as
// opposed to a transient or quota failure.
func isInvalidToken(err error) bool {
	if err == nil {
		return false
	}
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

func chunkTokens(tokens []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(tokens); start += size {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, tokens[start:end])
	}
	return chunks
}

func redact(token string) string {
	if len(token) <= 12 {
		return token
	}
	return token[:12] + "..."
}
