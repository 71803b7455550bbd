package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

// NotificationRequest is the push gateway notification payload.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// Client is a thin client of the push notification gateway.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(client *http.Client) *Client {
	return &Client{
		endpoint: viper.GetString("push.endpoint"),
		apiKey:   viper.GetString("push.apikey"),
		client:   client,
	}
}

// SendNotification submits one notification request. Any non-2xx reply
// is an error; retry policy belongs to the task queue, not here.
func (c *Client) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway returns status: %d", resp.StatusCode)
	}

	return nil
}
