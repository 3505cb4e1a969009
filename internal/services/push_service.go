package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const fcmScope = "https://www.googleapis.com/auth/firebase.messaging"

// ErrUnregistered is FCM's error code for a token whose device uninstalled or
// revoked the app. Tokens failing with it are pruned from the registry.
const ErrUnregistered = "UNREGISTERED"

// DispatchResult reports the outcome of one push message.
type DispatchResult struct {
	Token     string `json:"token"`
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code,omitempty"`
}

// PushService sends notifications through the FCM HTTP v1 API, one message
// per token. Authentication uses the Firebase service account; the oauth2
// token source caches the short-lived bearer token across a dispatch batch
// and refreshes it only on expiry.
type PushService struct {
	client    *http.Client
	projectID string
	endpoint  string
}

type serviceAccount struct {
	ProjectID string `json:"project_id"`
}

// NewPushService builds the dispatcher from FIREBASE_SERVICE_ACCOUNT_KEY (raw
// JSON) or FIREBASE_SERVICE_ACCOUNT_KEY_FILE (path). A missing or malformed
// credential is a hard error; there is no degraded mode.
func NewPushService(ctx context.Context) (*PushService, error) {
	raw := []byte(os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY"))
	if len(raw) == 0 {
		path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY_FILE")
		if path == "" {
			return nil, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_KEY or FIREBASE_SERVICE_ACCOUNT_KEY_FILE must be set")
		}
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read service account key file: %w", err)
		}
	}

	cfg, err := google.JWTConfigFromJSON(raw, fcmScope)
	if err != nil {
		return nil, fmt.Errorf("invalid Firebase service account key: %w", err)
	}

	var account serviceAccount
	if err := json.Unmarshal(raw, &account); err != nil || account.ProjectID == "" {
		return nil, fmt.Errorf("service account key is missing project_id")
	}

	return &PushService{
		client:    oauth2.NewClient(ctx, cfg.TokenSource(ctx)),
		projectID: account.ProjectID,
		endpoint:  fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", account.ProjectID),
	}, nil
}

// fcmMessage is the FCM HTTP v1 request body. The webpush block carries the
// PWA icon/badge and the click-through link.
type fcmMessage struct {
	Message struct {
		Token        string            `json:"token"`
		Notification fcmNotification   `json:"notification"`
		Data         map[string]string `json:"data,omitempty"`
		Webpush      fcmWebpush        `json:"webpush"`
	} `json:"message"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmWebpush struct {
	FCMOptions struct {
		Link string `json:"link"`
	} `json:"fcm_options"`
	Notification map[string]interface{} `json:"notification"`
}

// Dispatch sends one message per token and reports the per-token outcome. A
// token failure never stops the rest of the batch.
func (s *PushService) Dispatch(ctx context.Context, tokens []string, title, body string, data map[string]string) []DispatchResult {
	results := make([]DispatchResult, 0, len(tokens))
	for _, token := range tokens {
		result := DispatchResult{Token: token}
		if err := s.send(ctx, token, title, body, data); err != nil {
			result.ErrorCode = classifyFCMError(err)
			log.Printf("Error: FCM send to %s failed: %v", truncateToken(token), err)
		} else {
			result.Success = true
		}
		results = append(results, result)
	}
	return results
}

func (s *PushService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	var msg fcmMessage
	msg.Message.Token = token
	msg.Message.Notification = fcmNotification{Title: title, Body: body}
	msg.Message.Data = data

	link := "/calendar"
	if data != nil && data["url"] != "" {
		link = data["url"]
	}
	msg.Message.Webpush.FCMOptions.Link = link
	msg.Message.Webpush.Notification = map[string]interface{}{
		"icon":    "/icons/icon-192x192.png",
		"badge":   "/icons/icon-120x120.png",
		"vibrate": []int{200, 100, 200},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("fcm returned %d: %s", resp.StatusCode, string(errBody))
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// classifyFCMError maps a send error to the error code the sweeper acts on.
// Anything that is not a permanent registration failure is transient.
func classifyFCMError(err error) string {
	msg := err.Error()
	if strings.Contains(msg, ErrUnregistered) {
		return ErrUnregistered
	}
	if strings.Contains(msg, "context deadline exceeded") {
		return "TIMEOUT"
	}
	return "SEND_FAILED"
}

// truncateToken shortens a token for logs; full token values stay out of logs.
func truncateToken(token string) string {
	if len(token) <= 20 {
		return token
	}
	return token[:20] + "..."
}
