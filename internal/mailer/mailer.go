package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/eyesoft/studio-backend/internal/events"
)

const defaultBaseURL = "https://api.resend.com"

// placeholderKeyPrefix marks a key that was provisioned but never replaced
// with a real credential; sending with it would fail at the provider anyway.
const placeholderKeyPrefix = "re_placeholder"

// SendResult is the terminal outcome of one send attempt. There is no retry:
// every failure mode (missing credential, provider rejection, transport
// error) ends up here instead of propagating to the consumer.
type SendResult struct {
	Success bool
	Error   string
}

// Sender delivers the two booking notification emails.
type Sender interface {
	SendConfirmation(ctx context.Context, msg events.BookingConfirmation) SendResult
	SendAdminAlert(ctx context.Context, msg events.BookingAdminAlert) SendResult
}

type Config struct {
	APIKey      string
	BaseURL     string
	FromBooking string
	FromNotify  string
	AdminEmail  string
}

// ResendMailer sends through the Resend HTTP API.
type ResendMailer struct {
	httpClient *http.Client
	cfg        Config
}

func NewResendMailer(cfg Config) *ResendMailer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &ResendMailer{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
	}
}

func (m *ResendMailer) SendConfirmation(ctx context.Context, msg events.BookingConfirmation) SendResult {
	if res, ok := m.checkKey("booking confirmation"); !ok {
		return res
	}

	body, err := renderConfirmation(msg)
	if err != nil {
		log.Printf("[Mailer] render confirmation for %s: %v", msg.BookingID, err)
		return SendResult{Success: false, Error: err.Error()}
	}

	return m.send(ctx, sendRequest{
		From:    m.cfg.FromBooking,
		To:      []string{msg.Email},
		Subject: "Your Photography Booking Request Received!",
		HTML:    body,
	}, "confirmation", msg.BookingID)
}

func (m *ResendMailer) SendAdminAlert(ctx context.Context, msg events.BookingAdminAlert) SendResult {
	if res, ok := m.checkKey("admin notification"); !ok {
		return res
	}

	body, err := renderAdminAlert(msg)
	if err != nil {
		log.Printf("[Mailer] render admin alert for %s: %v", msg.BookingID, err)
		return SendResult{Success: false, Error: err.Error()}
	}

	subject := fmt.Sprintf("New Booking Request: %s - %s (%s)", msg.Name, msg.Tier, msg.Category)
	return m.send(ctx, sendRequest{
		From:    m.cfg.FromNotify,
		To:      []string{m.cfg.AdminEmail},
		Subject: subject,
		HTML:    body,
	}, "admin alert", msg.BookingID)
}

func (m *ResendMailer) checkKey(what string) (SendResult, bool) {
	key := m.cfg.APIKey
	if key == "" || strings.HasPrefix(key, placeholderKeyPrefix) {
		log.Printf("[Mailer] CRITICAL: no usable Resend API key configured, dropping %s", what)
		return SendResult{Success: false, Error: "email service (API key) not configured"}, false
	}
	return SendResult{}, true
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// send performs one provider call and normalizes every failure into a
// SendResult; it never returns an error to the caller.
func (m *ResendMailer) send(ctx context.Context, payload sendRequest, kind, bookingID string) SendResult {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Mailer] marshal %s for %s: %v", kind, bookingID, err)
		return SendResult{Success: false, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Mailer] build request for %s %s: %v", kind, bookingID, err)
		return SendResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Printf("[Mailer] send %s for %s: %v", kind, bookingID, err)
		return SendResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		msg := providerError(resp.StatusCode, raw)
		log.Printf("[Mailer] %s for %s rejected: %s", kind, bookingID, msg)
		return SendResult{Success: false, Error: msg}
	}

	var ok sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		log.Printf("[Mailer] decode response for %s %s: %v", kind, bookingID, err)
		return SendResult{Success: false, Error: err.Error()}
	}

	log.Printf("[Mailer] %s for %s sent (provider id %s)", kind, bookingID, ok.ID)
	return SendResult{Success: true}
}

func providerError(status int, raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Message != "" {
		return er.Message
	}
	return fmt.Sprintf("provider returned status %d", status)
}
