package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/attendmark/attendmark/internal/client/models"
	"github.com/attendmark/attendmark/internal/client/session"
	"github.com/attendmark/attendmark/internal/logging"
)

// HTTPClient is the concrete Client. One instance is shared for the
// process lifetime; its transport policy (JSON negotiation, wire logging,
// token attachment) is fixed at construction.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  *session.TokenStore
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens *session.TokenStore, publicMarkers []string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: newAuthTransport(nil, tokens, publicMarkers, log),
			Timeout:   timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// ---- request plumbing ----

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// mapStatus translates a non-2xx response into an error kind.
func mapStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrNotFound, status)
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, status)
	case status >= 400:
		return fmt.Errorf("%w: status %d", ErrServer, status)
	default:
		return nil
	}
}

func decodeJSON(body io.Reader, v any) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// postJSON sends v as a JSON body and returns the raw response.
func (c *HTTPClient) postJSON(ctx context.Context, path string, v any) (*http.Response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// ---- auth ----

// SignUp creates an account. True iff the server answered 200; every
// failure kind degrades to false.
func (c *HTTPClient) SignUp(ctx context.Context, user models.User) bool {
	resp, err := c.postJSON(ctx, "/public/create-user", user)
	if err != nil {
		c.log.Error(ctx, "sign-up failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error(ctx, "sign-up failed", "status", resp.StatusCode)
		return false
	}
	return true
}

// Login authenticates with email and password. On success the issued
// token is persisted into the session store before the response is
// returned to the caller.
func (c *HTTPClient) Login(ctx context.Context, reqBody models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := c.postJSON(ctx, "/public/login", reqBody)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return out, err
	}
	if err := decodeJSON(resp.Body, &out); err != nil {
		return out, err
	}

	if err := c.tokens.Save(ctx, out.Token); err != nil {
		return out, fmt.Errorf("persisting token: %w", err)
	}
	return out, nil
}

// LoginWithGoogle exchanges a Google id-token for a bearer token. The
// caller owns persistence.
func (c *HTTPClient) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	resp, err := c.postJSON(ctx, "/public/google", map[string]string{"idToken": idToken})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return "", err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := decodeJSON(resp.Body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ---- events ----

func (c *HTTPClient) GetEvents(ctx context.Context) ([]models.Event, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/user/all", "", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var events []models.Event
	if err := decodeJSON(resp.Body, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AddEventToUser submits a new event. True iff 200; transport failures
// propagate so the caller can distinguish them from a server refusal.
func (c *HTTPClient) AddEventToUser(ctx context.Context, event models.Event) (bool, error) {
	resp, err := c.postJSON(ctx, "/user/add-event", event)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

// UploadParticipants posts the participant list as a multipart form with
// a single "file" part. All failure kinds degrade to false; the cause is
// logged once here.
func (c *HTTPClient) UploadParticipants(ctx context.Context, eventID string, fileBytes []byte, fileName string) bool {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", "application/octet-stream")

	part, err := mw.CreatePart(h)
	if err == nil {
		_, err = part.Write(fileBytes)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		c.log.Error(ctx, "participants upload failed", "event_id", eventID, "error", err)
		return false
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/event/upload-participants/"+eventID, mw.FormDataContentType(), &buf)
	if err != nil {
		c.log.Error(ctx, "participants upload failed", "event_id", eventID, "error", err)
		return false
	}

	resp, err := c.do(req)
	if err != nil {
		c.log.Error(ctx, "participants upload failed", "event_id", eventID, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error(ctx, "participants upload failed",
			"event_id", eventID, "status", resp.StatusCode)
		return false
	}
	return true
}

// SendQR asks the server to mail QR codes to an event's participants.
// All failure kinds degrade to false.
func (c *HTTPClient) SendQR(ctx context.Context, eventID string) bool {
	req, err := c.newRequest(ctx, http.MethodPost, "/event/send-qr/"+eventID, "", nil)
	if err != nil {
		c.log.Error(ctx, "send-qr failed", "event_id", eventID, "error", err)
		return false
	}
	resp, err := c.do(req)
	if err != nil {
		c.log.Error(ctx, "send-qr failed", "event_id", eventID, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error(ctx, "send-qr failed", "event_id", eventID, "status", resp.StatusCode)
		return false
	}
	return true
}

func (c *HTTPClient) FindEventByID(ctx context.Context, eventID string) (models.Event, error) {
	var event models.Event

	req, err := c.newRequest(ctx, http.MethodGet, "/event/get/"+eventID, "", nil)
	if err != nil {
		return event, err
	}
	resp, err := c.do(req)
	if err != nil {
		return event, err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return event, err
	}
	if err := decodeJSON(resp.Body, &event); err != nil {
		return event, err
	}
	return event, nil
}

// ---- attendance ----

// MarkAttendance forwards a scanned QR payload verbatim as the request
// body. The payload is opaque at this layer; the server defines its shape.
// The response is either a bare JSON boolean or a {"success": ...} object.
func (c *HTTPClient) MarkAttendance(ctx context.Context, rawQR string) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/event/markAttendance", "application/json", strings.NewReader(rawQR))
	if err != nil {
		return false, err
	}
	resp, err := c.do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return false, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var ok bool
	if err := json.Unmarshal(body, &ok); err == nil {
		return ok, nil
	}

	var ar models.AttendanceResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return false, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ar.Success, nil
}
