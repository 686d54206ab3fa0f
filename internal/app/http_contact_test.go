package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotsplanet/api/internal/auth"
	"slotsplanet/api/internal/config"
	"slotsplanet/api/internal/email"
	"slotsplanet/api/internal/session"
	"slotsplanet/api/internal/store"
)

type fakeMailer struct {
	configured bool
	sent       []email.ContactMessage
	sendErr    error
}

func (f *fakeMailer) IsConfigured() bool { return f.configured }

func (f *fakeMailer) SendContact(msg email.ContactMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newContactServer(t *testing.T, mail mailer) *testServer {
	t.Helper()
	memStore := store.NewEmptyMemoryStore()
	gate, err := auth.NewGate("admin", "admin123", 24*time.Hour, session.NewMemoryStore())
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}
	service := New(config.Config{}, memStore, gate, nil, mail, true)
	server := httptest.NewServer(NewHTTPServer(service, "*").Handler())
	t.Cleanup(server.Close)
	return &testServer{Server: server, service: service, store: memStore}
}

func TestContactEndpointDeliversMessage(t *testing.T) {
	mail := &fakeMailer{configured: true}
	ts := newContactServer(t, mail)

	status, body := ts.postJSON(t, "/api/contact", "", map[string]any{
		"name":    "Avery",
		"email":   "avery@example.com",
		"message": "Question about partnerships.",
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(mail.sent))
	}
	msg := mail.sent[0]
	if msg.Name != "Avery" || msg.ReplyTo != "avery@example.com" || msg.Body != "Question about partnerships." {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestContactEndpointValidation(t *testing.T) {
	ts := newContactServer(t, &fakeMailer{configured: true})

	status, body := ts.postJSON(t, "/api/contact", "", map[string]any{
		"name":    "",
		"email":   "a@b.c",
		"message": "hi",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", status, body)
	}
	if code := errorCode(t, body); code != "VALIDATION_ERROR" {
		t.Fatalf("code = %s", code)
	}
}

func TestContactEndpointWhenMailUnconfigured(t *testing.T) {
	ts := newContactServer(t, &fakeMailer{configured: false})

	status, body := ts.postJSON(t, "/api/contact", "", map[string]any{
		"name":    "Avery",
		"email":   "a@b.c",
		"message": "hi",
	})
	if status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, body %s", status, body)
	}
	if code := errorCode(t, body); code != "EMAIL_NOT_CONFIGURED" {
		t.Fatalf("code = %s", code)
	}
}

func TestContactEndpointDeliveryFailure(t *testing.T) {
	ts := newContactServer(t, &fakeMailer{configured: true, sendErr: errTimeout{}})

	status, body := ts.postJSON(t, "/api/contact", "", map[string]any{
		"name":    "Avery",
		"email":   "a@b.c",
		"message": "hi",
	})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, body %s", status, body)
	}
	if code := errorCode(t, body); code != "EMAIL_FAILED" {
		t.Fatalf("code = %s", code)
	}
}

type errTimeout struct{}

func (errTimeout) Error() string { return "smtp timeout" }
