package email

import (
	"strings"
	"testing"
)

func TestIsConfigured(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"empty", Config{}, false},
		{"missing inbox", Config{Host: "smtp.example.com", Port: "587", From: "noreply@example.com"}, false},
		{"complete", Config{Host: "smtp.example.com", Port: "587", From: "noreply@example.com", ContactTo: "info@example.com"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewService(tc.cfg).IsConfigured(); got != tc.want {
				t.Fatalf("IsConfigured() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSendContactFailsWhenNotConfigured(t *testing.T) {
	svc := NewService(Config{})
	if err := svc.SendContact(ContactMessage{Name: "A", ReplyTo: "a@b.c", Body: "hi"}); err == nil {
		t.Fatal("expected error when email not configured")
	}
}

func TestBuildContactMail(t *testing.T) {
	cfg := Config{
		Host: "smtp.example.com", Port: "587",
		From: "noreply@slotsplanet.com", FromName: "Slots Planet",
		ContactTo: "info@slotsplanet.com",
	}
	payload := string(buildContactMail(cfg, ContactMessage{
		Name:    "Avery",
		ReplyTo: "avery@example.com",
		Body:    "Question about partnerships.",
	}))

	for _, want := range []string{
		"To: info@slotsplanet.com\r\n",
		"From: Slots Planet <noreply@slotsplanet.com>\r\n",
		"Reply-To: avery@example.com\r\n",
		"Subject: Contact form: Avery\r\n",
		"Question about partnerships.",
	} {
		if !strings.Contains(payload, want) {
			t.Fatalf("mail payload missing %q:\n%s", want, payload)
		}
	}
}

func TestBuildContactMailStripsHeaderInjection(t *testing.T) {
	cfg := Config{
		Host: "smtp.example.com", Port: "587",
		From: "noreply@slotsplanet.com", ContactTo: "info@slotsplanet.com",
	}
	payload := string(buildContactMail(cfg, ContactMessage{
		Name:    "Mallory",
		ReplyTo: "m@example.com\r\nBcc: everyone@example.com",
		Body:    "hi",
	}))
	header := strings.SplitN(payload, "\r\n\r\n", 2)[0]
	if strings.Contains(header, "\r\nBcc:") {
		t.Fatalf("header injection survived:\n%s", payload)
	}
}
