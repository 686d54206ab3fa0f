package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"slotsplanet/api/internal/auth"
	"slotsplanet/api/internal/config"
	"slotsplanet/api/internal/email"
	"slotsplanet/api/internal/ranking"
	"slotsplanet/api/internal/store"
	"slotsplanet/api/internal/upload"
)

const temporaryStorageNotice = "Using temporary storage - configure a database for persistence"

// Reorder actions accepted by the reorder endpoints.
const (
	ActionMove   = "move"
	ActionUp     = "up"
	ActionDown   = "down"
	ActionDelete = "delete"
)

// DataStore is the persistence surface the service needs. Both the
// Postgres store and the in-memory fallback implement it.
type DataStore interface {
	Ping(context.Context) error
	ListCasinos(context.Context) ([]store.Casino, error)
	ReplaceCasinos(context.Context, []store.Casino) error
	InsertCasino(context.Context, store.Casino) (store.Casino, error)
	UpdateCasino(context.Context, store.Casino) (store.Casino, error)
	DeleteCasino(context.Context, int) error
	ListBillboards(context.Context) ([]store.Billboard, error)
	ReplaceBillboards(context.Context, []store.Billboard) error
	InsertBillboard(context.Context, store.Billboard) (store.Billboard, error)
	UpdateBillboard(context.Context, store.Billboard) (store.Billboard, error)
	DeleteBillboard(context.Context, int) error
}

// Uploader relays validated files to object storage. It is nil when no
// storage backend is configured.
type Uploader interface {
	Upload(ctx context.Context, req upload.Request) (string, error)
}

type mailer interface {
	IsConfigured() bool
	SendContact(email.ContactMessage) error
}

// Service orchestrates the admin operations: list/save, the reordering
// engine, the session gate, the upload relay and the contact relay. The
// store holds the only authoritative copy of each collection; every
// mutation commits the complete collection and hands it back as the new
// canonical state.
type Service struct {
	cfg        config.Config
	store      DataStore
	gate       *auth.Gate
	relay      Uploader
	mail       mailer
	persistent bool
}

// New wires a Service. relay may be nil when object storage is not
// configured; mail may be nil when SMTP is not configured. persistent
// is false when the volatile in-memory fallback store is in use.
func New(cfg config.Config, dataStore DataStore, gate *auth.Gate, relay Uploader, mail mailer, persistent bool) *Service {
	return &Service{
		cfg:        cfg,
		store:      dataStore,
		gate:       gate,
		relay:      relay,
		mail:       mail,
		persistent: persistent,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// --- Sessions ---

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	return s.gate.Login(ctx, username, password)
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.gate.Logout(ctx, token)
}

func (s *Service) VerifySession(ctx context.Context, token string) (bool, error) {
	return s.gate.Verify(ctx, token)
}

// --- Casinos ---

// ListCasinos returns the leaderboard ordered by rank. An empty backing
// store is initialized with the default dataset first, so the public
// site never renders an empty page.
func (s *Service) ListCasinos(ctx context.Context) ([]store.Casino, string, error) {
	items, err := s.store.ListCasinos(ctx)
	if err != nil {
		return nil, "", backingError(err)
	}
	if len(items) == 0 {
		seeded := store.DefaultCasinos()
		if err := s.store.ReplaceCasinos(ctx, seeded); err != nil {
			return nil, "", backingError(err)
		}
		return seeded, "Database initialized with default casino data", nil
	}
	message := ""
	if !s.persistent {
		message = temporaryStorageNotice
	}
	return items, message, nil
}

// SaveCasinos validates and persists the complete leaderboard. Missing
// ids are assigned, ranks are rewritten densely in the order received,
// and the whole collection is committed as one replace.
func (s *Service) SaveCasinos(ctx context.Context, items []store.Casino) ([]store.Casino, error) {
	items = assignCasinoIDs(items)
	normalized := ranking.Normalize(items)
	for i, c := range normalized {
		if errs := validateCasino(c); len(errs) > 0 {
			return nil, domainError(http.StatusBadRequest, "VALIDATION_ERROR",
				fmt.Sprintf("Casino %d validation failed: %s", i+1, strings.Join(errs, ", ")))
		}
	}
	if err := s.store.ReplaceCasinos(ctx, normalized); err != nil {
		return nil, backingError(err)
	}
	return normalized, nil
}

// ReorderCasinos applies one reorder action and commits the result. The
// boundary cases (already at top/bottom) report a message and leave the
// stored collection untouched.
func (s *Service) ReorderCasinos(ctx context.Context, action string, id, dest int) ([]store.Casino, string, error) {
	items, err := s.store.ListCasinos(ctx)
	if err != nil {
		return nil, "", backingError(err)
	}

	result, message, err := applyReorder(items, action, id, dest, "Casino")
	if err != nil {
		return nil, "", err
	}
	if message != "" {
		return items, message, nil
	}
	if err := s.store.ReplaceCasinos(ctx, result); err != nil {
		return nil, "", backingError(err)
	}
	return result, "", nil
}

// AddCasino appends a new entry at the bottom of the leaderboard.
func (s *Service) AddCasino(ctx context.Context, c store.Casino) (store.Casino, error) {
	items, err := s.store.ListCasinos(ctx)
	if err != nil {
		return store.Casino{}, backingError(err)
	}
	c.ID = nextCasinoID(items)
	c = c.AtPosition(len(items) + 1)
	if errs := validateCasino(c); len(errs) > 0 {
		return store.Casino{}, domainError(http.StatusBadRequest, "VALIDATION_ERROR",
			"Casino validation failed: "+strings.Join(errs, ", "))
	}
	saved, err := s.store.InsertCasino(ctx, c)
	if err != nil {
		return store.Casino{}, backingError(err)
	}
	return saved, nil
}

// UpdateCasino replaces the payload fields of one entry. Rank is pinned
// to the stored value: rank changes only happen through reordering, so
// an edit can never break density.
func (s *Service) UpdateCasino(ctx context.Context, c store.Casino) (store.Casino, error) {
	items, err := s.store.ListCasinos(ctx)
	if err != nil {
		return store.Casino{}, backingError(err)
	}
	existing, ok := findCasino(items, c.ID)
	if !ok {
		return store.Casino{}, domainError(http.StatusNotFound, "NOT_FOUND", "Casino not found")
	}
	c = c.AtPosition(existing.Rank)
	if errs := validateCasino(c); len(errs) > 0 {
		return store.Casino{}, domainError(http.StatusBadRequest, "VALIDATION_ERROR",
			"Casino validation failed: "+strings.Join(errs, ", "))
	}
	saved, err := s.store.UpdateCasino(ctx, c)
	if err != nil {
		if store.IsNotFound(err) {
			return store.Casino{}, domainError(http.StatusNotFound, "NOT_FOUND", "Casino not found")
		}
		return store.Casino{}, backingError(err)
	}
	return saved, nil
}

// DeleteCasino removes one entry and renumbers the survivors so the
// leaderboard stays dense, committed as one replace.
func (s *Service) DeleteCasino(ctx context.Context, id int) ([]store.Casino, error) {
	items, _, err := s.ReorderCasinos(ctx, ActionDelete, id, 0)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// --- Billboards ---

// ListBillboards returns the rotation ordered by position, seeding an
// empty store with the default slides.
func (s *Service) ListBillboards(ctx context.Context) ([]store.Billboard, string, error) {
	items, err := s.store.ListBillboards(ctx)
	if err != nil {
		return nil, "", backingError(err)
	}
	if len(items) == 0 {
		seeded := store.DefaultBillboards()
		if err := s.store.ReplaceBillboards(ctx, seeded); err != nil {
			return nil, "", backingError(err)
		}
		return seeded, "Database initialized with default billboard data", nil
	}
	message := ""
	if !s.persistent {
		message = temporaryStorageNotice
	}
	return items, message, nil
}

func (s *Service) SaveBillboards(ctx context.Context, items []store.Billboard) ([]store.Billboard, error) {
	items = assignBillboardIDs(items)
	normalized := ranking.Normalize(items)
	for i, b := range normalized {
		if errs := validateBillboard(b); len(errs) > 0 {
			return nil, domainError(http.StatusBadRequest, "VALIDATION_ERROR",
				fmt.Sprintf("Billboard %d validation failed: %s", i+1, strings.Join(errs, ", ")))
		}
	}
	if err := s.store.ReplaceBillboards(ctx, normalized); err != nil {
		return nil, backingError(err)
	}
	return normalized, nil
}

func (s *Service) ReorderBillboards(ctx context.Context, action string, id, dest int) ([]store.Billboard, string, error) {
	items, err := s.store.ListBillboards(ctx)
	if err != nil {
		return nil, "", backingError(err)
	}

	result, message, err := applyReorder(items, action, id, dest, "Billboard")
	if err != nil {
		return nil, "", err
	}
	if message != "" {
		return items, message, nil
	}
	if err := s.store.ReplaceBillboards(ctx, result); err != nil {
		return nil, "", backingError(err)
	}
	return result, "", nil
}

func (s *Service) AddBillboard(ctx context.Context, b store.Billboard) (store.Billboard, error) {
	items, err := s.store.ListBillboards(ctx)
	if err != nil {
		return store.Billboard{}, backingError(err)
	}
	b.ID = nextBillboardID(items)
	b = b.AtPosition(len(items) + 1)
	if errs := validateBillboard(b); len(errs) > 0 {
		return store.Billboard{}, domainError(http.StatusBadRequest, "VALIDATION_ERROR",
			"Billboard validation failed: "+strings.Join(errs, ", "))
	}
	saved, err := s.store.InsertBillboard(ctx, b)
	if err != nil {
		return store.Billboard{}, backingError(err)
	}
	return saved, nil
}

func (s *Service) UpdateBillboard(ctx context.Context, b store.Billboard) (store.Billboard, error) {
	items, err := s.store.ListBillboards(ctx)
	if err != nil {
		return store.Billboard{}, backingError(err)
	}
	existing, ok := findBillboard(items, b.ID)
	if !ok {
		return store.Billboard{}, domainError(http.StatusNotFound, "NOT_FOUND", "Billboard not found")
	}
	b = b.AtPosition(existing.Order)
	if errs := validateBillboard(b); len(errs) > 0 {
		return store.Billboard{}, domainError(http.StatusBadRequest, "VALIDATION_ERROR",
			"Billboard validation failed: "+strings.Join(errs, ", "))
	}
	saved, err := s.store.UpdateBillboard(ctx, b)
	if err != nil {
		if store.IsNotFound(err) {
			return store.Billboard{}, domainError(http.StatusNotFound, "NOT_FOUND", "Billboard not found")
		}
		return store.Billboard{}, backingError(err)
	}
	return saved, nil
}

func (s *Service) DeleteBillboard(ctx context.Context, id int) ([]store.Billboard, error) {
	items, _, err := s.ReorderBillboards(ctx, ActionDelete, id, 0)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// --- Uploads ---

// Upload relays a validated admin image to object storage and returns
// its public URL.
func (s *Service) Upload(ctx context.Context, req upload.Request) (string, error) {
	if s.relay == nil {
		return "", domainError(http.StatusServiceUnavailable, "STORAGE_NOT_CONFIGURED",
			"Object storage not configured. Please set up your environment variables.")
	}
	url, err := s.relay.Upload(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrInvalidType):
			return "", domainError(http.StatusBadRequest, "INVALID_TYPE",
				"Invalid file type. Please upload a valid image (JPEG, PNG, GIF, WebP)")
		case errors.Is(err, upload.ErrTooLarge):
			return "", domainError(http.StatusBadRequest, "TOO_LARGE", err.Error())
		case errors.Is(err, upload.ErrBucketMissing):
			return "", domainError(http.StatusInternalServerError, "BUCKET_MISSING",
				"Storage bucket not found. Please ensure it exists in your storage dashboard.")
		case errors.Is(err, upload.ErrAccessDenied):
			return "", domainError(http.StatusInternalServerError, "ACCESS_DENIED",
				"Storage permission denied. Please check your bucket policies.")
		}
		return "", domainError(http.StatusInternalServerError, "UPLOAD_FAILED", err.Error())
	}
	return url, nil
}

// --- Contact ---

// Contact relays a contact-form submission to the site inbox.
func (s *Service) Contact(_ context.Context, name, replyTo, body string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(body) == "" {
		return domainError(http.StatusBadRequest, "VALIDATION_ERROR", "Name and message are required")
	}
	if !strings.Contains(replyTo, "@") {
		return domainError(http.StatusBadRequest, "VALIDATION_ERROR", "A valid email address is required")
	}
	if s.mail == nil || !s.mail.IsConfigured() {
		return domainError(http.StatusServiceUnavailable, "EMAIL_NOT_CONFIGURED", "Contact form is not available")
	}
	if err := s.mail.SendContact(email.ContactMessage{Name: name, ReplyTo: replyTo, Body: body}); err != nil {
		return domainError(http.StatusInternalServerError, "EMAIL_FAILED", "Could not deliver your message")
	}
	return nil
}

// --- helpers ---

// applyReorder runs one pure engine operation. A non-empty message means
// a benign no-op (boundary move); the caller must not commit.
func applyReorder[T ranking.Ranked[T]](items []T, action string, id, dest int, kind string) ([]T, string, error) {
	var result []T
	var err error
	switch action {
	case ActionMove:
		result, err = ranking.MoveTo(items, id, dest)
	case ActionUp:
		result, err = ranking.MoveUp(items, id)
	case ActionDown:
		result, err = ranking.MoveDown(items, id)
	case ActionDelete:
		result, err = ranking.Remove(items, id)
	default:
		return nil, "", domainError(http.StatusBadRequest, "INVALID_ACTION",
			fmt.Sprintf("Unknown reorder action %q", action))
	}
	switch {
	case errors.Is(err, ranking.ErrNotFound):
		return nil, "", domainError(http.StatusNotFound, "NOT_FOUND", kind+" not found")
	case errors.Is(err, ranking.ErrAtTop):
		return items, "Already at top", nil
	case errors.Is(err, ranking.ErrAtBottom):
		return items, "Already at bottom", nil
	case err != nil:
		return nil, "", err
	}
	return result, "", nil
}

func validateCasino(c store.Casino) []string {
	var errs []string
	if strings.TrimSpace(c.Logo) == "" {
		errs = append(errs, "Logo URL is required")
	}
	if strings.TrimSpace(c.URL) == "" {
		errs = append(errs, "Casino URL is required")
	}
	if c.Rank < 1 {
		errs = append(errs, "Valid rank is required")
	}
	if c.Rating < 0 || c.Rating > 10 {
		errs = append(errs, "Rating must be between 0 and 10")
	}
	if c.Stars < 1 || c.Stars > 5 {
		errs = append(errs, "Stars must be between 1 and 5")
	}
	return errs
}

func validateBillboard(b store.Billboard) []string {
	var errs []string
	required := []struct {
		value string
		label string
	}{
		{b.Title, "Title"},
		{b.Subtitle, "Subtitle"},
		{b.Description, "Description"},
		{b.ButtonText, "Button text"},
		{b.ButtonURL, "Button URL"},
		{b.BackgroundImage, "Background image"},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, field.label+" is required")
		}
	}
	return errs
}

func assignCasinoIDs(items []store.Casino) []store.Casino {
	out := make([]store.Casino, len(items))
	copy(out, items)
	next := nextCasinoID(out)
	for i := range out {
		if out[i].ID == 0 {
			out[i].ID = next
			next++
		}
	}
	return out
}

func assignBillboardIDs(items []store.Billboard) []store.Billboard {
	out := make([]store.Billboard, len(items))
	copy(out, items)
	next := nextBillboardID(out)
	for i := range out {
		if out[i].ID == 0 {
			out[i].ID = next
			next++
		}
	}
	return out
}

func nextCasinoID(items []store.Casino) int {
	next := 1
	for _, c := range items {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

func nextBillboardID(items []store.Billboard) int {
	next := 1
	for _, b := range items {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return next
}

func findCasino(items []store.Casino, id int) (store.Casino, bool) {
	for _, c := range items {
		if c.ID == id {
			return c, true
		}
	}
	return store.Casino{}, false
}

func findBillboard(items []store.Billboard, id int) (store.Billboard, bool) {
	for _, b := range items {
		if b.ID == id {
			return b, true
		}
	}
	return store.Billboard{}, false
}
