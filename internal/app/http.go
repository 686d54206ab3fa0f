package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"slotsplanet/api/internal/auth"
	"slotsplanet/api/internal/store"
	"slotsplanet/api/internal/upload"
)

type HTTPServer struct {
	service    *Service
	corsOrigin string
}

func NewHTTPServer(service *Service, corsOrigin string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := "ready"
		statusCode := http.StatusOK
		checks := map[string]any{
			"store": map[string]any{"status": "ok"},
		}
		if err := s.service.Ping(ctx); err != nil {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			checks["store"] = map[string]any{"status": "error", "error": err.Error()}
		}
		writeJSON(w, statusCode, map[string]any{
			"ok":     status == "ready",
			"status": status,
			"checks": checks,
		})
		return
	}

	if r.Method == http.MethodPost && r.URL.Path == "/api/auth" {
		s.handleAuth(w, r)
		return
	}

	if r.Method == http.MethodPost && r.URL.Path == "/api/contact" {
		s.handleContact(w, r)
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/casinos" {
		items, message, err := s.service.ListCasinos(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, items, message)
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/billboards" {
		items, message, err := s.service.ListBillboards(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, items, message)
		return
	}

	// Everything below mutates state and requires an admin session.
	if !s.requireAdmin(w, r) {
		return
	}

	if r.Method == http.MethodPost && r.URL.Path == "/api/upload" {
		s.handleUpload(w, r)
		return
	}

	parts := splitPath(r.URL.Path)

	if len(parts) >= 2 && parts[0] == "api" && parts[1] == "casinos" {
		s.handleCasinos(w, r, parts)
		return
	}

	if len(parts) >= 2 && parts[0] == "api" && parts[1] == "billboards" {
		s.handleBillboards(w, r, parts)
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
}

func (s *HTTPServer) handleCasinos(w http.ResponseWriter, r *http.Request, parts []string) {
	if len(parts) == 2 && r.Method == http.MethodPost {
		var body struct {
			Casinos json.RawMessage `json:"casinos"`
		}
		raw, err := rawBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		// The payload is either the bare array or wrapped in {"casinos": [...]}.
		payload := raw
		if json.Unmarshal(raw, &body) == nil && len(body.Casinos) > 0 {
			payload = body.Casinos
		}
		var items []store.Casino
		if err := json.Unmarshal(payload, &items); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
			return
		}
		saved, err := s.service.SaveCasinos(r.Context(), items)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, saved, "")
		return
	}

	if len(parts) == 3 && parts[2] == "reorder" && r.Method == http.MethodPost {
		var body struct {
			Action   string `json:"action"`
			ID       int    `json:"id"`
			Position int    `json:"position"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		items, message, err := s.service.ReorderCasinos(r.Context(), body.Action, body.ID, body.Position)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, items, message)
		return
	}

	if len(parts) == 3 && parts[2] == "add" && r.Method == http.MethodPost {
		var body store.Casino
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		saved, err := s.service.AddCasino(r.Context(), body)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, saved, "")
		return
	}

	if len(parts) == 3 {
		id, err := strconv.Atoi(parts[2])
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
			return
		}
		switch r.Method {
		case http.MethodPut:
			var body store.Casino
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
				return
			}
			body.ID = id
			saved, err := s.service.UpdateCasino(r.Context(), body)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeData(w, saved, "")
			return
		case http.MethodDelete:
			items, err := s.service.DeleteCasino(r.Context(), id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeData(w, items, "")
			return
		}
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

func (s *HTTPServer) handleBillboards(w http.ResponseWriter, r *http.Request, parts []string) {
	if len(parts) == 2 && r.Method == http.MethodPost {
		var body struct {
			Billboards json.RawMessage `json:"billboards"`
		}
		raw, err := rawBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		payload := raw
		if json.Unmarshal(raw, &body) == nil && len(body.Billboards) > 0 {
			payload = body.Billboards
		}
		var items []store.Billboard
		if err := json.Unmarshal(payload, &items); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
			return
		}
		saved, err := s.service.SaveBillboards(r.Context(), items)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, saved, "")
		return
	}

	if len(parts) == 3 && parts[2] == "reorder" && r.Method == http.MethodPost {
		var body struct {
			Action   string `json:"action"`
			ID       int    `json:"id"`
			Position int    `json:"position"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		items, message, err := s.service.ReorderBillboards(r.Context(), body.Action, body.ID, body.Position)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, items, message)
		return
	}

	if len(parts) == 3 && parts[2] == "add" && r.Method == http.MethodPost {
		var body store.Billboard
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		saved, err := s.service.AddBillboard(r.Context(), body)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, saved, "")
		return
	}

	if len(parts) == 3 {
		id, err := strconv.Atoi(parts[2])
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
			return
		}
		switch r.Method {
		case http.MethodPut:
			var body store.Billboard
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
				return
			}
			body.ID = id
			saved, err := s.service.UpdateBillboard(r.Context(), body)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeData(w, saved, "")
			return
		case http.MethodDelete:
			items, err := s.service.DeleteBillboard(r.Context(), id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeData(w, items, "")
			return
		}
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

func (s *HTTPServer) handleAuth(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Action   string `json:"action"`
		Username string `json:"username"`
		Password string `json:"password"`
		Token    string `json:"token"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	token := body.Token
	if token == "" {
		token = bearerToken(r)
	}

	switch body.Action {
	case "login":
		minted, err := s.service.Login(r.Context(), body.Username, body.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
				return
			}
			writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Login failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": minted})
	case "logout":
		if err := s.service.Logout(r.Context(), token); err != nil {
			writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Logout failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out"})
	case "verify":
		valid, err := s.service.VerifySession(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Session lookup failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "valid": valid})
	default:
		writeError(w, http.StatusBadRequest, "INVALID_ACTION", "action must be login, logout or verify")
	}
}

func (s *HTTPServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Limit the parse buffer; larger files spill to disk before the
	// relay enforces the per-category ceiling.
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid multipart form")
		return
	}

	file, header, err := formFile(r, "image", "file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "MISSING_FILE", "no file provided")
		return
	}
	defer file.Close()

	category := upload.CategoryLogo
	if r.FormValue("type") == "billboard" {
		category = upload.CategoryBillboard
	}

	url, err := s.service.Upload(r.Context(), upload.Request{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Category:    category,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "url": url})
}

func (s *HTTPServer) handleContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if err := s.service.Contact(r.Context(), body.Name, body.Email, body.Message); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Message sent"})
}

func (s *HTTPServer) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := bearerToken(r)
	valid, err := s.service.VerifySession(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Session lookup failed")
		return false
	}
	if !valid {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return false
	}
	return true
}

// formFile returns the first populated file field from the candidates.
func formFile(r *http.Request, names ...string) (multipart.File, *multipart.FileHeader, error) {
	var lastErr error
	for _, name := range names {
		file, header, err := r.FormFile(name)
		if err == nil {
			return file, header, nil
		}
		lastErr = err
	}
	return nil, nil, lastErr
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = randomRequestID()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func randomRequestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
	header.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	header.Set("Cache-Control", "no-store")
	header.Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeData wraps a successful payload in the admin envelope. message is
// optional advisory text ("Already at top", seeding notices).
func writeData(w http.ResponseWriter, data any, message string) {
	response := map[string]any{
		"success": true,
		"data":    data,
	}
	if message != "" {
		response["message"] = message
	}
	writeJSON(w, http.StatusOK, response)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"code":    code,
		"error":   message,
	})
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, code, message := mapError(err)
	writeError(w, status, code, message)
}

func mapError(err error) (status int, code, message string) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Status, domainErr.Code, domainErr.Message
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "Server error"
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, http.ErrBodyReadAfterClose) {
			return nil
		}
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func rawBody(r *http.Request) (json.RawMessage, error) {
	if r.Body == nil {
		return nil, fmt.Errorf("empty body")
	}
	defer r.Body.Close()
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON body")
	}
	return raw, nil
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
