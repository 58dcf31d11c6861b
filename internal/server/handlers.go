package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mateo/resume-checkup/internal/pipeline"
	"github.com/mateo/resume-checkup/internal/rendering"
	"github.com/mateo/resume-checkup/internal/server/middleware"
	"github.com/mateo/resume-checkup/internal/session"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// SessionResponse is the response for POST /sessions.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// SessionMeResponse is the response for GET /sessions/me.
type SessionMeResponse struct {
	SessionID    string `json:"session_id"`
	Pro          bool   `json:"pro"`
	LastScanDate string `json:"last_scan_date,omitempty"`
}

// CheckoutResponse is the response for POST /billing/checkout.
type CheckoutResponse struct {
	CheckoutID string `json:"checkout_id"`
	URL        string `json:"url"`
}

// ConfirmResponse is the response for GET /billing/confirm.
type ConfirmResponse struct {
	Pro bool `json:"pro"`
}

// ExportRequest is the request body for POST /bullets/export.
type ExportRequest struct {
	Bullets []string `json:"bullets"`
}

// handleCreateSession creates an anonymous session and returns its token.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Create()

	token, err := s.tokens.GenerateToken(sess.ID)
	if err != nil {
		s.log.Error("failed to generate session token", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		SessionID: sess.ID.String(),
		Token:     token,
	})
}

// handleSessionMe returns the authenticated session's state.
func (s *Server) handleSessionMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, SessionMeResponse{
		SessionID:    sess.ID.String(),
		Pro:          sess.Pro,
		LastScanDate: sess.LastScanDate,
	})
}

// handleScan runs one full scan over an uploaded resume. The multipart field
// "resume" carries the file; "top" overrides the number of ranked matches and
// "format=pdf" returns the report as a rendered PDF instead of JSON.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	today := s.now().Format(session.DateLayout)
	if !s.store.AllowScan(sess.ID, today) {
		s.handleError(w, &ErrDailyLimit{})
		return
	}

	filename, data, err := readUpload(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	topN := s.cfg.TopN
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		n, err := strconv.Atoi(topStr)
		if err != nil || n < 1 {
			s.handleError(w, &ErrValidation{Field: "top", Message: "must be a positive integer"})
			return
		}
		topN = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.cfg.ScanTimeoutSeconds)*time.Second)
	defer cancel()

	report, err := s.runner.Scan(ctx, pipeline.Input{
		Filename: filename,
		Data:     data,
		TopN:     topN,
		Pro:      sess.Pro,
	})
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.store.MarkScanned(sess.ID, today)

	if r.URL.Query().Get("format") == "pdf" {
		s.writeReportPDF(ctx, w, report)
		return
	}

	// The extracted text is pipeline-internal; don't echo the document back.
	report.ResumeText = ""
	s.jsonResponse(w, http.StatusOK, report)
}

// readUpload reads the "resume" multipart field.
func readUpload(r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, &ErrValidation{Field: "resume", Message: "multipart form with a resume file is required"}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return "", nil, &ErrValidation{Field: "resume", Message: "resume file is required"}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, &ErrValidation{Field: "resume", Message: "failed to read uploaded file"}
	}

	return header.Filename, data, nil
}

// writeReportPDF renders the report to PDF and streams it as a download.
func (s *Server) writeReportPDF(ctx context.Context, w http.ResponseWriter, report *pipeline.Report) {
	html, err := rendering.ReportHTML(report)
	if err != nil {
		s.log.Error("failed to render report HTML", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	pdf, err := s.pdf.PDF(ctx, html)
	if err != nil {
		s.log.Error("failed to render report PDF", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume-checkup-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.log.Error("failed to write PDF response", zap.Error(err))
	}
}

// handleExportBullets returns the submitted bullet lines as a plain-text
// download.
func (s *Server) handleExportBullets(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentSession(w, r); !ok {
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Field: "body", Message: "invalid JSON body"})
		return
	}
	if len(req.Bullets) == 0 {
		s.handleError(w, &ErrValidation{Field: "bullets", Message: "at least one bullet is required"})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bullets.txt"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, rendering.BulletText(req.Bullets)); err != nil {
		s.log.Error("failed to write bullet export", zap.Error(err))
	}
}

// handleCheckout starts a hosted checkout for the Pro upgrade.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	if sess.Pro {
		s.handleError(w, &ErrValidation{Field: "session", Message: "session already has Pro"})
		return
	}

	checkout, err := s.provider.CreateCheckout(r.Context(), sess.ID.String())
	if err != nil {
		s.log.Error("failed to create checkout", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "payment provider unavailable")
		return
	}

	s.store.SetPendingCheckout(sess.ID, checkout.ID)

	s.jsonResponse(w, http.StatusCreated, CheckoutResponse{
		CheckoutID: checkout.ID,
		URL:        checkout.URL,
	})
}

// handleConfirm verifies a completed checkout with the provider and grants
// Pro. The checkout_id query parameter is matched against the session's
// pending checkout and then verified server-side; the redirect alone proves
// nothing.
func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	checkoutID := r.URL.Query().Get("checkout_id")
	if checkoutID == "" {
		s.handleError(w, &ErrValidation{Field: "checkout_id", Message: "checkout_id is required"})
		return
	}
	if sess.PendingCheckoutID == "" || sess.PendingCheckoutID != checkoutID {
		s.handleError(w, &ErrCheckoutMismatch{CheckoutID: checkoutID})
		return
	}

	paid, err := s.provider.VerifyCheckout(r.Context(), checkoutID)
	if err != nil {
		s.log.Error("failed to verify checkout", zap.Error(err), zap.String("checkout_id", checkoutID))
		s.errorResponse(w, http.StatusBadGateway, "payment provider unavailable")
		return
	}
	if !paid {
		s.handleError(w, &ErrCheckoutUnpaid{CheckoutID: checkoutID})
		return
	}

	s.store.GrantPro(sess.ID)

	s.jsonResponse(w, http.StatusOK, ConfirmResponse{Pro: true})
}

// currentSession resolves the authenticated session, writing the error
// response itself when the session is missing or expired.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	id, err := middleware.GetSessionID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return session.Session{}, false
	}

	sess, ok := s.store.Get(id)
	if !ok {
		s.handleError(w, &ErrSessionNotFound{SessionID: id})
		return session.Session{}, false
	}
	return sess, true
}

// handleError maps a typed error to its HTTP status.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("internal error", zap.Error(err))
		s.errorResponse(w, status, "internal error")
		return
	}
	s.errorResponse(w, status, err.Error())
}
