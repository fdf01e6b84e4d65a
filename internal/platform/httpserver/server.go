package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	distributionservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service"
	distributionerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/errors"
	distributionhttp "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/transport/http"
	documentservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service"
	documenterrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/errors"
	documenthttp "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/ronicarlos/docflow-sub002/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	documents    documentservice.Module
	distribution distributionservice.Module
	metrics      http.Handler
}

func New(
	documents documentservice.Module,
	distribution distributionservice.Module,
	metricsHandler http.Handler,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		documents:    documents,
		distribution: distribution,
		metrics:      metricsHandler,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Mux exposes the routing table for tests.
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics)
	}

	s.mux.HandleFunc("POST /api/documents", s.handleCreateDocument)
	s.mux.HandleFunc("GET /api/documents", s.handleListDocuments)
	s.mux.HandleFunc("GET /api/documents/{document_id}", s.handleGetDocument)
	s.mux.HandleFunc("POST /api/documents/{document_id}/approve", s.handleApproveDocument)

	s.mux.HandleFunc("GET /api/distribution/rules", s.handleListRules)
	s.mux.HandleFunc("POST /api/distribution/rules", s.handleCreateRule)
	s.mux.HandleFunc("PUT /api/distribution/rules", s.handleSaveRules)
	s.mux.HandleFunc("PUT /api/distribution/rules/{rule_id}", s.handleUpdateRule)
	s.mux.HandleFunc("DELETE /api/distribution/rules/{rule_id}", s.handleDeactivateRule)

	s.mux.HandleFunc("GET /api/notifications", s.handleListNotifications)
	s.mux.HandleFunc("GET /api/notifications/unread-count", s.handleUnreadCount)
	s.mux.HandleFunc("POST /api/notifications/{notification_id}/read", s.handleMarkRead)

	s.mux.HandleFunc("GET /api/distribution/event-logs", s.handleListDeliveryLogs)
	s.mux.HandleFunc("GET /api/system-events", s.handleListSystemEvents)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	var req documenthttp.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDocumentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.documents.Handler.CreateDocumentHandler(r.Context(), tenantID, req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r, writeDocumentError)
	if !ok {
		return
	}
	resp, err := s.documents.Handler.ListDocumentsHandler(r.Context(), tenantID, limit)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	resp, err := s.documents.Handler.GetDocumentHandler(r.Context(), tenantID, r.PathValue("document_id"))
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveDocument(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeDocumentError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.documents.Handler.ApproveDocumentHandler(
		r.Context(),
		tenantID,
		r.PathValue("document_id"),
		userID,
		r.Header.Get("X-User-Name"),
		r.Header.Get("X-User-Email"),
	)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	resp, err := s.distribution.Handler.ListRulesHandler(r.Context(), tenantID)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	var req distributionhttp.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDistributionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.distribution.Handler.CreateRuleHandler(r.Context(), tenantID, req)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSaveRules(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	var req distributionhttp.SaveRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDistributionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.distribution.Handler.SaveRulesHandler(r.Context(), tenantID, req)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateRule(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	var req distributionhttp.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDistributionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.distribution.Handler.UpdateRuleHandler(r.Context(), tenantID, r.PathValue("rule_id"), req)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeactivateRule(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	if err := s.distribution.Handler.DeactivateRuleHandler(r.Context(), tenantID, r.PathValue("rule_id")); err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requireTenantAndUser(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r, writeDistributionError)
	if !ok {
		return
	}
	resp, err := s.distribution.Handler.ListNotificationsHandler(r.Context(), tenantID, userID, limit)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requireTenantAndUser(w, r)
	if !ok {
		return
	}
	resp, err := s.distribution.Handler.UnreadCountHandler(r.Context(), tenantID, userID)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requireTenantAndUser(w, r)
	if !ok {
		return
	}
	if err := s.distribution.Handler.MarkReadHandler(r.Context(), tenantID, userID, r.PathValue("notification_id")); err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListDeliveryLogs(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r, writeDistributionError)
	if !ok {
		return
	}
	resp, err := s.distribution.Handler.ListDeliveryLogsHandler(r.Context(), tenantID, limit)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSystemEvents(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r, writeDistributionError)
	if !ok {
		return
	}
	resp, err := s.distribution.Handler.ListSystemEventsHandler(r.Context(), tenantID, limit)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDocumentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, documenterrors.ErrDocumentNotFound):
		writeDocumentError(w, http.StatusNotFound, "document_not_found", err.Error())
	case errors.Is(err, documenterrors.ErrInvalidDocumentInput):
		writeDocumentError(w, http.StatusBadRequest, "invalid_document_input", err.Error())
	case errors.Is(err, documenterrors.ErrDocumentNotApprovable):
		writeDocumentError(w, http.StatusConflict, "document_not_approvable", err.Error())
	default:
		writeDocumentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDistributionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, distributionerrors.ErrRuleNotFound):
		writeDistributionError(w, http.StatusNotFound, "rule_not_found", err.Error())
	case errors.Is(err, distributionerrors.ErrNotificationNotFound):
		writeDistributionError(w, http.StatusNotFound, "notification_not_found", err.Error())
	case errors.Is(err, distributionerrors.ErrInvalidRuleInput):
		writeDistributionError(w, http.StatusBadRequest, "invalid_rule_input", err.Error())
	case errors.Is(err, distributionerrors.ErrDuplicateDistribution):
		writeDistributionError(w, http.StatusConflict, "duplicate_distribution", err.Error())
	case errors.Is(err, distributionerrors.ErrDistributionFailed):
		writeDistributionError(w, http.StatusInternalServerError, "distribution_failed", err.Error())
	default:
		writeDistributionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDocumentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, documenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeDistributionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, distributionhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func requireTenant(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID := strings.TrimSpace(r.Header.Get("X-Tenant-Id"))
	if tenantID == "" {
		writeDistributionError(w, http.StatusUnauthorized, "missing_tenant", "X-Tenant-Id header is required")
		return "", false
	}
	return tenantID, true
}

func requireTenantAndUser(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return "", "", false
	}
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeDistributionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", "", false
	}
	return tenantID, userID, true
}

func parseLimit(
	w http.ResponseWriter,
	r *http.Request,
	writeError func(http.ResponseWriter, int, string, string),
) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}
