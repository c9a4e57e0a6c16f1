package httpadapter

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"abusetriage/internal/api"
	"abusetriage/internal/domain"
	"abusetriage/internal/ports"
)

const dbPingTimeout = 3 * time.Second

// Server implements the generated StrictServerInterface.
type Server struct {
	reports  ports.Reports
	statuses ports.Statuses
	queries  ports.Queries
	health   ports.Health
	log      logrus.FieldLogger

	allowedOrigins []string
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(reports ports.Reports, statuses ports.Statuses, queries ports.Queries, health ports.Health, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{reports: reports, statuses: statuses, queries: queries, health: health, log: log}
}

// WithCORS answers cross-origin requests from origins. An empty list leaves
// CORS headers off.
func (s *Server) WithCORS(origins []string) *Server {
	s.allowedOrigins = origins
	return s
}

// Routes returns a chi.Router mounting the generated handlers behind the
// CORS, request ID, logging and recovery middleware.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	if len(s.allowedOrigins) > 0 {
		r.Use(corsHandler(s.allowedOrigins))
	}
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(recoverer(s.log))

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

// Strict handler methods

func (s *Server) GetHealth(ctx context.Context, _ api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	return api.GetHealth200JSONResponse{Status: "ok"}, nil
}

func (s *Server) GetDbHealth(ctx context.Context, _ api.GetDbHealthRequestObject) (api.GetDbHealthResponseObject, error) {
	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := s.health.Ping(ctx); err != nil {
		s.log.WithError(err).WithField("request_id", middleware.GetReqID(ctx)).Warn("database health check failed")
		return api.GetDbHealth503JSONResponse{Status: "error", Db: "unavailable"}, nil
	}
	return api.GetDbHealth200JSONResponse{Status: "ok", Db: "connected"}, nil
}

func (s *Server) SubmitReport(ctx context.Context, req api.SubmitReportRequestObject) (api.SubmitReportResponseObject, error) {
	b := req.Body
	sum, err := s.reports.SubmitReport(ctx, domain.ReportSubmission{
		DomainName:      b.DomainName,
		ReporterSource:  b.ReporterSource,
		AbuseType:       string(b.AbuseType),
		Timestamp:       b.Timestamp,
		ConfidenceScore: b.ConfidenceScore,
	})
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return api.SubmitReport422JSONResponse(validationBody(verr)), nil
	case err != nil:
		return nil, err
	}
	return api.SubmitReport201JSONResponse(toReportRead(sum)), nil
}

func (s *Server) ListReports(ctx context.Context, _ api.ListReportsRequestObject) (api.ListReportsResponseObject, error) {
	sums, err := s.queries.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	return api.ListReports200JSONResponse(toReportReads(sums)), nil
}

func (s *Server) GetDomainDetail(ctx context.Context, req api.GetDomainDetailRequestObject) (api.GetDomainDetailResponseObject, error) {
	detail, err := s.queries.GetDomainDetail(ctx, req.DomainName)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetDomainDetail404JSONResponse(notFoundBody), nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetDomainDetail200JSONResponse(toDomainDetail(detail)), nil
}

func (s *Server) UpdateDomainStatus(ctx context.Context, req api.UpdateDomainStatusRequestObject) (api.UpdateDomainStatusResponseObject, error) {
	b := req.Body
	rec, err := s.statuses.UpdateStatus(ctx, domain.StatusUpdate{
		DomainName:       req.DomainName,
		NewStatus:        string(b.NewStatus),
		ReviewerInitials: b.ReviewerInitials,
		Notes:            b.Notes,
	})
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return api.UpdateDomainStatus422JSONResponse(validationBody(verr)), nil
	case errors.Is(err, domain.ErrNotFound):
		return api.UpdateDomainStatus404JSONResponse(notFoundBody), nil
	case err != nil:
		return nil, err
	}
	return api.UpdateDomainStatus200JSONResponse{
		DomainName:       rec.DomainName,
		NewStatus:        api.ReviewStatus(rec.NewStatus),
		ReviewerInitials: rec.ReviewerInitials,
		Notes:            rec.Notes,
	}, nil
}
