package oracle

import (
	"net/http"
	"zentravel/infras/otel"
	"zentravel/internal/domains/oracle/model/dto"
	"zentravel/internal/domains/oracle/service"
	"zentravel/shared/constant"
	"zentravel/shared/validator"
	"zentravel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Oracle
	otel    otel.Otel
}

func New(service service.Oracle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/oracle", func(routerGroup chi.Router) {
		routerGroup.Post("/sessions", handler.StartSession)
		routerGroup.Get("/sessions/{session_id}", handler.GetTranscript)
		routerGroup.Post("/sessions/{session_id}/messages", handler.Send)
	})
}

// StartSession opens a new conversation seeded with the greeting.
// @Summary Start an oracle session
// @Description Open a new conversation. The transcript starts with the oracle's fixed greeting.
// @Tags Oracle
// @Produce json
// @Success 201 {object} dto.StartSessionResponse
// @Failure 500 {object} response.Error
// @Router /v1/oracle/sessions [post]
func (handler *Handler) StartSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	res, err := handler.service.StartSession(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start oracle session")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("oracle session started")

	response.WithJSON(writer, http.StatusCreated, res)
}

// Send forwards a question to the oracle.
// @Summary Send a question
// @Description Append a question to the transcript and return the oracle's reply with bold-aware segments. Upstream failures yield a canned reply, never an error.
// @Tags Oracle
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body dto.SendRequest true "Send Request"
// @Success 200 {object} dto.SendResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/oracle/sessions/{session_id}/messages [post]
func (handler *Handler) Send(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Send")
	defer scope.End()

	sessionID := chi.URLParam(request, constant.RequestParamSession)

	req := dto.SendRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Send(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to send oracle message")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTranscript returns the whole conversation.
// @Summary Get the session transcript
// @Description Retrieve every message of a session in order, including the greeting.
// @Tags Oracle
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.TranscriptResponse
// @Failure 404 {object} response.Error
// @Router /v1/oracle/sessions/{session_id} [get]
func (handler *Handler) GetTranscript(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTranscript")
	defer scope.End()

	sessionID := chi.URLParam(request, constant.RequestParamSession)

	res, err := handler.service.GetTranscript(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to get oracle transcript")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
