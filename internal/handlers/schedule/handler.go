package schedule

import (
	"net/http"
	"zentravel/infras/otel"
	"zentravel/internal/domains/schedule/model/dto"
	"zentravel/internal/domains/schedule/service"
	"zentravel/shared/constant"
	"zentravel/shared/validator"
	"zentravel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/dates", handler.GetDates)
		routerGroup.Get("/search", handler.Search)
		routerGroup.Get("/{date}", handler.GetByDate)
		routerGroup.Get("/{date}/timeline", handler.GetTimeline)
		routerGroup.Post("/gesture", handler.ResolveGesture)
	})
}

// GetDates returns the selectable day index.
// @Summary Get schedule dates
// @Description Retrieve every date that has itinerary items, with weekday, lunar and location labels.
// @Tags Schedule
// @Produce json
// @Success 200 {object} dto.GetDatesResponse
// @Failure 500 {object} response.Error
// @Router /v1/schedule/dates [get]
func (handler *Handler) GetDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDates")
	defer scope.End()

	res, err := handler.service.GetDates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule dates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetByDate returns the itinerary of a single day.
// @Summary Get schedule items by date
// @Description Retrieve all itinerary items of one day in authored order. Unknown dates return an empty day.
// @Tags Schedule
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetScheduleResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{date} [get]
func (handler *Handler) GetByDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetByDate")
	defer scope.End()

	date := chi.URLParam(request, constant.RequestParamDate)

	res, err := handler.service.GetByDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get schedule items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Search scans the whole itinerary for a query string.
// @Summary Search the itinerary
// @Description Case-insensitive search across titles, locations, descriptions, categories and guide content, with match spans for highlighting. An empty query returns everything.
// @Tags Schedule
// @Produce json
// @Param q query string false "Query string"
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} response.Error
// @Router /v1/schedule/search [get]
func (handler *Handler) Search(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	query := request.URL.Query().Get(constant.RequestParamQuery)

	res, err := handler.service.Search(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("query", query).Msg("failed to search schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTimeline returns the render-ready timeline of a single day.
// @Summary Get the day timeline
// @Description Retrieve the timeline rows of one day: time column, node style, category badge.
// @Tags Schedule
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetTimelineResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{date}/timeline [get]
func (handler *Handler) GetTimeline(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeline")
	defer scope.End()

	date := chi.URLParam(request, constant.RequestParamDate)

	res, err := handler.service.GetTimeline(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get schedule timeline")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ResolveGesture resolves a swipe release into a date selection.
// @Summary Resolve a swipe gesture
// @Description Apply the swipe rules (threshold, direction dominance, clamping, search suppression) to a touch release.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.GestureRequest true "Gesture Request"
// @Success 200 {object} dto.GestureResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/gesture [post]
func (handler *Handler) ResolveGesture(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveGesture")
	defer scope.End()

	req := dto.GestureRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ResolveGesture(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve gesture")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
