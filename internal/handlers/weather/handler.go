package weather

import (
	"net/http"
	"zentravel/infras/otel"
	"zentravel/internal/domains/weather/service"
	"zentravel/shared/constant"
	"zentravel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Weather
	otel    otel.Otel
}

func New(service service.Weather, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/weather", func(routerGroup chi.Router) {
		routerGroup.Get("/{date}", handler.GetByDate)
	})
}

// GetByDate returns the weather banner for the leg the date falls in.
// @Summary Get weather for a date
// @Description Resolve the trip leg for the date and report its current weather, compressed to a rounded temperature and a four-bucket condition. Serves the retained observation marked stale when the feed is down.
// @Tags Weather
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.WeatherResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/weather/{date} [get]
func (handler *Handler) GetByDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetByDate")
	defer scope.End()

	date := chi.URLParam(request, constant.RequestParamDate)

	res, err := handler.service.GetByDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get weather")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
