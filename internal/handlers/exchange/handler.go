package exchange

import (
	"net/http"
	"zentravel/infras/otel"
	"zentravel/internal/domains/exchange/model/dto"
	"zentravel/internal/domains/exchange/service"
	"zentravel/shared/constant"
	"zentravel/shared/validator"
	"zentravel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Exchange
	otel    otel.Otel
}

func New(service service.Exchange, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/exchange", func(routerGroup chi.Router) {
		routerGroup.Get("/rates", handler.GetRates)
		routerGroup.Post("/convert", handler.Convert)
	})
}

// GetRates returns the TWD rates for both trip currencies.
// @Summary Get exchange rates
// @Description Retrieve the koruna and euro TWD rates. When the feed is unreachable the reserve rates are served with a fallback status.
// @Tags Exchange
// @Produce json
// @Success 200 {object} dto.GetRatesResponse
// @Failure 500 {object} response.Error
// @Router /v1/exchange/rates [get]
func (handler *Handler) GetRates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	res, err := handler.service.GetRates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get exchange rates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Convert converts an amount into TWD.
// @Summary Convert to TWD
// @Description Convert a koruna or euro amount into TWD at the current rate.
// @Tags Exchange
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/exchange/convert [post]
func (handler *Handler) Convert(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert amount")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
