package support

import (
	"net/http"
	"zentravel/infras/otel"
	"zentravel/internal/domains/support/service"
	"zentravel/shared/constant"
	"zentravel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Support
	otel    otel.Otel
}

func New(service service.Support, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/support", func(routerGroup chi.Router) {
		routerGroup.Get("/contacts", handler.GetContacts)
	})
}

// GetContacts returns the emergency reference list.
// @Summary Get emergency contacts
// @Description Retrieve the static embassy and emergency numbers for the trip legs.
// @Tags Support
// @Produce json
// @Success 200 {object} dto.GetContactsResponse
// @Failure 500 {object} response.Error
// @Router /v1/support/contacts [get]
func (handler *Handler) GetContacts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	res, err := handler.service.GetContacts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get support contacts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
