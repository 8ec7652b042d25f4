package router

import (
	"zentravel/internal/handlers/booking"
	"zentravel/internal/handlers/exchange"
	"zentravel/internal/handlers/oracle"
	"zentravel/internal/handlers/schedule"
	"zentravel/internal/handlers/support"
	"zentravel/internal/handlers/weather"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Schedule schedule.Handler
	Booking  booking.Handler
	Weather  weather.Handler
	Exchange exchange.Handler
	Oracle   oracle.Handler
	Support  support.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Weather.Router(routerGroup)
		r.DomainHandlers.Exchange.Router(routerGroup)
		r.DomainHandlers.Oracle.Router(routerGroup)
		r.DomainHandlers.Support.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
