package httpserver

import (
	"sort"

	"github.com/ddd-patterns/backend/adapters/httpserver/model"
	"github.com/labstack/echo/v4"
)

// ListEventHandlers godoc
// @Summary List event subscriptions
// @Description Event names known to the dispatcher with their handler counts
// @Tags event
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]model.EventSubscription}
// @Router /events [get]
func (s *Server) ListEventHandlers(c echo.Context) error {
	handlers := s.EventDispatcher.Handlers()

	resp := make([]model.EventSubscription, 0, len(handlers))
	for name, hs := range handlers {
		resp = append(resp, model.EventSubscription{Event: name, Handlers: len(hs)})
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].Event < resp[j].Event })

	return s.success(c, resp)
}

func (s *Server) RegisterEventRoutes(router *echo.Group) {
	router.GET("", s.ListEventHandlers)
}
