package gateway

import "github.com/lambda-feedback/echoshim/internal/server"

func NewRoute(handler *HttpHandler) server.RouteResult {
	return server.AsRoute("/", handler)
}
