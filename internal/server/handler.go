package server

import (
	"net/http"

	"go.uber.org/fx"
)

// Route binds a handler to a mux pattern.
type Route struct {
	Pattern string
	Handler http.Handler
}

// RouteResult contributes a route to the "routes" value group.
type RouteResult struct {
	fx.Out

	Route *Route `group:"routes"`
}

func AsRoute(pattern string, handler http.Handler) RouteResult {
	return RouteResult{
		Route: &Route{
			Pattern: pattern,
			Handler: handler,
		},
	}
}
