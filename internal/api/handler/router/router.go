package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route descreve um endpoint da API: caminho, método HTTP, handler e os
// middlewares de papel aplicados apenas a esta rota.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

// Router envolve o httprouter e recebe as rotas em grupos por recurso.
type Router struct {
	mux *httprouter.Router
}

type ConfigRouter func(*Router)

// WithRoutes registra um grupo de rotas durante a construção do router.
func WithRoutes(routes ...Route) ConfigRouter {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

func New(configs ...ConfigRouter) Router {
	r := &Router{
		mux: httprouter.New(),
	}

	for _, config := range configs {
		config(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registra as rotas envolvendo o handler nos middlewares da rota,
// do último para o primeiro, de modo que o primeiro da lista seja o mais
// externo.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.mux.Handler(route.Method, route.Path, handler)
	}
}
