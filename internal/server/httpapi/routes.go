package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/presale/internal/api"
	"github.com/gorilla/mux"
)

func (s *Server) routes(r *mux.Router) {
	r.HandleFunc(api.PathRoot, s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc(api.PathHealth, s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc(api.PathRegister, s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc(api.PathLogin, s.handleLogin).Methods(http.MethodPost)

	r.Handle(api.PathProfile, s.authenticated(http.HandlerFunc(s.handleProfile))).Methods(http.MethodGet)
	r.Handle(api.PathPurchase, s.authenticated(http.HandlerFunc(s.handleCreatePurchase))).Methods(http.MethodPost)
	r.Handle(api.PathPurchases, s.authenticated(http.HandlerFunc(s.handleListPurchases))).Methods(http.MethodGet)

	r.Handle(api.PathAdminDashboard, s.authenticated(s.adminOnly(http.HandlerFunc(s.handleAdminDashboard)))).Methods(http.MethodGet)
}
