package httpapi

import (
	"net/http"

	"github.com/ligaescolar/kings-api/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/auth/login", handler.Login)
	mux.HandleFunc("POST /api/auth/logout", handler.Logout)

	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /api/standings", handler.Standings)

	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /api/market", handler.ListMarket)

	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/matches/{matchID}", handler.GetMatch)

	mux.HandleFunc("GET /api/wildcards", handler.ListWildcards)
	mux.HandleFunc("GET /api/suspensions", handler.ListSuspensions)
	mux.HandleFunc("GET /api/awards", handler.ListAwards)
	mux.HandleFunc("GET /api/news", handler.ListNews)

	mux.HandleFunc("GET /api/tv/slides", handler.TVSlides)
}

// registerMemberRoutes covers any authenticated account regardless of role.
func registerMemberRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /api/auth/me", RequireRole(verifier, http.HandlerFunc(handler.Me)))
	mux.Handle("GET /api/notifications", RequireRole(verifier, http.HandlerFunc(handler.ListNotifications)))
	mux.Handle("POST /api/notifications/{notificationID}/read", RequireRole(verifier, http.HandlerFunc(handler.MarkNotificationRead)))
	mux.Handle("POST /api/requests", RequireRole(verifier, http.HandlerFunc(handler.SubmitRequest),
		user.RolePresidente, user.RoleJugador, user.RoleAlumno))
}

func registerPresidentRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("POST /api/transfers/offer", RequireRole(verifier, http.HandlerFunc(handler.SubmitOffer),
		user.RolePresidente))
	mux.Handle("GET /api/transfers", RequireRole(verifier, http.HandlerFunc(handler.ListTransfers),
		user.RoleAdmin, user.RolePresidente))
	mux.Handle("PATCH /api/wildcards/{wildcardID}/use", RequireRole(verifier, http.HandlerFunc(handler.UseWildcard),
		user.RolePresidente))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireRole(verifier, h, user.RoleAdmin)
	}

	mux.Handle("GET /api/users", admin(handler.ListUsers))
	mux.Handle("GET /api/users/{userID}", admin(handler.GetUser))
	mux.Handle("POST /api/users", admin(handler.CreateUser))

	mux.Handle("POST /api/teams", admin(handler.CreateTeam))
	mux.Handle("POST /api/players", admin(handler.CreatePlayer))
	mux.Handle("PATCH /api/players/{playerID}", admin(handler.UpdatePlayer))

	mux.Handle("POST /api/matches", admin(handler.ScheduleMatch))
	mux.Handle("POST /api/matches/{matchID}/events", admin(handler.AppendMatchEvent))
	mux.Handle("PUT /api/matches/{matchID}/lineups", admin(handler.SetMatchLineups))

	mux.Handle("GET /api/transactions", admin(handler.ListTransactions))
	mux.Handle("POST /api/transactions", admin(handler.CreateTransaction))
	mux.Handle("PATCH /api/transactions/{transactionID}", admin(handler.ReviewTransaction))

	mux.Handle("GET /api/requests", admin(handler.ListRequests))
	mux.Handle("PATCH /api/requests/{requestID}", admin(handler.ReviewRequest))

	mux.Handle("POST /api/wildcards", admin(handler.CreateWildcard))
	mux.Handle("POST /api/suspensions", admin(handler.CreateSuspension))
	mux.Handle("POST /api/awards", admin(handler.CreateAward))
	mux.Handle("POST /api/news", admin(handler.PublishNews))

	mux.Handle("GET /api/admin/export", admin(handler.ExportCSV))
	mux.Handle("POST /api/admin/import", admin(handler.ImportPlayersCSV))
}
