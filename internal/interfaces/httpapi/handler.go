package httpapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ligaescolar/kings-api/internal/platform/logging"
	"github.com/ligaescolar/kings-api/internal/usecase"
)

// Services bundles everything the HTTP layer dispatches to.
type Services struct {
	Auth          *usecase.AuthService
	Users         *usecase.UserService
	Teams         *usecase.TeamService
	Players       *usecase.PlayerService
	Matches       *usecase.MatchService
	Market        *usecase.MarketService
	Ledger        *usecase.LedgerService
	Requests      *usecase.RequestService
	Wildcards     *usecase.WildcardService
	Notifications *usecase.NotificationService
	Discipline    *usecase.DisciplineService
	Awards        *usecase.AwardService
	News          *usecase.NewsService
	Export        *usecase.ExportService
	Import        *usecase.ImportService
	TV            *usecase.TVService
}

type Handler struct {
	services   Services
	sessionTTL time.Duration
	logger     *logging.Logger
	validator  *validator.Validate
}

func NewHandler(services Services, sessionTTL time.Duration, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		services:   services,
		sessionTTL: sessionTTL,
		logger:     logger,
		validator:  validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
