package app

import (
	"fmt"
	"net/http"

	"github.com/ligaescolar/kings-api/internal/config"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/postgres"
	"github.com/ligaescolar/kings-api/internal/interfaces/httpapi"
	"github.com/ligaescolar/kings-api/internal/platform/cache"
	idgen "github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
	"github.com/ligaescolar/kings-api/internal/platform/session"
	"github.com/ligaescolar/kings-api/internal/usecase"

	"github.com/ligaescolar/kings-api/internal/domain/award"
	"github.com/ligaescolar/kings-api/internal/domain/discipline"
	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/market"
	"github.com/ligaescolar/kings-api/internal/domain/match"
	"github.com/ligaescolar/kings-api/internal/domain/news"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/request"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/domain/wildcard"
)

type repositories struct {
	users        user.Repository
	teams        team.Repository
	players      player.Repository
	matches      match.Repository
	transfers    market.Repository
	transactions ledger.Repository
	requests     request.Repository
	wildcards    wildcard.Repository
	suspensions  discipline.Repository
	awards       award.Repository
	news         news.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("build session manager: %w", err)
	}

	idGen := idgen.NewRandomGenerator()

	userSvc := usecase.NewUserService(repos.users, idGen, logger)
	teamSvc := usecase.NewTeamService(repos.teams, repos.players, repos.users, idGen, logger)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, idGen, logger)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.players, idGen, logger)
	marketSvc := usecase.NewMarketService(repos.transfers, repos.transactions, repos.teams, repos.players, idGen, logger)
	ledgerSvc := usecase.NewLedgerService(repos.transactions, repos.teams, idGen, logger)
	requestSvc := usecase.NewRequestService(repos.requests, repos.teams, idGen, logger)
	wildcardSvc := usecase.NewWildcardService(repos.wildcards, repos.teams, idGen, logger)
	notificationSvc := usecase.NewNotificationService(repos.transfers, repos.transactions, repos.requests, repos.teams)
	disciplineSvc := usecase.NewDisciplineService(repos.suspensions, repos.players, idGen, logger)
	awardSvc := usecase.NewAwardService(repos.awards, repos.players, repos.teams, idGen, logger)
	newsSvc := usecase.NewNewsService(repos.news, idGen, logger)
	exportSvc := usecase.NewExportService(repos.users, repos.teams, repos.players, repos.matches)
	importSvc := usecase.NewImportService(cfg.ImportWorkerCount)

	var tvCache *cache.Store
	if cfg.CacheEnabled {
		tvCache = cache.NewStore(cfg.CacheTTL)
	}
	tvSvc := usecase.NewTVService(teamSvc, matchSvc, playerSvc, newsSvc, tvCache)

	authSvc := usecase.NewAuthService(repos.users, sessions, logger)

	handler := httpapi.NewHandler(httpapi.Services{
		Auth:          authSvc,
		Users:         userSvc,
		Teams:         teamSvc,
		Players:       playerSvc,
		Matches:       matchSvc,
		Market:        marketSvc,
		Ledger:        ledgerSvc,
		Requests:      requestSvc,
		Wildcards:     wildcardSvc,
		Notifications: notificationSvc,
		Discipline:    disciplineSvc,
		Awards:        awardSvc,
		News:          newsSvc,
		Export:        exportSvc,
		Import:        importSvc,
		TV:            tvSvc,
	}, cfg.SessionTTL, logger)

	router := httpapi.NewRouter(handler, sessions, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, fmt.Errorf("open database: %w", err)
		}
		logger.Info("store backend ready", "backend", "postgres", "db", dbNameFromURL(cfg.DBURL))

		return repositories{
			users:        postgres.NewUserRepository(db),
			teams:        postgres.NewTeamRepository(db),
			players:      postgres.NewPlayerRepository(db),
			matches:      postgres.NewMatchRepository(db),
			transfers:    postgres.NewTransferRepository(db),
			transactions: postgres.NewTransactionRepository(db),
			requests:     postgres.NewRequestRepository(db),
			wildcards:    postgres.NewWildcardRepository(db),
			suspensions:  postgres.NewSuspensionRepository(db),
			awards:       postgres.NewAwardRepository(db),
			news:         postgres.NewNewsRepository(db),
		}, nil
	default:
		seed := memory.DefaultSeed()
		logger.Info("store backend ready", "backend", "memory", "seed_users", len(seed.Users))

		return repositories{
			users:        memory.NewUserRepository(seed.Users),
			teams:        memory.NewTeamRepository(seed.Teams),
			players:      memory.NewPlayerRepository(seed.Players),
			matches:      memory.NewMatchRepository(seed.Matches),
			transfers:    memory.NewTransferRepository(seed.Transfers),
			transactions: memory.NewTransactionRepository(seed.Transactions),
			requests:     memory.NewRequestRepository(seed.Requests),
			wildcards:    memory.NewWildcardRepository(seed.Wildcards),
			suspensions:  memory.NewSuspensionRepository(seed.Suspensions),
			awards:       memory.NewAwardRepository(seed.Awards),
			news:         memory.NewNewsRepository(seed.News),
		}, nil
	}
}
