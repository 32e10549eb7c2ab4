package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

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

// Seed is the full fixture set backing the in-memory store. It exists so the
// portal is usable out of the box without a database; every seeded account
// logs in with the password "kings2026".
type Seed struct {
	Users        []user.User
	Teams        []team.Team
	Players      []player.Player
	Matches      []match.Match
	Transfers    []market.Transfer
	Transactions []ledger.Transaction
	Requests     []request.Request
	Wildcards    []wildcard.Wildcard
	Suspensions  []discipline.Suspension
	Awards       []award.SeasonAward
	News         []news.Item
}

var seedTime = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

// MinCost keeps startup fast; the memory backend is a dev convenience, not a
// production store.
func seedHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

func DefaultSeed() Seed {
	password := seedHash("kings2026")

	return Seed{
		Users: []user.User{
			{ID: "user-admin", Name: "Marta Iglesias", Email: "admin@ligaescolar.es", PasswordHash: password, Role: user.RoleAdmin, CreatedAt: seedTime},
			{ID: "user-pres-1", Name: "Diego Navarro", Email: "diego@ligaescolar.es", PasswordHash: password, Role: user.RolePresidente, CreatedAt: seedTime},
			{ID: "user-pres-2", Name: "Lucia Ferrer", Email: "lucia@ligaescolar.es", PasswordHash: password, Role: user.RolePresidente, CreatedAt: seedTime},
			{ID: "user-jug-1", Name: "Pablo Ortega", Email: "pablo@ligaescolar.es", PasswordHash: password, Role: user.RoleJugador, CreatedAt: seedTime},
			{ID: "user-alu-1", Name: "Sara Molina", Email: "sara@ligaescolar.es", PasswordHash: password, Role: user.RoleAlumno, CreatedAt: seedTime},
		},
		Teams: []team.Team{
			{ID: "team-rayo", Name: "Rayo Escolar", OwnerID: "user-pres-1", EurosKings: 500, Points: 7, Wins: 2, Draws: 1, Losses: 0, GoalsFor: 8, GoalsAgainst: 3},
			{ID: "team-atletico", Name: "Atletico Aula", OwnerID: "user-pres-2", EurosKings: 350, Points: 4, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 5, GoalsAgainst: 5},
			{ID: "team-libre", Name: "Deportivo Patio", OwnerID: "", EurosKings: 200, Points: 1, Wins: 0, Draws: 1, Losses: 2, GoalsFor: 2, GoalsAgainst: 7},
		},
		Players: []player.Player{
			{ID: "player-1", Name: "Pablo Ortega", Position: player.PositionFWD, Price: 120, MarketValue: 150, TeamID: "team-rayo", LinkedUserID: "user-jug-1"},
			{ID: "player-2", Name: "Ivan Castro", Position: player.PositionGK, Price: 80, MarketValue: 90, TeamID: "team-rayo"},
			{ID: "player-3", Name: "Hugo Prieto", Position: player.PositionDEF, Price: 70, MarketValue: 75, TeamID: "team-rayo"},
			{ID: "player-4", Name: "Adrian Salas", Position: player.PositionMID, Price: 95, MarketValue: 110, TeamID: "team-atletico"},
			{ID: "player-5", Name: "Marco Gil", Position: player.PositionFWD, Price: 100, MarketValue: 105, TeamID: "team-atletico", IsOnMarket: true},
			{ID: "player-6", Name: "Julen Arrieta", Position: player.PositionMID, Price: 60, MarketValue: 55, TeamID: "team-libre", IsOnMarket: true},
			{ID: "player-7", Name: "Oscar Vidal", Position: player.PositionDEF, Price: 50, MarketValue: 45, TeamID: "", IsOnMarket: true},
		},
		Matches: []match.Match{
			{ID: "match-1", HomeTeamID: "team-rayo", AwayTeamID: "team-atletico", KickoffAt: seedTime.AddDate(0, 0, 5), Status: match.StatusFinished, HomeScore: 3, AwayScore: 1, MVPPlayerID: "player-1"},
			{ID: "match-2", HomeTeamID: "team-atletico", AwayTeamID: "team-libre", KickoffAt: seedTime.AddDate(0, 0, 12), Status: match.StatusScheduled},
		},
		Transfers: []market.Transfer{
			{ID: "transfer-1", PlayerID: "player-6", FromTeamID: "team-libre", ToTeamID: "team-rayo", Price: 60, Status: market.StatusPending, CreatedAt: seedTime.AddDate(0, 0, 3)},
		},
		Transactions: []ledger.Transaction{
			{ID: "tx-1", TeamID: "team-rayo", Type: ledger.TypeTransfer, Amount: 60, Description: "Fichaje de Julen Arrieta", Status: ledger.StatusPending, CreatedAt: seedTime.AddDate(0, 0, 3)},
			{ID: "tx-2", TeamID: "team-atletico", Type: ledger.TypeInvestment, Amount: 40, Description: "Mejora de equipacion", Status: ledger.StatusApproved, ReviewedBy: "user-admin", CreatedAt: seedTime.AddDate(0, 0, 1)},
		},
		Requests: []request.Request{
			{ID: "request-1", Type: request.TypeWildcard, UserID: "user-pres-2", TeamID: "team-atletico", Data: []byte(`{"wildcard":"doble-puntos"}`), Status: request.StatusPending, CreatedAt: seedTime.AddDate(0, 0, 4)},
		},
		Wildcards: []wildcard.Wildcard{
			{ID: "wildcard-1", Name: "Doble Puntos", Description: "Duplica los puntos de una jornada", Effect: "double_points", Price: 75, TeamID: "team-rayo"},
			{ID: "wildcard-2", Name: "Muralla", Description: "Anula una tarjeta amarilla", Effect: "cancel_card", Price: 40, TeamID: "team-atletico", Used: true},
		},
		Suspensions: []discipline.Suspension{
			{ID: "susp-1", PlayerID: "player-4", MatchCount: 1, Reason: "Doble amarilla", CreatedAt: seedTime.AddDate(0, 0, 6)},
		},
		Awards: []award.SeasonAward{
			{ID: "award-1", Season: "2025-26", Category: "Pichichi", PlayerID: "player-1"},
			{ID: "award-2", Season: "2025-26", Category: "Juego Limpio", TeamID: "team-atletico"},
		},
		News: []news.Item{
			{ID: "news-1", Title: "Arranca la segunda vuelta", Body: "La liga vuelve tras el parón de exámenes.", PublishedAt: seedTime.AddDate(0, 0, 2)},
			{ID: "news-2", Title: "Rayo Escolar lidera la tabla", Body: "Tres goles de Ortega sellan la victoria.", PublishedAt: seedTime.AddDate(0, 0, 6)},
		},
	}
}
