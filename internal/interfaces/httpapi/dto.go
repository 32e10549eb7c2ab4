package httpapi

import (
	"encoding/json"
	"time"

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
	"github.com/ligaescolar/kings-api/internal/usecase"
)

type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Role:      string(v.Role),
		CreatedAt: v.CreatedAt,
	}
}

type teamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	OwnerID      string `json:"ownerId,omitempty"`
	EurosKings   int64  `json:"eurosKings"`
	Points       int    `json:"points"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:           v.ID,
		Name:         v.Name,
		OwnerID:      v.OwnerID,
		EurosKings:   v.EurosKings,
		Points:       v.Points,
		Wins:         v.Wins,
		Draws:        v.Draws,
		Losses:       v.Losses,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
		GoalDiff:     v.GoalDifference(),
	}
}

type playerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Price        int64  `json:"price"`
	MarketValue  int64  `json:"marketValue"`
	TeamID       string `json:"teamId,omitempty"`
	IsOnMarket   bool   `json:"isOnMarket"`
	LinkedUserID string `json:"linkedUserId,omitempty"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		Name:         v.Name,
		Position:     string(v.Position),
		Price:        v.Price,
		MarketValue:  v.MarketValue,
		TeamID:       v.TeamID,
		IsOnMarket:   v.IsOnMarket,
		LinkedUserID: v.LinkedUserID,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

type matchDTO struct {
	ID          string    `json:"id"`
	HomeTeamID  string    `json:"homeTeamId"`
	AwayTeamID  string    `json:"awayTeamId"`
	KickoffAt   time.Time `json:"kickoffAt"`
	Status      string    `json:"status"`
	HomeScore   int       `json:"homeScore"`
	AwayScore   int       `json:"awayScore"`
	MVPPlayerID string    `json:"mvpPlayerId,omitempty"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:          v.ID,
		HomeTeamID:  v.HomeTeamID,
		AwayTeamID:  v.AwayTeamID,
		KickoffAt:   v.KickoffAt,
		Status:      v.Status,
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		MVPPlayerID: v.MVPPlayerID,
	}
}

type matchEventDTO struct {
	ID          string `json:"id"`
	MatchID     string `json:"matchId"`
	Type        string `json:"type"`
	Minute      int    `json:"minute"`
	PlayerID    string `json:"playerId"`
	PlayerOutID string `json:"playerOutId,omitempty"`
	TeamID      string `json:"teamId"`
}

func eventToDTO(v match.Event) matchEventDTO {
	return matchEventDTO{
		ID:          v.ID,
		MatchID:     v.MatchID,
		Type:        v.Type,
		Minute:      v.Minute,
		PlayerID:    v.PlayerID,
		PlayerOutID: v.PlayerOutID,
		TeamID:      v.TeamID,
	}
}

func eventsToDTO(items []match.Event) []matchEventDTO {
	out := make([]matchEventDTO, 0, len(items))
	for _, ev := range items {
		out = append(out, eventToDTO(ev))
	}
	return out
}

type lineupEntryDTO struct {
	PlayerID  string `json:"playerId"`
	IsStarter bool   `json:"isStarter"`
	Position  string `json:"position"`
}

func lineupToDTO(items []match.LineupEntry) []lineupEntryDTO {
	out := make([]lineupEntryDTO, 0, len(items))
	for _, e := range items {
		out = append(out, lineupEntryDTO{PlayerID: e.PlayerID, IsStarter: e.IsStarter, Position: string(e.Position)})
	}
	return out
}

type timelineDTO struct {
	Events        []matchEventDTO `json:"events"`
	HomeGoals     []matchEventDTO `json:"homeGoals"`
	AwayGoals     []matchEventDTO `json:"awayGoals"`
	HomeCards     []matchEventDTO `json:"homeCards"`
	AwayCards     []matchEventDTO `json:"awayCards"`
	Substitutions []matchEventDTO `json:"substitutions"`
}

type matchDetailDTO struct {
	Match        matchDTO         `json:"match"`
	Timeline     timelineDTO      `json:"timeline"`
	HomeStarters []lineupEntryDTO `json:"homeStarters"`
	HomeBench    []lineupEntryDTO `json:"homeBench"`
	AwayStarters []lineupEntryDTO `json:"awayStarters"`
	AwayBench    []lineupEntryDTO `json:"awayBench"`
}

func matchDetailToDTO(v usecase.MatchDetail) matchDetailDTO {
	return matchDetailDTO{
		Match: matchToDTO(v.Match),
		Timeline: timelineDTO{
			Events:        eventsToDTO(v.Timeline.Events),
			HomeGoals:     eventsToDTO(v.Timeline.HomeGoals),
			AwayGoals:     eventsToDTO(v.Timeline.AwayGoals),
			HomeCards:     eventsToDTO(v.Timeline.HomeCards),
			AwayCards:     eventsToDTO(v.Timeline.AwayCards),
			Substitutions: eventsToDTO(v.Timeline.Substitutions),
		},
		HomeStarters: lineupToDTO(v.HomeStarters),
		HomeBench:    lineupToDTO(v.HomeBench),
		AwayStarters: lineupToDTO(v.AwayStarters),
		AwayBench:    lineupToDTO(v.AwayBench),
	}
}

type transferDTO struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"playerId"`
	FromTeamID string    `json:"fromTeamId,omitempty"`
	ToTeamID   string    `json:"toTeamId"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func transferToDTO(v market.Transfer) transferDTO {
	return transferDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		FromTeamID: v.FromTeamID,
		ToTeamID:   v.ToTeamID,
		Price:      v.Price,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}

type transactionDTO struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	ReviewedBy  string    `json:"reviewedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func transactionToDTO(v ledger.Transaction) transactionDTO {
	return transactionDTO{
		ID:          v.ID,
		TeamID:      v.TeamID,
		Type:        v.Type,
		Amount:      v.Amount,
		Description: v.Description,
		Status:      v.Status,
		ReviewedBy:  v.ReviewedBy,
		CreatedAt:   v.CreatedAt,
	}
}

type requestDTO struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	UserID     string          `json:"userId"`
	TeamID     string          `json:"teamId,omitempty"`
	Data       json.RawMessage `json:"data"`
	Status     string          `json:"status"`
	ReviewedBy string          `json:"reviewedBy,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func requestToDTO(v request.Request) requestDTO {
	return requestDTO{
		ID:         v.ID,
		Type:       v.Type,
		UserID:     v.UserID,
		TeamID:     v.TeamID,
		Data:       v.Data,
		Status:     v.Status,
		ReviewedBy: v.ReviewedBy,
		CreatedAt:  v.CreatedAt,
	}
}

type wildcardDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Effect      string `json:"effect,omitempty"`
	Price       int64  `json:"price"`
	TeamID      string `json:"teamId"`
	Used        bool   `json:"used"`
}

func wildcardToDTO(v wildcard.Wildcard) wildcardDTO {
	return wildcardDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Effect:      v.Effect,
		Price:       v.Price,
		TeamID:      v.TeamID,
		Used:        v.Used,
	}
}

type suspensionDTO struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"playerId"`
	MatchCount int       `json:"matchCount"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func suspensionToDTO(v discipline.Suspension) suspensionDTO {
	return suspensionDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		MatchCount: v.MatchCount,
		Reason:     v.Reason,
		CreatedAt:  v.CreatedAt,
	}
}

type awardDTO struct {
	ID       string `json:"id"`
	Season   string `json:"season"`
	Category string `json:"category"`
	PlayerID string `json:"playerId,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
}

func awardToDTO(v award.SeasonAward) awardDTO {
	return awardDTO{
		ID:       v.ID,
		Season:   v.Season,
		Category: v.Category,
		PlayerID: v.PlayerID,
		TeamID:   v.TeamID,
	}
}

type newsDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
}

func newsToDTO(v news.Item) newsDTO {
	return newsDTO{
		ID:          v.ID,
		Title:       v.Title,
		Body:        v.Body,
		PublishedAt: v.PublishedAt,
	}
}
