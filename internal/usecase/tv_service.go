package usecase

import (
	"context"
	"fmt"

	"github.com/ligaescolar/kings-api/internal/domain/match"
	"github.com/ligaescolar/kings-api/internal/domain/news"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/platform/cache"
)

const (
	tvSlidesCacheKey  = "tv:slides"
	tvUpcomingLimit   = 5
	tvNewsLimit       = 5
	tvTopPlayersLimit = 5
)

type TVSlides struct {
	Standings  []team.Team     `json:"standings"`
	Upcoming   []match.Match   `json:"upcoming"`
	News       []news.Item     `json:"news"`
	TopPlayers []player.Player `json:"topPlayers"`
}

// TVService builds the carousel payload for hallway screens. TVs poll on a
// fixed interval, so the payload is served through the TTL cache and loaded
// at most once per expiry.
type TVService struct {
	teamService   *TeamService
	matchService  *MatchService
	playerService *PlayerService
	newsService   *NewsService
	cache         *cache.Store
}

func NewTVService(
	teamService *TeamService,
	matchService *MatchService,
	playerService *PlayerService,
	newsService *NewsService,
	store *cache.Store,
) *TVService {
	return &TVService{
		teamService:   teamService,
		matchService:  matchService,
		playerService: playerService,
		newsService:   newsService,
		cache:         store,
	}
}

func (s *TVService) Slides(ctx context.Context) (TVSlides, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TVService.Slides")
	defer span.End()

	if s.cache == nil {
		return s.loadSlides(ctx)
	}

	value, err := s.cache.GetOrLoad(ctx, tvSlidesCacheKey, func(ctx context.Context) (any, error) {
		return s.loadSlides(ctx)
	})
	if err != nil {
		return TVSlides{}, err
	}

	slides, ok := value.(TVSlides)
	if !ok {
		return s.loadSlides(ctx)
	}

	return slides, nil
}

func (s *TVService) loadSlides(ctx context.Context) (TVSlides, error) {
	standings, err := s.teamService.Standings(ctx)
	if err != nil {
		return TVSlides{}, fmt.Errorf("load standings slide: %w", err)
	}

	upcoming, err := s.matchService.ListMatches(ctx, match.StatusScheduled, tvUpcomingLimit)
	if err != nil {
		return TVSlides{}, fmt.Errorf("load upcoming slide: %w", err)
	}

	items, err := s.newsService.ListNews(ctx, tvNewsLimit)
	if err != nil {
		return TVSlides{}, fmt.Errorf("load news slide: %w", err)
	}

	topPlayers, err := s.playerService.ListPlayers(ctx, player.SortByMarketValue, tvTopPlayersLimit)
	if err != nil {
		return TVSlides{}, fmt.Errorf("load top players slide: %w", err)
	}

	return TVSlides{
		Standings:  standings,
		Upcoming:   upcoming,
		News:       items,
		TopPlayers: topPlayers,
	}, nil
}
