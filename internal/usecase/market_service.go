package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/market"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type SubmitOfferInput struct {
	BuyerUserID string
	PlayerID    string
	Price       int64
}

type OfferResult struct {
	Transfer    market.Transfer
	Transaction ledger.Transaction
}

// MarketService runs the transfer market. An offer creates a pending
// Transfer plus a pending ledger Transaction; the money and the player only
// move later, through separate admin actions.
type MarketService struct {
	transferRepo    market.Repository
	transactionRepo ledger.Repository
	teamRepo        team.Repository
	playerRepo      player.Repository
	idGen           id.Generator
	logger          *logging.Logger
	now             func() time.Time
}

func NewMarketService(
	transferRepo market.Repository,
	transactionRepo ledger.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *MarketService {
	return &MarketService{
		transferRepo:    transferRepo,
		transactionRepo: transactionRepo,
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		idGen:           idGen,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *MarketService) ListTransfers(ctx context.Context, status string) ([]market.Transfer, error) {
	transfers, err := s.transferRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	return transfers, nil
}

func (s *MarketService) ListTransfersByTeam(ctx context.Context, teamID string) ([]market.Transfer, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	transfers, err := s.transferRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list transfers by team: %w", err)
	}

	return transfers, nil
}

// ListTransfersForOwner scopes the listing to the caller's own team.
func (s *MarketService) ListTransfersForOwner(ctx context.Context, userID string) ([]market.Transfer, error) {
	t, exists, err := s.teamRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve owner team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: caller has no team", ErrNotFound)
	}

	return s.ListTransfersByTeam(ctx, t.ID)
}

// SubmitOffer checks the buyer's wallet before writing anything, but the
// balance is only read, not reserved. Concurrent offers from the same team
// can each pass the check and later drive the wallet negative on approval.
func (s *MarketService) SubmitOffer(ctx context.Context, input SubmitOfferInput) (OfferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.SubmitOffer")
	defer span.End()

	if input.Price <= 0 {
		return OfferResult{}, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	buyerTeam, exists, err := s.teamRepo.GetByOwner(ctx, input.BuyerUserID)
	if err != nil {
		return OfferResult{}, fmt.Errorf("get buyer team: %w", err)
	}
	if !exists {
		return OfferResult{}, fmt.Errorf("%w: buyer has no team", ErrNotFound)
	}

	if buyerTeam.EurosKings < input.Price {
		return OfferResult{}, fmt.Errorf("%w: insufficient eurosKings", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return OfferResult{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return OfferResult{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}
	if !p.IsOnMarket {
		return OfferResult{}, fmt.Errorf("%w: player is not on the market", ErrInvalidInput)
	}

	transferID, err := s.idGen.NewID()
	if err != nil {
		return OfferResult{}, fmt.Errorf("generate transfer id: %w", err)
	}
	transactionID, err := s.idGen.NewID()
	if err != nil {
		return OfferResult{}, fmt.Errorf("generate transaction id: %w", err)
	}

	createdAt := s.now().UTC()
	transfer := market.Transfer{
		ID:         transferID,
		PlayerID:   p.ID,
		FromTeamID: p.TeamID,
		ToTeamID:   buyerTeam.ID,
		Price:      input.Price,
		Status:     market.StatusPending,
		CreatedAt:  createdAt,
	}
	transaction := ledger.Transaction{
		ID:          transactionID,
		TeamID:      buyerTeam.ID,
		Type:        ledger.TypeTransfer,
		Amount:      input.Price,
		Description: fmt.Sprintf("Fichaje de %s", p.Name),
		Status:      ledger.StatusPending,
		CreatedAt:   createdAt,
	}

	// Two sequential writes, no shared transaction. A crash between them
	// leaves a transfer without its ledger entry.
	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		return OfferResult{}, fmt.Errorf("create transfer: %w", err)
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return OfferResult{}, fmt.Errorf("create transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "transfer offer submitted",
		"transfer_id", transfer.ID,
		"transaction_id", transaction.ID,
		"player_id", p.ID,
		"to_team_id", buyerTeam.ID,
		"price", input.Price,
	)

	return OfferResult{Transfer: transfer, Transaction: transaction}, nil
}
