package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/market"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newMarketFixture() (*MarketService, *memory.TeamRepository, *memory.TransferRepository, *memory.TransactionRepository) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", Name: "Rayo", OwnerID: "pres-1", EurosKings: 100},
		{ID: "team-2", Name: "Atletico", OwnerID: "pres-2", EurosKings: 300},
	})
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "player-1", Name: "Gil", Position: player.PositionFWD, Price: 100, TeamID: "team-2", IsOnMarket: true},
		{ID: "player-2", Name: "Salas", Position: player.PositionMID, Price: 50, TeamID: "team-2"},
	})
	transferRepo := memory.NewTransferRepository(nil)
	transactionRepo := memory.NewTransactionRepository(nil)

	service := NewMarketService(transferRepo, transactionRepo, teamRepo, playerRepo, &seqIDGenerator{prefix: "id"}, testLogger())

	return service, teamRepo, transferRepo, transactionRepo
}

func TestMarketService_SubmitOffer_CreatesPendingPair(t *testing.T) {
	t.Parallel()

	service, teamRepo, transferRepo, transactionRepo := newMarketFixture()

	got, err := service.SubmitOffer(context.Background(), SubmitOfferInput{
		BuyerUserID: "pres-1",
		PlayerID:    "player-1",
		Price:       100,
	})
	if err != nil {
		t.Fatalf("submit offer: %v", err)
	}

	if got.Transfer.Status != market.StatusPending {
		t.Fatalf("transfer status = %s, want pending", got.Transfer.Status)
	}
	if got.Transfer.FromTeamID != "team-2" || got.Transfer.ToTeamID != "team-1" {
		t.Fatalf("transfer route = %s -> %s", got.Transfer.FromTeamID, got.Transfer.ToTeamID)
	}
	if got.Transaction.Status != ledger.StatusPending {
		t.Fatalf("transaction status = %s, want pending", got.Transaction.Status)
	}
	if got.Transaction.Type != ledger.TypeTransfer {
		t.Fatalf("transaction type = %s, want transfer", got.Transaction.Type)
	}
	if got.Transaction.Amount != 100 {
		t.Fatalf("transaction amount = %d, want 100", got.Transaction.Amount)
	}

	// The offer must not touch the wallet; only an approval does.
	buyer, _, _ := teamRepo.GetByID(context.Background(), "team-1")
	if buyer.EurosKings != 100 {
		t.Fatalf("buyer balance = %d, want 100 untouched", buyer.EurosKings)
	}

	transfers, _ := transferRepo.List(context.Background(), "")
	if len(transfers) != 1 {
		t.Fatalf("stored transfers = %d, want 1", len(transfers))
	}
	transactions, _ := transactionRepo.List(context.Background(), "")
	if len(transactions) != 1 {
		t.Fatalf("stored transactions = %d, want 1", len(transactions))
	}
}

func TestMarketService_SubmitOffer_ExactBalancePasses(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newMarketFixture()

	// team-1 holds exactly 100.
	if _, err := service.SubmitOffer(context.Background(), SubmitOfferInput{
		BuyerUserID: "pres-1",
		PlayerID:    "player-1",
		Price:       100,
	}); err != nil {
		t.Fatalf("offer at exact balance should pass, got %v", err)
	}
}

func TestMarketService_SubmitOffer_InsufficientBalance(t *testing.T) {
	t.Parallel()

	service, _, transferRepo, _ := newMarketFixture()

	_, err := service.SubmitOffer(context.Background(), SubmitOfferInput{
		BuyerUserID: "pres-1",
		PlayerID:    "player-1",
		Price:       101,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	transfers, _ := transferRepo.List(context.Background(), "")
	if len(transfers) != 0 {
		t.Fatalf("stored transfers = %d, want 0", len(transfers))
	}
}

func TestMarketService_SubmitOffer_BuyerWithoutTeam(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newMarketFixture()

	_, err := service.SubmitOffer(context.Background(), SubmitOfferInput{
		BuyerUserID: "user-without-team",
		PlayerID:    "player-1",
		Price:       10,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMarketService_SubmitOffer_PlayerNotOnMarket(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newMarketFixture()

	_, err := service.SubmitOffer(context.Background(), SubmitOfferInput{
		BuyerUserID: "pres-1",
		PlayerID:    "player-2",
		Price:       50,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestMarketService_SubmitOffer_UnknownPlayer(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newMarketFixture()

	_, err := service.SubmitOffer(context.Background(), SubmitOfferInput{
		BuyerUserID: "pres-1",
		PlayerID:    "missing",
		Price:       10,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
