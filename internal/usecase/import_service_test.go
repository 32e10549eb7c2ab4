package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestImportService_ValidatePlayers(t *testing.T) {
	t.Parallel()

	csvBody := strings.Join([]string{
		"id,name,position,price,market_value,team_id,is_on_market",
		"p1,Gil,FWD,100,105,t1,true",
		"p2,Salas,MID,abc,50,t1,false",
		"p3,,DEF,40,45,t1,",
		"p4,Vidal,DEF,50,45,,true",
	}, "\n")

	report, err := NewImportService(2).ValidatePlayers(context.Background(), strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("validate players: %v", err)
	}

	if report.TotalRows != 4 {
		t.Fatalf("total rows = %d, want 4", report.TotalRows)
	}
	if report.AcceptedRows != 2 {
		t.Fatalf("accepted rows = %d, want 2 (p1, p4)", report.AcceptedRows)
	}
	if report.RejectedRows != 2 {
		t.Fatalf("rejected rows = %d, want 2", report.RejectedRows)
	}
	if len(report.Errors) != 2 || report.Errors[0].Line != 3 || report.Errors[1].Line != 4 {
		t.Fatalf("errors = %+v, want lines 3 and 4 in order", report.Errors)
	}
}

func TestImportService_ValidatePlayers_BadHeader(t *testing.T) {
	t.Parallel()

	csvBody := "id,name,price\np1,Gil,100"

	_, err := NewImportService(2).ValidatePlayers(context.Background(), strings.NewReader(csvBody))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestImportService_ValidatePlayers_EmptyFile(t *testing.T) {
	t.Parallel()

	_, err := NewImportService(2).ValidatePlayers(context.Background(), strings.NewReader(""))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
