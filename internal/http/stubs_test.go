package http

import (
	"context"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

type panickingService struct{}

func (panickingService) Bracket(ctx context.Context, leagueID, season string) (bracket.Response, error) {
	panic("boom")
}
