package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.MatchResult) error
}

// ResultRecorder turns a finished board into a stored match result.
type ResultRecorder struct {
	logger     *slog.Logger
	resultRepo resultRepo

	now        func() time.Time
	generateID func() (string, error)
}

func NewResultRecorder(logger *slog.Logger, resultRepo resultRepo) *ResultRecorder {
	return &ResultRecorder{
		logger:     logger.With("component", "recorder"),
		resultRepo: resultRepo,
		now:        time.Now,
		generateID: pkg.GenerateMatchID,
	}
}

func (that *ResultRecorder) Record(ctx context.Context, board *entity.Board, winner entity.PlayerID) error {
	id, err := that.generateID()
	if err != nil {
		return fmt.Errorf("could not record match: %w", err)
	}

	result, err := entity.NewMatchResult(id, board, winner, that.now().UTC())
	if err != nil {
		return fmt.Errorf("could not summarize match: %w", err)
	}

	if err = that.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	that.logger.Info("match recorded", "id", result.ID, "outcome", result.Outcome)

	return nil
}
