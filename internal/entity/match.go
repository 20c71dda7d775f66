package entity

import "time"

const (
	OutcomeWin  = "win"
	OutcomeDraw = "draw"
)

// MatchResult is the summary of a finished match kept by the results store.
type MatchResult struct {
	ID         string                    `json:"id"`
	Outcome    string                    `json:"outcome"`
	Winner     PlayerID                  `json:"winner,omitempty"`
	Names      map[PlayerID]string       `json:"names"`
	Cells      map[PlayerID][]Coordinate `json:"cells"`
	FinishedAt time.Time                 `json:"finished_at"`
}

func (that *MatchResult) IsDraw() bool {
	return that.Outcome == OutcomeDraw
}

// NewMatchResult - snapshots the names and owned cells of a finished board.
// winner is Unclaimed for a draw.
func NewMatchResult(id string, board *Board, winner PlayerID, finishedAt time.Time) (*MatchResult, error) {
	result := &MatchResult{
		ID:         id,
		Outcome:    OutcomeDraw,
		Winner:     winner,
		Names:      make(map[PlayerID]string, TotalPlayers),
		Cells:      make(map[PlayerID][]Coordinate, TotalPlayers),
		FinishedAt: finishedAt,
	}

	if IsPlayer(winner) {
		result.Outcome = OutcomeWin
	}

	for _, playerID := range []PlayerID{PlayerOne, PlayerTwo} {
		name, err := board.GetName(playerID)
		if err != nil {
			return nil, err
		}

		cells, err := board.Cells(playerID)
		if err != nil {
			return nil, err
		}

		result.Names[playerID] = name
		result.Cells[playerID] = cells
	}

	return result, nil
}
