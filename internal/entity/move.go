package entity

// MoveRequest is the body of POST /move: the full board snapshot.
type MoveRequest = Board

// MoveResponse is the body a mover answers with. Scores and Board are informational.
type MoveResponse struct {
	TileIndex *int        `json:"tileIndex"`
	Scores    map[int]int `json:"scores,omitempty"`
	Board     *Board      `json:"board,omitempty"`
}

func NewMoveResponse(tileIndex int, scores map[int]int, board Board) *MoveResponse {
	return &MoveResponse{
		TileIndex: &tileIndex,
		Scores:    scores,
		Board:     &board,
	}
}
