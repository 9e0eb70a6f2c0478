package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	// LocalMode is two players taking turns on one board.
	LocalMode = "local"
	// RemoteMode delegates every O move to an external mover.
	RemoteMode = "remote"
)

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Tile   `json:"player_turn"`
	Winner Tile   `json:"winner"`
	Draw   bool   `json:"draw"`
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsRemote() bool {
	return that.Mode == RemoteMode
}
