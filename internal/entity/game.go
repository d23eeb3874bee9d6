package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Game holds the state of one match: the grid, whose turn it is and how the
// match ended, if it did.
type Game struct {
	ID     string
	Board  *Board
	Turn   Cell
	Winner Cell
	Status string
	Moves  int
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   PlayerOne,
		Status: StatusOngoing,
	}
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}
