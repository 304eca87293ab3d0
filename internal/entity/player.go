package entity

type Player struct {
	ID   string `json:"id"`
	Mark Cell   `json:"mark"`
	Bot  bool   `json:"bot,omitempty"`
}

func NewBotPlayer(id string, mark Cell) *Player {
	return &Player{
		ID:   id,
		Mark: mark,
		Bot:  true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
