package game

// PlayerInfo is what everyone may know about a player: hand size, never
// hand contents.
type PlayerInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Status      PlayerStatus `json:"status"`
	TileCount   int          `json:"tile_count"`
	InitialMeld bool         `json:"initial_meld"`
}

type GameView struct {
	GameID        string        `json:"game_id"`
	Status        GameStatus    `json:"status"`
	Players       []PlayerInfo  `json:"players"`
	YourHand      []Tile        `json:"your_hand,omitempty"`
	Board         []Combination `json:"board"`
	PoolSize      int           `json:"pool_size"`
	CurrentPlayer string        `json:"current_player,omitempty"`
	Winner        string        `json:"winner,omitempty"`
	CanPlay       bool          `json:"can_play"`
}

// View renders the game for one player. An empty playerID yields the fully
// public view.
func (g *Game) View(playerID string) GameView {
	view := GameView{
		GameID:   g.ID,
		Status:   g.Status,
		Players:  make([]PlayerInfo, 0, len(g.Players)),
		Board:    g.Board,
		PoolSize: len(g.Pool),
	}

	for _, p := range g.Players {
		view.Players = append(view.Players, PlayerInfo{
			ID:          p.ID,
			Name:        p.Name,
			Status:      p.Status,
			TileCount:   len(p.Hand),
			InitialMeld: p.InitialMeld,
		})
	}

	if current := g.CurrentPlayer(); current != nil && g.Status == StatusInProgress {
		view.CurrentPlayer = current.Name
		view.CanPlay = current.ID == playerID
	}
	if winner := g.Player(g.WinnerID); winner != nil {
		view.Winner = winner.Name
	}
	if player := g.Player(playerID); player != nil {
		view.YourHand = player.Hand
	}

	return view
}
