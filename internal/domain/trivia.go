package domain

// Score counts correct trivia answers for one run of the game.
type Score int

func (s *Score) Award() {
	*s++
}
