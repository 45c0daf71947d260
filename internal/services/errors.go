package services

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrSamePlayer     = errors.New("player1 and player2 must be different")
	ErrInvalidWinner  = errors.New("winner must be one of the participants")
	ErrInvalidLoser   = errors.New("loser must be one of the participants")
)
