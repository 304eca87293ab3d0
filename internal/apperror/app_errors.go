package apperror

import "errors"

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
)
