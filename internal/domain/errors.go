package domain

import "errors"

var (
	// ErrBlankPlayerName rejects starting a session with an empty or
	// whitespace-only player name. Recoverable; the session stays in setup.
	ErrBlankPlayerName = errors.New("player name must not be blank")
	// ErrInvalidDifficulty is returned when the configured difficulty is unknown.
	ErrInvalidDifficulty = errors.New("unknown difficulty")
	// ErrNotInSetup guards configuration changes outside the setup phase.
	ErrNotInSetup = errors.New("session is not in setup")
	// ErrNotPlaying guards answer submission and advancing outside play.
	ErrNotPlaying = errors.New("session is not playing")
	// ErrNotInResult guards restart before the batch has finished.
	ErrNotInResult = errors.New("session has not reached the result")
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrOptionOutOfRange indicates a submitted option index is invalid.
	ErrOptionOutOfRange = errors.New("option index out of range")
)
