package engine

import "settlers/internal/errs"

var (
	ErrPlayerNotFound = errs.Argument("player not found")
	ErrInvalidTarget  = errs.Argument("invalid target")
	ErrInvalidChoice  = errs.Argument("decision outside the offered options")
	ErrNotPlayable    = errs.Argument("victory point cards cannot be played")
	ErrMiscInHand     = errs.Argument("misc is not a holdable resource")
	ErrBadSeats       = errs.Argument("invalid player seats")
	ErrNoEffects      = errs.Argument("no card effect registry")

	ErrNotYourTurn    = errs.State("not your turn")
	ErrWrongPhase     = errs.State("wrong phase for this action")
	ErrGameOver       = errs.State("game is over")
	ErrAlreadyRolled  = errs.State("dice already rolled this turn")
	ErrNotRolled      = errs.State("dice not rolled yet")
	ErrThiefPending   = errs.State("thief must be moved first")
	ErrNoThiefMove    = errs.State("no thief move pending")
	ErrBoughtThisTurn = errs.State("card was bought this turn")
	ErrAlreadyPlayed  = errs.State("a development card was already played this turn")
	ErrNoPresenter    = errs.State("no decision source attached")
	ErrNoEffect       = errs.State("no effect registered for card")
	ErrDuplicate      = errs.State("structure already recorded")

	ErrCannotAfford = errs.Insufficient("not enough resources")
	ErrNoSupply     = errs.Insufficient("supply exhausted")
	ErrNoSuchCard   = errs.Insufficient("card not in hand")
)
