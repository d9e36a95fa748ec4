package board

import "settlers/internal/errs"

var (
	ErrOccupied      = errs.State("position already occupied")
	ErrBadPosition   = errs.Argument("position index out of range")
	ErrUnknownHex    = errs.Argument("unknown hex")
	ErrUnknownVertex = errs.Argument("unknown vertex")
	ErrUnknownEdge   = errs.Argument("unknown edge")
	ErrNumberSet     = errs.State("hex number already set")
	ErrBadNumber     = errs.Argument("invalid hex number")
	ErrPortSet       = errs.State("port already set")
	ErrVertexOwned   = errs.State("vertex already owned")
	ErrNotSettlement = errs.State("vertex is not a settlement of that player")
	ErrEdgeOwned     = errs.State("edge owned by another player")
	ErrNoOwner       = errs.Argument("owner must be set")
	ErrThiefStays    = errs.Argument("thief must move to a different hex")
	ErrBadLayout     = errs.Argument("invalid tile layout")
)
