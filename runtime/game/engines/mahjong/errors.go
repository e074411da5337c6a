package mahjong

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument 所有入参契约错误的根
var ErrInvalidArgument = errors.New("invalid argument")

// 手牌相关错误
var (
	ErrTileCount      = fmt.Errorf("%w: tile count", ErrInvalidArgument)
	ErrTileOverflow   = fmt.Errorf("%w: more than four copies of a tile", ErrInvalidArgument)
	ErrIncompleteHand = fmt.Errorf("%w: hand is not complete", ErrInvalidArgument)
	ErrMalformedMeld  = fmt.Errorf("%w: malformed meld", ErrInvalidArgument)
	ErrTooManyQuads   = fmt.Errorf("%w: more than four quads", ErrInvalidArgument)
	ErrNotation       = fmt.Errorf("%w: tile notation", ErrInvalidArgument)
)

// 场况与结算相关错误
var (
	ErrConflictingSituation = fmt.Errorf("%w: conflicting situation flags", ErrInvalidArgument)
	ErrInvalidTable         = fmt.Errorf("%w: inconsistent table context", ErrInvalidArgument)
	ErrEmptyScore           = fmt.Errorf("%w: score has no value", ErrInvalidArgument)
	ErrInvalidRules         = fmt.Errorf("%w: rules", ErrInvalidArgument)
)
