package mahjong

import "fmt"

// Situation 和了时的场况，由调用方每次组装后按值传入
type Situation struct {
	Tsumo        bool // 自摸；否则荣和
	SeatWind     Wind
	RoundWind    Wind
	Riichi       bool
	DoubleRiichi bool // 第一巡立直，视同已立直
	Ippatsu      bool
	LastTile     bool // 海底摸月 / 河底捞鱼
	Chankan      bool // 抢杠
	Rinshan      bool // 岭上开花
	FirstTurn    bool // 第一巡未被鸣牌打断，用于天和/地和

	DoraIndicators    []Tile
	UraDoraIndicators []Tile // 仅立直时有效
}

// MaxIndicators 宝牌指示牌上限（初始 1 + 杠 4）
const MaxIndicators = 5

// Dealer 是否为庄家
func (s Situation) Dealer() bool {
	return s.SeatWind == WindEast
}

// Declared 是否已立直（含两立直）
func (s Situation) Declared() bool {
	return s.Riichi || s.DoubleRiichi
}

// Validate 拒绝互斥的场况组合
func (s Situation) Validate() error {
	if !s.SeatWind.Valid() || !s.RoundWind.Valid() {
		return fmt.Errorf("%w: wind seat=%d round=%d", ErrConflictingSituation, s.SeatWind, s.RoundWind)
	}
	switch {
	case s.Tsumo && s.Chankan:
		return fmt.Errorf("%w: robbing a quad is never a self-draw", ErrConflictingSituation)
	case s.Rinshan && !s.Tsumo:
		return fmt.Errorf("%w: replacement tile win must be a self-draw", ErrConflictingSituation)
	case s.Rinshan && s.LastTile:
		return fmt.Errorf("%w: replacement tile is not the last tile", ErrConflictingSituation)
	case s.Ippatsu && !s.Declared():
		return fmt.Errorf("%w: ippatsu without riichi", ErrConflictingSituation)
	case len(s.UraDoraIndicators) > 0 && !s.Declared():
		return fmt.Errorf("%w: ura dora without riichi", ErrConflictingSituation)
	case s.FirstTurn && s.Declared():
		return fmt.Errorf("%w: first uninterrupted turn after riichi", ErrConflictingSituation)
	case len(s.DoraIndicators) > MaxIndicators || len(s.UraDoraIndicators) > MaxIndicators:
		return fmt.Errorf("%w: more than %d indicators", ErrConflictingSituation, MaxIndicators)
	}
	for _, t := range append(append([]Tile(nil), s.DoraIndicators...), s.UraDoraIndicators...) {
		if !t.Type.Valid() {
			return fmt.Errorf("%w: bad indicator %d", ErrConflictingSituation, t.Type)
		}
	}
	return nil
}
