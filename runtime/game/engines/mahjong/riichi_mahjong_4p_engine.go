package mahjong

import "fmt"

/*
	计分流程：
		1.校验手牌、场况、规则
		2.拆牌：一般形枚举全部拆法，七对子、国士无双单独判定
		3.役满族任一成立则直接按役满计，跳过一般役
		4.否则逐个拆法（及七对子）计番符，取点数最高者
		5.结算按子得点拆分，处理包牌、本场、立直棒
	引擎本身不持有对局状态，同一实例可被多个协程并发调用
*/

// RiichiMahjong4p 日麻四人计分引擎
type RiichiMahjong4p struct {
	Rules    Rules
	searcher *Searcher
}

func NewRiichiMahjong4p(rules Rules) *RiichiMahjong4p {
	return &RiichiMahjong4p{
		Rules:    rules,
		searcher: NewSearcher(),
	}
}

// WithCache 拆牌结果写入外部缓存
func (eg *RiichiMahjong4p) WithCache(c DecompositionCache) *RiichiMahjong4p {
	eg.searcher.WithCache(c)
	return eg
}

func (eg *RiichiMahjong4p) Searcher() *Searcher {
	return eg.searcher
}

// Clone 以当前规则复制一个引擎，共享拆牌缓存
func (eg *RiichiMahjong4p) Clone(rules Rules) *RiichiMahjong4p {
	return &RiichiMahjong4p{Rules: rules, searcher: eg.searcher}
}

// Evaluate 计算一手和了牌的得点；无役返回零值
func (eg *RiichiMahjong4p) Evaluate(hand Hand, sit Situation) (HandScore, error) {
	if err := eg.Rules.Validate(); err != nil {
		return HandScore{}, err
	}
	if err := hand.Validate(); err != nil {
		return HandScore{}, err
	}
	if err := sit.Validate(); err != nil {
		return HandScore{}, err
	}
	if sit.Declared() && !hand.IsConcealed() {
		return HandScore{}, fmt.Errorf("%w: riichi with called melds", ErrConflictingSituation)
	}
	if sit.Rinshan && !hasQuad(hand.Melds) {
		return HandScore{}, fmt.Errorf("%w: replacement tile win without a quad", ErrConflictingSituation)
	}

	ds, err := eg.searcher.Decompose(hand.Concealed, hand.WinTile, hand.Melds)
	if err != nil {
		return HandScore{}, err
	}
	return ScoreHand(hand, sit, eg.Rules, ds), nil
}

func hasQuad(melds []Meld) bool {
	for _, m := range melds {
		if m.IsQuad() {
			return true
		}
	}
	return false
}

// Settle 单家和了的点数移动
func (eg *RiichiMahjong4p) Settle(score HandScore, table TableContext) (Settlement, error) {
	return Settle(score, table, eg.Rules)
}

// SettleMultiRon 一炮多响
func (eg *RiichiMahjong4p) SettleMultiRon(discarder int, claims []RonClaim) ([]Settlement, error) {
	return SettleMultiRon(discarder, claims, eg.Rules)
}

// SettleExhaustiveDraw 荒牌流局
func (eg *RiichiMahjong4p) SettleExhaustiveDraw(ready [4]bool) (Settlement, error) {
	return SettleExhaustiveDraw(ready, eg.Rules)
}

// Waits 听牌列表
func (eg *RiichiMahjong4p) Waits(concealed []Tile, melds []Meld) ([]TileType, error) {
	return eg.searcher.Waits(concealed, melds)
}
