package mahjong

import "fmt"

// PointTier 点数档位
type PointTier int

const (
	TierNone         PointTier = iota // 无役
	TierGraded                        // 按符番计算
	TierMangan                        // 满贯
	TierHaneman                       // 跳满
	TierBaiman                        // 倍满
	TierSanbaiman                     // 三倍满
	TierCountedLimit                  // 累计役满
	TierLimit                         // 役满
)

func (t PointTier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierGraded:
		return "graded"
	case TierMangan:
		return "mangan"
	case TierHaneman:
		return "haneman"
	case TierBaiman:
		return "baiman"
	case TierSanbaiman:
		return "sanbaiman"
	case TierCountedLimit:
		return "counted_limit"
	case TierLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// 各档基本点
const (
	manganBase    = 2000
	hanemanBase   = 3000
	baimanBase    = 4000
	sanbaimanBase = 6000
	limitBase     = 8000
)

// Shape 胜出的牌型
type Shape int

const (
	ShapeRegular    Shape = iota // 一般形
	ShapeSevenPairs              // 七对子
	ShapeIrregular               // 国士无双等不经拆牌的役满
)

// SubScore 结算的独立单元：每个役满各一份，一般役合为一份
type SubScore struct {
	Yaku  Yaku // 一般役为 YakuNone
	Steps int  // 役满倍数
	Value int
}

// HandScore 一手牌的最终得点；Value 为荣和等价点数
type HandScore struct {
	Fu            int
	Han           int
	Tier          PointTier
	Value         int
	Dealer        bool
	Shape         Shape
	Yakus         []YakuResult
	LimitSteps    int
	Decomposition *Decomposition
	SubScores     []SubScore
}

// IsZero 无役
func (s HandScore) IsZero() bool {
	return s.Value == 0
}

// IsLimit 役满
func (s HandScore) IsLimit() bool {
	return s.LimitSteps > 0
}

// HasYaku 是否含某役
func (s HandScore) HasYaku(y Yaku) bool {
	for _, r := range s.Yakus {
		if r.Yaku == y {
			return true
		}
	}
	return false
}

func (s HandScore) String() string {
	if s.IsZero() {
		return "no yaku"
	}
	if s.IsLimit() {
		return fmt.Sprintf("%s x%d %d", s.Tier, s.LimitSteps, s.Value)
	}
	return fmt.Sprintf("%dhan %dfu %s %d", s.Han, s.Fu, s.Tier, s.Value)
}

func dealerMultiplier(dealer bool) int {
	if dealer {
		return 6
	}
	return 4
}

// PointValue 由番符得出档位与荣和点数
func PointValue(han, fu int, dealer bool, rules Rules) (PointTier, int) {
	if han <= 0 {
		return TierNone, 0
	}
	tier, base := TierGraded, 0
	switch {
	case han >= 13 && rules.CountedLimit:
		tier, base = TierCountedLimit, limitBase
	case han >= 11:
		tier, base = TierSanbaiman, sanbaimanBase
	case han >= 8:
		tier, base = TierBaiman, baimanBase
	case han >= 6:
		tier, base = TierHaneman, hanemanBase
	case han >= 5 || (han == 4 && fu >= 40) || (han == 3 && fu >= 70):
		tier, base = TierMangan, manganBase
	default:
		base = fu << (han + 2)
		if base > manganBase {
			base = manganBase
		}
	}
	return tier, roundUpTo100(base * dealerMultiplier(dealer))
}

// LimitValue 役满点数
func LimitValue(steps int, dealer bool) int {
	return limitBase * steps * dealerMultiplier(dealer)
}

// composeLimit 役满：各役倍数相加，每个役满一份子得点
func composeLimit(limits []YakuResult, dealer bool, shape Shape, d *Decomposition) HandScore {
	s := HandScore{
		Tier:          TierLimit,
		Dealer:        dealer,
		Shape:         shape,
		Yakus:         limits,
		Decomposition: d,
	}
	for _, r := range limits {
		s.LimitSteps += r.Limit
		s.SubScores = append(s.SubScores, SubScore{Yaku: r.Yaku, Steps: r.Limit, Value: LimitValue(r.Limit, dealer)})
	}
	s.Value = LimitValue(s.LimitSteps, dealer)
	return s
}

// composeGraded 一般役：无役返回零值，宝牌只在有役时追加
func composeGraded(ctx *YakuContext, families ...[]YakuChecker) HandScore {
	yakus := evaluate(ctx, families...)
	if len(yakus) == 0 {
		return HandScore{}
	}
	yakus = append(yakus, evaluate(ctx, bonusYaku)...)

	s := HandScore{
		Dealer:        ctx.Situation.Dealer(),
		Yakus:         yakus,
		Decomposition: ctx.Decomposition,
	}
	for _, r := range yakus {
		s.Han += r.Han
	}
	if ctx.SevenPairs {
		s.Shape = ShapeSevenPairs
		s.Fu = sevenPairsFu
	} else {
		s.Fu = CalculateFu(*ctx.Decomposition, ctx.Situation, ctx.Feature.IsConcealed)
	}
	s.Tier, s.Value = PointValue(s.Han, s.Fu, s.Dealer, ctx.Rules)
	s.SubScores = []SubScore{{Yaku: YakuNone, Value: s.Value}}
	return s
}

// better 点数高者胜，同点比番、再比符
func better(a, b HandScore) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	return a.Fu > b.Fu
}

// ScoreHand 役满优先，否则在全部拆法与七对子中取最高
func ScoreHand(hand Hand, sit Situation, rules Rules, ds []Decomposition) HandScore {
	f := ExtractFeature(hand, sit)
	ctx := &YakuContext{Hand: hand, Situation: sit, Rules: rules, Feature: f}

	if limits := evaluate(ctx, limitYaku); len(limits) > 0 {
		shape := ShapeIrregular
		var best *Decomposition
		if len(ds) > 0 {
			shape = ShapeRegular
			best = &ds[0]
		} else if len(hand.Melds) == 0 && IsSevenPairs(f.Concealed) {
			shape = ShapeSevenPairs
		}
		return composeLimit(limits, sit.Dealer(), shape, best)
	}

	var best HandScore
	for i := range ds {
		d := ds[i]
		ctx.Decomposition = &d
		ctx.SevenPairs = false
		s := composeGraded(ctx, situationYaku, featureYaku, decompositionYaku)
		if better(s, best) {
			best = s
		}
	}
	if len(hand.Melds) == 0 && IsSevenPairs(f.Concealed) {
		ctx.Decomposition = nil
		ctx.SevenPairs = true
		s := composeGraded(ctx, situationYaku, featureYaku, irregularYaku)
		if better(s, best) {
			best = s
		}
	}
	return best
}
