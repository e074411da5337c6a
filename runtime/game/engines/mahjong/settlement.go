package mahjong

import "fmt"

// WinMethod 和了方式
type WinMethod int

const (
	WinTsumo   WinMethod = iota // 自摸
	WinRon                      // 荣和
	WinChankan                  // 抢杠荣和
)

func (m WinMethod) String() string {
	switch m {
	case WinTsumo:
		return "tsumo"
	case WinRon:
		return "ron"
	case WinChankan:
		return "chankan"
	default:
		return "unknown"
	}
}

// IsRon 由他家放铳（含抢杠）
func (m WinMethod) IsRon() bool {
	return m == WinRon || m == WinChankan
}

// TableContext 结算所需的桌面信息，座位号 0-3
type TableContext struct {
	Winner    int
	Dealer    int
	Method    WinMethod
	Discarder int    // 荣和时的放铳者
	Deposits  int    // 场上立直棒根数
	Streak    int    // 本场数
	Melds     []Meld // 和牌者的副露，按成立顺序
	Rinshan   bool   // 岭上开花自摸
}

// Validate 检查座位与计数
func (t TableContext) Validate() error {
	if t.Winner < 0 || t.Winner > 3 || t.Dealer < 0 || t.Dealer > 3 {
		return fmt.Errorf("%w: winner=%d dealer=%d", ErrInvalidTable, t.Winner, t.Dealer)
	}
	if t.Method < WinTsumo || t.Method > WinChankan {
		return fmt.Errorf("%w: method %d", ErrInvalidTable, t.Method)
	}
	if t.Method.IsRon() && (t.Discarder < 0 || t.Discarder > 3 || t.Discarder == t.Winner) {
		return fmt.Errorf("%w: discarder=%d winner=%d", ErrInvalidTable, t.Discarder, t.Winner)
	}
	if t.Rinshan && t.Method != WinTsumo {
		return fmt.Errorf("%w: replacement tile win must be a self-draw", ErrInvalidTable)
	}
	if t.Deposits < 0 || t.Streak < 0 {
		return fmt.Errorf("%w: deposits=%d streak=%d", ErrInvalidTable, t.Deposits, t.Streak)
	}
	for i, m := range t.Melds {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: meld %d: %v", ErrInvalidTable, i, err)
		}
	}
	return nil
}

// Payment 一笔支付明细
type Payment struct {
	From   int
	To     int
	Amount int
	Yaku   Yaku // 对应的子得点，本场为 YakuNone
	Streak bool
	Liable bool // 包牌支付
}

// Settlement 各家点数变动；sum(Deltas) == DepositIncome
type Settlement struct {
	Deltas        [4]int
	DepositIncome int
	Payments      []Payment
}

func (s *Settlement) pay(p Payment) {
	if p.Amount <= 0 {
		return
	}
	s.Deltas[p.From] -= p.Amount
	s.Deltas[p.To] += p.Amount
	s.Payments = append(s.Payments, p)
}

// Merge 合并多笔结算（一炮多响）
func Merge(settlements ...Settlement) Settlement {
	var out Settlement
	for _, s := range settlements {
		for i := range out.Deltas {
			out.Deltas[i] += s.Deltas[i]
		}
		out.DepositIncome += s.DepositIncome
		out.Payments = append(out.Payments, s.Payments...)
	}
	return out
}

// shareOf v 的 1/n，进位到 100
func shareOf(v, n int) int {
	return roundUpTo100((v + n - 1) / n)
}

// liabilityYaku 可能产生包牌的役满
var liabilityYaku = map[Yaku]func(m Meld) bool{
	YakuDaisangen:  func(m Meld) bool { return m.IsTriplet() && m.First().IsDragon() },
	YakuDaisuushii: func(m Meld) bool { return m.IsTriplet() && m.First().IsWind() },
	YakuSuukantsu:  func(m Meld) bool { return m.IsQuad() },
}

// liableSeat 子得点的包牌者，-1 表示无
func liableSeat(sub SubScore, table TableContext) int {
	if seat := rinshanLiability(table); seat >= 0 {
		return seat
	}
	relevant, ok := liabilityYaku[sub.Yaku]
	if !ok {
		return -1
	}
	need := 3
	if sub.Yaku != YakuDaisangen {
		need = 4
	}
	var last *Meld
	n := 0
	for i := range table.Melds {
		if relevant(table.Melds[i]) {
			n++
			last = &table.Melds[i]
		}
	}
	if n < need || last == nil || !last.IsCalled() {
		return -1
	}
	// 加杠的刻子在碰时已由供牌者确定包牌，只有四杠子不因加杠包牌
	if last.Added && sub.Yaku == YakuSuukantsu {
		return -1
	}
	return last.Source.SeatFrom(table.Winner)
}

// rinshanLiability 岭上自摸且最后一个副露是他家供给的明杠
func rinshanLiability(table TableContext) int {
	if !table.Rinshan || table.Method != WinTsumo || len(table.Melds) == 0 {
		return -1
	}
	last := table.Melds[len(table.Melds)-1]
	if !last.IsQuad() || !last.IsCalled() || last.Added {
		return -1
	}
	return last.Source.SeatFrom(table.Winner)
}

// Settle 按子得点逐份支付，再加本场与立直棒
func Settle(score HandScore, table TableContext, rules Rules) (Settlement, error) {
	if err := table.Validate(); err != nil {
		return Settlement{}, err
	}
	if err := rules.Validate(); err != nil {
		return Settlement{}, err
	}
	if score.IsZero() || len(score.SubScores) == 0 {
		return Settlement{}, ErrEmptyScore
	}
	if (table.Winner == table.Dealer) != score.Dealer {
		return Settlement{}, fmt.Errorf("%w: dealer flag does not match seats", ErrInvalidTable)
	}

	var s Settlement
	winner := table.Winner
	streakPayer := -1
	for _, sub := range score.SubScores {
		v := sub.Value
		liable := liableSeat(sub, table)
		switch {
		case liable >= 0 && table.Method.IsRon() && liable != table.Discarder:
			half := shareOf(v, 2)
			s.pay(Payment{From: liable, To: winner, Amount: half, Yaku: sub.Yaku, Liable: true})
			s.pay(Payment{From: table.Discarder, To: winner, Amount: half, Yaku: sub.Yaku})
		case liable >= 0:
			s.pay(Payment{From: liable, To: winner, Amount: v, Yaku: sub.Yaku, Liable: true})
			if table.Method == WinTsumo && streakPayer < 0 {
				streakPayer = liable
			}
		case table.Method.IsRon():
			s.pay(Payment{From: table.Discarder, To: winner, Amount: v, Yaku: sub.Yaku})
		case winner == table.Dealer:
			for seat := 0; seat < 4; seat++ {
				if seat != winner {
					s.pay(Payment{From: seat, To: winner, Amount: shareOf(v, 3), Yaku: sub.Yaku})
				}
			}
		default:
			for seat := 0; seat < 4; seat++ {
				switch {
				case seat == winner:
				case seat == table.Dealer:
					s.pay(Payment{From: seat, To: winner, Amount: shareOf(v, 2), Yaku: sub.Yaku})
				default:
					s.pay(Payment{From: seat, To: winner, Amount: shareOf(v, 4), Yaku: sub.Yaku})
				}
			}
		}
	}

	streak := table.Streak * rules.StreakUnit
	switch {
	case streak == 0:
	case table.Method.IsRon():
		s.pay(Payment{From: table.Discarder, To: winner, Amount: streak, Yaku: YakuNone, Streak: true})
	case streakPayer >= 0:
		s.pay(Payment{From: streakPayer, To: winner, Amount: streak, Yaku: YakuNone, Streak: true, Liable: true})
	default:
		for seat := 0; seat < 4; seat++ {
			if seat != winner {
				s.pay(Payment{From: seat, To: winner, Amount: shareOf(streak, 3), Yaku: YakuNone, Streak: true})
			}
		}
	}

	s.DepositIncome = table.Deposits * rules.DepositUnit
	s.Deltas[winner] += s.DepositIncome
	return s, nil
}

// RonClaim 一炮多响中的一家
type RonClaim struct {
	Score HandScore
	Table TableContext
}

// StickWinner 离放铳者最近（按行牌顺序）的和牌者拿走立直棒与本场
func StickWinner(discarder int, winners []int) int {
	best, bestDist := -1, 5
	for _, w := range winners {
		if d := (w - discarder + 4) % 4; d > 0 && d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}

// SettleMultiRon 多家荣和各自全额结算，立直棒与本场只归一家
func SettleMultiRon(discarder int, claims []RonClaim, rules Rules) ([]Settlement, error) {
	if len(claims) == 0 || len(claims) > 3 {
		return nil, fmt.Errorf("%w: %d ron claims", ErrInvalidTable, len(claims))
	}
	if discarder < 0 || discarder > 3 {
		return nil, fmt.Errorf("%w: discarder %d", ErrInvalidTable, discarder)
	}
	winners := make([]int, 0, len(claims))
	seen := make(map[int]bool, len(claims))
	for _, c := range claims {
		t := c.Table
		if !t.Method.IsRon() || t.Discarder != discarder {
			return nil, fmt.Errorf("%w: claim by %d is not a ron on %d", ErrInvalidTable, t.Winner, discarder)
		}
		if seen[t.Winner] {
			return nil, fmt.Errorf("%w: duplicate winner %d", ErrInvalidTable, t.Winner)
		}
		seen[t.Winner] = true
		winners = append(winners, t.Winner)
	}

	sticks := StickWinner(discarder, winners)
	out := make([]Settlement, 0, len(claims))
	for _, c := range claims {
		t := c.Table
		if t.Winner != sticks {
			t.Deposits = 0
			t.Streak = 0
		}
		s, err := Settle(c.Score, t, rules)
		if err != nil {
			return nil, fmt.Errorf("winner %d: %w", t.Winner, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// SettleExhaustiveDraw 荒牌流局：听牌者平分罚符
func SettleExhaustiveDraw(ready [4]bool, rules Rules) (Settlement, error) {
	if err := rules.Validate(); err != nil {
		return Settlement{}, err
	}
	var s Settlement
	n := 0
	for _, r := range ready {
		if r {
			n++
		}
	}
	if n == 0 || n == 4 {
		return s, nil
	}
	winEach := rules.DrawPot / n
	loseEach := rules.DrawPot / (4 - n)
	for seat, r := range ready {
		if r {
			s.Deltas[seat] += winEach
		} else {
			s.Deltas[seat] -= loseEach
		}
	}
	return s, nil
}
