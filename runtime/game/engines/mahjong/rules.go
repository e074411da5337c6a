package mahjong

import "fmt"

// Rules 可配置的规则项
type Rules struct {
	OpenTanyao   bool // 食断
	RedFives     bool // 赤宝牌计番
	DoubleLimit  bool // 国士十三面、纯正九莲、大四喜、四暗刻单骑记双倍役满
	CountedLimit bool // 累计役满（13 番以上）
	DepositUnit  int  // 每根立直棒
	StreakUnit   int  // 每本场
	DrawPot      int  // 流局罚符总额
}

func DefaultRules() Rules {
	return Rules{
		OpenTanyao:   true,
		RedFives:     true,
		DoubleLimit:  true,
		CountedLimit: true,
		DepositUnit:  1000,
		StreakUnit:   300,
		DrawPot:      3000,
	}
}

func (r Rules) Validate() error {
	if r.DepositUnit < 0 || r.StreakUnit < 0 || r.DrawPot < 0 {
		return fmt.Errorf("%w: negative unit", ErrInvalidRules)
	}
	// 1-3 家平分都要整除
	if r.DrawPot%6 != 0 {
		return fmt.Errorf("%w: draw pot %d is not a multiple of 6", ErrInvalidRules, r.DrawPot)
	}
	return nil
}
