package engines

import (
	"fmt"

	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
)

type engineType int32

const (
	RIICHI_MAHJONG_4P_ENGINE engineType = iota // 立直麻将4人 计分引擎
)

func (t engineType) String() string {
	switch t {
	case RIICHI_MAHJONG_4P_ENGINE:
		return "riichi_mahjong_4p"
	default:
		return fmt.Sprintf("engine(%d)", int32(t))
	}
}

// Scorer 计分引擎，无对局状态，可被多个协程共享
type Scorer interface {
	// Evaluate 一手和了牌的得点，无役返回零值
	Evaluate(hand mahjong.Hand, sit mahjong.Situation) (mahjong.HandScore, error)

	// Waits 听牌列表
	Waits(concealed []mahjong.Tile, melds []mahjong.Meld) ([]mahjong.TileType, error)

	Settle(score mahjong.HandScore, table mahjong.TableContext) (mahjong.Settlement, error)
	SettleMultiRon(discarder int, claims []mahjong.RonClaim) ([]mahjong.Settlement, error)
	SettleExhaustiveDraw(ready [4]bool) (mahjong.Settlement, error)
}

// Options 创建引擎的参数
type Options struct {
	Rules mahjong.Rules
	Cache mahjong.DecompositionCache // 可为空
}

// NewScorer 按引擎类型创建计分引擎
func NewScorer(t engineType, opts Options) (Scorer, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}
	switch t {
	case RIICHI_MAHJONG_4P_ENGINE:
		eg := mahjong.NewRiichiMahjong4p(opts.Rules)
		if opts.Cache != nil {
			eg.WithCache(opts.Cache)
		}
		return eg, nil
	default:
		return nil, fmt.Errorf("不支持的引擎类型: %s", t)
	}
}

// Rebind 以新规则复制引擎，拆牌缓存沿用原引擎
func Rebind(s Scorer, rules mahjong.Rules) (Scorer, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	switch eg := s.(type) {
	case *mahjong.RiichiMahjong4p:
		return eg.Clone(rules), nil
	default:
		return nil, fmt.Errorf("引擎 %T 不支持规则热更新", s)
	}
}

// ParseEngineType 由配置名得到引擎类型
func ParseEngineType(name string) (engineType, error) {
	switch name {
	case "", "riichi_mahjong_4p":
		return RIICHI_MAHJONG_4P_ENGINE, nil
	default:
		return 0, fmt.Errorf("未知的引擎类型: %s", name)
	}
}
