package mahjong

// Yaku 役种，数值即稳定的对外标识
type Yaku int

// YakuNone 不对应具体役（一般役合计、本场等）
const YakuNone Yaku = -1

// 役种常量定义，新增只能追加在末尾
const (
	// 场况役
	YakuRiichi       Yaku = iota // 立直
	YakuDoubleRiichi             // 两立直：第一巡立直
	YakuIppatsu                  // 一发
	YakuMenzenTsumo              // 门前清自摸和
	YakuHaitei                   // 海底摸月
	YakuHoutei                   // 河底捞鱼
	YakuRinshan                  // 岭上开花
	YakuChankan                  // 抢杠

	// 手牌特征役
	YakuTanyao       // 断幺九
	YakuHonitsu      // 混一色（门清）
	YakuHonitsuOpen  // 混一色（副露）
	YakuChinitsu     // 清一色（门清）
	YakuChinitsuOpen // 清一色（副露）
	YakuHaku         // 役牌 白
	YakuHatsu        // 役牌 发
	YakuChun         // 役牌 中
	YakuSeatWind     // 自风
	YakuRoundWind    // 场风
	YakuHonroutou    // 混老头
	YakuSankantsu    // 三杠子
	YakuShousangen   // 小三元

	// 拆法役
	YakuToitoi             // 对对和
	YakuSanankou           // 三暗刻
	YakuPinfu              // 平和
	YakuChanta             // 混全带幺九（门清）
	YakuChantaOpen         // 混全带幺九（副露）
	YakuJunchan            // 纯全带幺九（门清）
	YakuJunchanOpen        // 纯全带幺九（副露）
	YakuIttsu              // 一气通贯（门清）
	YakuIttsuOpen          // 一气通贯（副露）
	YakuSanshokuDoujun     // 三色同顺（门清）
	YakuSanshokuDoujunOpen // 三色同顺（副露）
	YakuSanshokuDoukou     // 三色同刻
	YakuIipeikou           // 一杯口
	YakuRyanpeikou         // 二杯口

	// 特殊形
	YakuChiitoitsu // 七对子

	// 役满
	YakuTenhou        // 天和
	YakuChiihou       // 地和
	YakuKokushi       // 国士无双
	YakuKokushi13     // 国士无双十三面
	YakuChuuren       // 九莲宝灯
	YakuJunseiChuuren // 纯正九莲宝灯
	YakuSuukantsu     // 四杠子
	YakuDaisangen     // 大三元
	YakuShousuushii   // 小四喜
	YakuDaisuushii    // 大四喜
	YakuTsuuiisou     // 字一色
	YakuChinroutou    // 清老头
	YakuRyuuiisou     // 绿一色
	YakuSuuankou      // 四暗刻
	YakuSuuankouTanki // 四暗刻单骑

	// 宝牌，单独不成役
	YakuDora    // 宝牌
	YakuUraDora // 里宝牌
	YakuAkaDora // 赤宝牌

	yakuCount
)

// YakuKind 役的类别
type YakuKind int

const (
	KindGraded  YakuKind = iota // 按番计
	KindLimit                   // 役满
	KindSpecial                 // 宝牌，只在已成役时追加
)

func (k YakuKind) String() string {
	switch k {
	case KindGraded:
		return "graded"
	case KindLimit:
		return "limit"
	case KindSpecial:
		return "special"
	default:
		return "unknown"
	}
}

type yakuInfo struct {
	key  string
	name string
}

var yakuInfos = [yakuCount]yakuInfo{
	YakuRiichi:             {"riichi", "Riichi"},
	YakuDoubleRiichi:       {"double_riichi", "Double Riichi"},
	YakuIppatsu:            {"ippatsu", "Ippatsu"},
	YakuMenzenTsumo:        {"menzen_tsumo", "Fully Concealed Self-draw"},
	YakuHaitei:             {"haitei", "Last Tile Self-draw"},
	YakuHoutei:             {"houtei", "Last Discard Win"},
	YakuRinshan:            {"rinshan", "After a Quad"},
	YakuChankan:            {"chankan", "Robbing a Quad"},
	YakuTanyao:             {"tanyao", "All Simples"},
	YakuHonitsu:            {"honitsu", "Half Flush"},
	YakuHonitsuOpen:        {"honitsu_open", "Half Flush (open)"},
	YakuChinitsu:           {"chinitsu", "Full Flush"},
	YakuChinitsuOpen:       {"chinitsu_open", "Full Flush (open)"},
	YakuHaku:               {"haku", "White Dragon"},
	YakuHatsu:              {"hatsu", "Green Dragon"},
	YakuChun:               {"chun", "Red Dragon"},
	YakuSeatWind:           {"seat_wind", "Seat Wind"},
	YakuRoundWind:          {"round_wind", "Round Wind"},
	YakuHonroutou:          {"honroutou", "All Terminals and Honors"},
	YakuSankantsu:          {"sankantsu", "Three Quads"},
	YakuShousangen:         {"shousangen", "Little Three Dragons"},
	YakuToitoi:             {"toitoi", "All Triplets"},
	YakuSanankou:           {"sanankou", "Three Concealed Triplets"},
	YakuPinfu:              {"pinfu", "No Points"},
	YakuChanta:             {"chanta", "Half Outside Hand"},
	YakuChantaOpen:         {"chanta_open", "Half Outside Hand (open)"},
	YakuJunchan:            {"junchan", "Fully Outside Hand"},
	YakuJunchanOpen:        {"junchan_open", "Fully Outside Hand (open)"},
	YakuIttsu:              {"ittsu", "Pure Straight"},
	YakuIttsuOpen:          {"ittsu_open", "Pure Straight (open)"},
	YakuSanshokuDoujun:     {"sanshoku_doujun", "Mixed Triple Sequence"},
	YakuSanshokuDoujunOpen: {"sanshoku_doujun_open", "Mixed Triple Sequence (open)"},
	YakuSanshokuDoukou:     {"sanshoku_doukou", "Triple Triplets"},
	YakuIipeikou:           {"iipeikou", "Pure Double Sequence"},
	YakuRyanpeikou:         {"ryanpeikou", "Twice Pure Double Sequence"},
	YakuChiitoitsu:         {"chiitoitsu", "Seven Pairs"},
	YakuTenhou:             {"tenhou", "Heavenly Win"},
	YakuChiihou:            {"chiihou", "Earthly Win"},
	YakuKokushi:            {"kokushi", "Thirteen Orphans"},
	YakuKokushi13:          {"kokushi_13", "Thirteen Orphans 13-wait"},
	YakuChuuren:            {"chuuren", "Nine Gates"},
	YakuJunseiChuuren:      {"junsei_chuuren", "True Nine Gates"},
	YakuSuukantsu:          {"suukantsu", "Four Quads"},
	YakuDaisangen:          {"daisangen", "Big Three Dragons"},
	YakuShousuushii:        {"shousuushii", "Little Four Winds"},
	YakuDaisuushii:         {"daisuushii", "Big Four Winds"},
	YakuTsuuiisou:          {"tsuuiisou", "All Honors"},
	YakuChinroutou:         {"chinroutou", "All Terminals"},
	YakuRyuuiisou:          {"ryuuiisou", "All Green"},
	YakuSuuankou:           {"suuankou", "Four Concealed Triplets"},
	YakuSuuankouTanki:      {"suuankou_tanki", "Four Concealed Triplets Single Wait"},
	YakuDora:               {"dora", "Dora"},
	YakuUraDora:            {"ura_dora", "Ura Dora"},
	YakuAkaDora:            {"aka_dora", "Red Five"},
}

func (y Yaku) Valid() bool {
	return y >= 0 && y < yakuCount
}

// String 稳定的罗马字标识，供展示层与配置引用
func (y Yaku) String() string {
	if !y.Valid() {
		return "none"
	}
	return yakuInfos[y].key
}

// Name 英文展示名
func (y Yaku) Name() string {
	if !y.Valid() {
		return ""
	}
	return yakuInfos[y].name
}

func (y Yaku) Kind() YakuKind {
	switch {
	case y >= YakuTenhou && y <= YakuSuuankouTanki:
		return KindLimit
	case y >= YakuDora && y <= YakuAkaDora:
		return KindSpecial
	default:
		return KindGraded
	}
}

// ParseYaku 由 String() 反查
func ParseYaku(s string) (Yaku, bool) {
	for y := Yaku(0); y < yakuCount; y++ {
		if yakuInfos[y].key == s {
			return y, true
		}
	}
	return YakuNone, false
}

// AllYaku 全部役种，按标识排序
func AllYaku() []Yaku {
	out := make([]Yaku, 0, yakuCount)
	for y := Yaku(0); y < yakuCount; y++ {
		out = append(out, y)
	}
	return out
}

// YakuContext 一次判定的输入；Decomposition 为空表示七对子或只判定役满
type YakuContext struct {
	Hand          Hand
	Situation     Situation
	Rules         Rules
	Feature       Feature
	Decomposition *Decomposition
	SevenPairs    bool
}

// YakuChecker 返回 (番数, 役满倍数)，都为 0 表示不成立
type YakuChecker interface {
	ID() Yaku
	Check(ctx *YakuContext) (int, int)
}

type yakuCheckerFunc struct {
	id    Yaku
	check func(ctx *YakuContext) (int, int)
}

func (f yakuCheckerFunc) ID() Yaku { return f.id }

func (f yakuCheckerFunc) Check(ctx *YakuContext) (int, int) { return f.check(ctx) }

// han 条件成立时返回固定番数
func han(n int, cond func(ctx *YakuContext) bool) func(ctx *YakuContext) (int, int) {
	return func(ctx *YakuContext) (int, int) {
		if cond(ctx) {
			return n, 0
		}
		return 0, 0
	}
}

// YakuResult 成立的役
type YakuResult struct {
	Yaku  Yaku
	Han   int
	Limit int // 役满倍数
}

// evaluate 依次运行各族判定，收集成立的役
func evaluate(ctx *YakuContext, families ...[]YakuChecker) []YakuResult {
	var out []YakuResult
	for _, family := range families {
		for _, checker := range family {
			h, limit := checker.Check(ctx)
			if h > 0 || limit > 0 {
				out = append(out, YakuResult{Yaku: checker.ID(), Han: h, Limit: limit})
			}
		}
	}
	return out
}

// situationYaku 只看场况
var situationYaku = []YakuChecker{
	yakuCheckerFunc{id: YakuRiichi, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Situation.Riichi && !ctx.Situation.DoubleRiichi
	})},
	yakuCheckerFunc{id: YakuDoubleRiichi, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Situation.DoubleRiichi
	})},
	yakuCheckerFunc{id: YakuIppatsu, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Situation.Ippatsu
	})},
	yakuCheckerFunc{id: YakuMenzenTsumo, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Situation.Tsumo && ctx.Feature.IsConcealed
	})},
	yakuCheckerFunc{id: YakuHaitei, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Situation.Tsumo && ctx.Situation.LastTile
	})},
	yakuCheckerFunc{id: YakuHoutei, check: han(1, func(ctx *YakuContext) bool {
		return !ctx.Situation.Tsumo && ctx.Situation.LastTile
	})},
	yakuCheckerFunc{id: YakuRinshan, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Situation.Rinshan && ctx.Situation.Tsumo
	})},
	yakuCheckerFunc{id: YakuChankan, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Situation.Chankan && !ctx.Situation.Tsumo
	})},
}

// featureYaku 只看整手统计，与拆法无关
var featureYaku = []YakuChecker{
	yakuCheckerFunc{id: YakuTanyao, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Feature.Orphans == 0 && (ctx.Feature.IsConcealed || ctx.Rules.OpenTanyao)
	})},
	yakuCheckerFunc{id: YakuHonitsu, check: han(3, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && ctx.Feature.Suits == 1 && ctx.Feature.HasHonor
	})},
	yakuCheckerFunc{id: YakuHonitsuOpen, check: han(2, func(ctx *YakuContext) bool {
		return !ctx.Feature.IsConcealed && ctx.Feature.Suits == 1 && ctx.Feature.HasHonor
	})},
	yakuCheckerFunc{id: YakuChinitsu, check: han(6, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && ctx.Feature.Suits == 1 && !ctx.Feature.HasHonor
	})},
	yakuCheckerFunc{id: YakuChinitsuOpen, check: han(5, func(ctx *YakuContext) bool {
		return !ctx.Feature.IsConcealed && ctx.Feature.Suits == 1 && !ctx.Feature.HasHonor
	})},
	yakuCheckerFunc{id: YakuHaku, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Feature.Dragons[0] >= 3
	})},
	yakuCheckerFunc{id: YakuHatsu, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Feature.Dragons[1] >= 3
	})},
	yakuCheckerFunc{id: YakuChun, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Feature.Dragons[2] >= 3
	})},
	yakuCheckerFunc{id: YakuSeatWind, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Feature.SeatWind >= 3
	})},
	yakuCheckerFunc{id: YakuRoundWind, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Feature.RoundWind >= 3
	})},
	yakuCheckerFunc{id: YakuHonroutou, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Feature.Orphans == ctx.Feature.Tiles
	})},
	yakuCheckerFunc{id: YakuSankantsu, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Feature.Quads == 3
	})},
	yakuCheckerFunc{id: YakuShousangen, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Feature.DragonSets() == 2 && ctx.Feature.DragonPairs() == 1
	})},
}

// decompositionYaku 针对每种拆法判定
var decompositionYaku = []YakuChecker{
	yakuCheckerFunc{id: YakuToitoi, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Decomposition != nil && countRuns(ctx.Decomposition) == 0
	})},
	yakuCheckerFunc{id: YakuSanankou, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Decomposition != nil && concealedTriplets(ctx) == 3
	})},
	yakuCheckerFunc{id: YakuPinfu, check: han(1, checkPinfu)},
	yakuCheckerFunc{id: YakuChanta, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && checkChanta(ctx)
	})},
	yakuCheckerFunc{id: YakuChantaOpen, check: han(1, func(ctx *YakuContext) bool {
		return !ctx.Feature.IsConcealed && checkChanta(ctx)
	})},
	yakuCheckerFunc{id: YakuJunchan, check: han(3, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && checkJunchan(ctx)
	})},
	yakuCheckerFunc{id: YakuJunchanOpen, check: han(2, func(ctx *YakuContext) bool {
		return !ctx.Feature.IsConcealed && checkJunchan(ctx)
	})},
	yakuCheckerFunc{id: YakuIttsu, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && checkIttsu(ctx)
	})},
	yakuCheckerFunc{id: YakuIttsuOpen, check: han(1, func(ctx *YakuContext) bool {
		return !ctx.Feature.IsConcealed && checkIttsu(ctx)
	})},
	yakuCheckerFunc{id: YakuSanshokuDoujun, check: han(2, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && checkSanshoku(ctx, MeldRun)
	})},
	yakuCheckerFunc{id: YakuSanshokuDoujunOpen, check: han(1, func(ctx *YakuContext) bool {
		return !ctx.Feature.IsConcealed && checkSanshoku(ctx, MeldRun)
	})},
	yakuCheckerFunc{id: YakuSanshokuDoukou, check: han(2, func(ctx *YakuContext) bool {
		return checkSanshoku(ctx, MeldTriplet)
	})},
	yakuCheckerFunc{id: YakuIipeikou, check: han(1, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && identicalRunPairs(ctx) == 1
	})},
	yakuCheckerFunc{id: YakuRyanpeikou, check: han(3, func(ctx *YakuContext) bool {
		return ctx.Feature.IsConcealed && identicalRunPairs(ctx) == 2
	})},
}

// irregularYaku 直接看牌型
var irregularYaku = []YakuChecker{
	yakuCheckerFunc{id: YakuChiitoitsu, check: han(2, func(ctx *YakuContext) bool {
		return ctx.SevenPairs
	})},
}

// bonusYaku 宝牌，已有役时才追加
var bonusYaku = []YakuChecker{
	yakuCheckerFunc{id: YakuDora, check: func(ctx *YakuContext) (int, int) {
		return ctx.Feature.Dora, 0
	}},
	yakuCheckerFunc{id: YakuUraDora, check: func(ctx *YakuContext) (int, int) {
		if !ctx.Situation.Declared() {
			return 0, 0
		}
		return ctx.Feature.UraDora, 0
	}},
	yakuCheckerFunc{id: YakuAkaDora, check: func(ctx *YakuContext) (int, int) {
		if !ctx.Rules.RedFives {
			return 0, 0
		}
		return ctx.Feature.Aka, 0
	}},
}

func countRuns(d *Decomposition) int {
	n := 0
	for _, m := range d.Melds {
		if m.IsRun() {
			n++
		}
	}
	return n
}

// isRonTriplet 荣和补成的双碰刻子视为明刻
func isRonTriplet(ctx *YakuContext, i int) bool {
	d := ctx.Decomposition
	return !ctx.Situation.Tsumo && i == d.WinMeld && d.Wait == WaitShanpon
}

// concealedTriplets 暗刻数（含暗杠）
func concealedTriplets(ctx *YakuContext) int {
	n := 0
	for i, m := range ctx.Decomposition.Melds {
		if m.IsTriplet() && m.IsConcealed() && !isRonTriplet(ctx, i) {
			n++
		}
	}
	return n
}

// isValueHead 雀头是否为役牌（三元牌、自风、场风）
func isValueHead(ctx *YakuContext) bool {
	tt := ctx.Decomposition.Head.Type
	return tt.IsDragon() ||
		tt == ctx.Situation.SeatWind.TileType() ||
		tt == ctx.Situation.RoundWind.TileType()
}

func checkPinfu(ctx *YakuContext) bool {
	d := ctx.Decomposition
	if d == nil || !ctx.Feature.IsConcealed || len(ctx.Hand.Melds) > 0 {
		return false
	}
	return countRuns(d) == 4 && !isValueHead(ctx) && d.Wait == WaitRyanmen
}

func checkChanta(ctx *YakuContext) bool {
	d := ctx.Decomposition
	if d == nil || !ctx.Feature.HasHonor || countRuns(d) == 0 || !d.Head.Type.IsOrphan() {
		return false
	}
	for _, m := range d.Melds {
		if !m.HasOrphan() {
			return false
		}
	}
	return true
}

func checkJunchan(ctx *YakuContext) bool {
	d := ctx.Decomposition
	if d == nil || ctx.Feature.HasHonor || countRuns(d) == 0 || !d.Head.Type.IsTerminal() {
		return false
	}
	for _, m := range d.Melds {
		if !m.HasTerminal() {
			return false
		}
	}
	return true
}

func checkIttsu(ctx *YakuContext) bool {
	d := ctx.Decomposition
	if d == nil {
		return false
	}
	var seen [3][3]bool
	for _, m := range d.Melds {
		if !m.IsRun() {
			continue
		}
		first := m.First()
		switch first.Number() {
		case 1, 4, 7:
			seen[first.Suit()][first.Number()/3] = true
		}
	}
	for _, s := range seen {
		if s[0] && s[1] && s[2] {
			return true
		}
	}
	return false
}

// checkSanshoku 三种花色同点数的顺子（kind=MeldRun）或刻子/杠子（kind=MeldTriplet）
func checkSanshoku(ctx *YakuContext, kind MeldKind) bool {
	d := ctx.Decomposition
	if d == nil {
		return false
	}
	var seen [10][3]bool
	for _, m := range d.Melds {
		first := m.First()
		if !first.IsNumbered() {
			continue
		}
		if (kind == MeldRun) != m.IsRun() {
			continue
		}
		seen[first.Number()][first.Suit()] = true
	}
	for _, s := range seen {
		if s[0] && s[1] && s[2] {
			return true
		}
	}
	return false
}

// identicalRunPairs 门内相同顺子的组数，四组相同顺子算两组
func identicalRunPairs(ctx *YakuContext) int {
	d := ctx.Decomposition
	if d == nil {
		return 0
	}
	var runs [TileKinds]int
	for _, m := range d.HandMelds() {
		if m.IsRun() {
			runs[m.First()]++
		}
	}
	pairs := 0
	for _, n := range runs {
		pairs += n / 2
	}
	return pairs
}

func roundUpTo100(x int) int {
	if x <= 0 {
		return 0
	}
	return (x + 99) / 100 * 100
}
