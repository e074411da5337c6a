package mahjong

import (
	"sort"
	"strings"
)

type Wind int

const (
	WindEast  Wind = iota // 东风
	WindSouth             // 南风
	WindWest              // 西风
	WindNorth             // 北风
)

type TileType int

const (
	// 万子 (0-8)
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

const (
	TileKinds  = 34  // 牌种数
	TileLimit  = 136 // 一副牌总数
	TileCopies = 4   // 每种牌张数
)

// Suit 花色
type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSo
	SuitHonor
)

// Tile 一张实体牌，Aka 表示赤宝牌；比较牌型时忽略 Aka
type Tile struct {
	Type TileType
	Aka  bool
}

func (t TileType) Valid() bool {
	return t >= Man1 && t <= Red
}

func (t TileType) IsNumbered() bool {
	return t >= Man1 && t <= So9
}

func (t TileType) IsHonor() bool {
	return t >= East && t <= Red
}

func (t TileType) IsWind() bool {
	return t >= East && t <= North
}

func (t TileType) IsDragon() bool {
	return t >= White && t <= Red
}

func (t TileType) IsFive() bool {
	return t == Man5 || t == Pin5 || t == So5
}

// IsTerminal 老头牌（数牌 1、9）
func (t TileType) IsTerminal() bool {
	return t.IsNumbered() && (t.Number() == 1 || t.Number() == 9)
}

// IsOrphan 幺九牌（老头牌 + 字牌）
func (t TileType) IsOrphan() bool {
	return t.IsTerminal() || t.IsHonor()
}

// IsSimple 中张牌（数牌 2-8）
func (t TileType) IsSimple() bool {
	return t.IsNumbered() && !t.IsTerminal()
}

func (t TileType) Suit() Suit {
	switch {
	case t >= Man1 && t <= Man9:
		return SuitMan
	case t >= Pin1 && t <= Pin9:
		return SuitPin
	case t >= So1 && t <= So9:
		return SuitSo
	default:
		return SuitHonor
	}
}

// Number 数牌点数 1-9，字牌返回 0
func (t TileType) Number() int {
	if !t.IsNumbered() {
		return 0
	}
	return int(t)%9 + 1
}

// Wind 风牌对应的风，非风牌返回 -1
func (t TileType) Wind() Wind {
	if !t.IsWind() {
		return -1
	}
	return Wind(t - East)
}

// Dora 以当前牌为宝牌指示牌时对应的宝牌
func (t TileType) Dora() TileType {
	switch {
	case t.IsNumbered():
		if t.Number() == 9 {
			return t - 8
		}
		return t + 1
	case t == North:
		return East
	case t == Red:
		return White
	default:
		return t + 1
	}
}

func (t TileType) String() string {
	if t.IsNumbered() {
		return string(rune('0'+t.Number())) + suitLetters[t.Suit()]
	}
	if t.IsHonor() {
		return honorNames[t-East]
	}
	return "?"
}

var suitLetters = [...]string{SuitMan: "m", SuitPin: "p", SuitSo: "s"}

var honorNames = [...]string{"E", "S", "W", "N", "Dw", "Dg", "Dr"}

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "东"
	case WindSouth:
		return "南"
	case WindWest:
		return "西"
	case WindNorth:
		return "北"
	default:
		return "未知"
	}
}

func (w Wind) Next() Wind {
	return (w + 1) % 4
}

func (w Wind) Valid() bool {
	return w >= WindEast && w <= WindNorth
}

// TileType 风对应的风牌
func (w Wind) TileType() TileType {
	return East + TileType(w)
}

// IsRedFive 判断是否为赤宝牌
func (t Tile) IsRedFive() bool {
	return t.Aka && t.Type.IsFive()
}

// IsFive 判断是否为5牌（不区分赤普通）
func (t Tile) IsFive() bool {
	return t.Type.IsFive()
}

// Equal 忽略赤宝牌标记的同种牌比较
func (t Tile) Equal(o Tile) bool {
	return t.Type == o.Type
}

func (t Tile) String() string {
	if t.IsRedFive() {
		return "0" + suitLetters[t.Type.Suit()]
	}
	return t.Type.String()
}

// NewTile 普通牌
func NewTile(tt TileType) Tile {
	return Tile{Type: tt}
}

// NewRedFive 赤五
func NewRedFive(s Suit) Tile {
	return Tile{Type: TileType(int(s)*9 + 4), Aka: true}
}

// SortTiles 按牌种排序，同种牌赤五在前
func SortTiles(tiles []Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		if tiles[i].Type != tiles[j].Type {
			return tiles[i].Type < tiles[j].Type
		}
		return tiles[i].Aka && !tiles[j].Aka
	})
}

// FormatTiles 输出紧凑记法，如 123m05p E Dw
func FormatTiles(tiles []Tile) string {
	sorted := append([]Tile(nil), tiles...)
	SortTiles(sorted)
	var b strings.Builder
	pending := Suit(-1)
	flush := func() {
		if pending >= SuitMan && pending <= SuitSo {
			b.WriteString(suitLetters[pending])
		}
		pending = -1
	}
	for _, t := range sorted {
		s := t.Type.Suit()
		if s == SuitHonor {
			flush()
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Type.String())
			continue
		}
		if s != pending {
			flush()
			pending = s
		}
		if t.IsRedFive() {
			b.WriteByte('0')
		} else {
			b.WriteByte(byte('0' + t.Type.Number()))
		}
	}
	flush()
	return b.String()
}

func kokushiTileTypes() []TileType {
	return []TileType{Man1, Man9, Pin1, Pin9, So1, So9, East, South, West, North, White, Green, Red}
}

// greenTiles 绿一色可用牌
var greenTiles = map[TileType]struct{}{
	So2: {}, So3: {}, So4: {}, So6: {}, So8: {}, Green: {},
}
