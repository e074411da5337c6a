package mahjong

import "fmt"

// MeldKind 面子种类
type MeldKind int

const (
	MeldRun     MeldKind = iota // 顺子
	MeldTriplet                 // 刻子
	MeldQuad                    // 杠子
)

// Side 面子来源，相对和牌者
type Side int

const (
	SideSelf   Side = iota // 自己（暗刻、暗杠、手牌中的面子）
	SideLeft               // 上家
	SideAcross             // 对家
	SideRight              // 下家
)

func (k MeldKind) String() string {
	switch k {
	case MeldRun:
		return "run"
	case MeldTriplet:
		return "triplet"
	case MeldQuad:
		return "quad"
	default:
		return "unknown"
	}
}

func (s Side) String() string {
	switch s {
	case SideSelf:
		return "self"
	case SideLeft:
		return "left"
	case SideAcross:
		return "across"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// SeatFrom 以 seat 为和牌者时来源对应的座位
func (s Side) SeatFrom(seat int) int {
	switch s {
	case SideLeft:
		return (seat + 3) % 4
	case SideAcross:
		return (seat + 2) % 4
	case SideRight:
		return (seat + 1) % 4
	default:
		return seat
	}
}

// Meld 面子：顺子/刻子/杠子 + 来源；Added 表示由明刻加杠而成
type Meld struct {
	Kind   MeldKind
	Source Side
	Added  bool
	Tiles  []Tile
}

// NewMeld 校验并构造面子
func NewMeld(kind MeldKind, source Side, tiles []Tile) (Meld, error) {
	sorted := append([]Tile(nil), tiles...)
	SortTiles(sorted)
	m := Meld{Kind: kind, Source: source, Tiles: sorted}
	if err := m.Validate(); err != nil {
		return Meld{}, err
	}
	return m, nil
}

// Validate 检查面子结构
func (m Meld) Validate() error {
	if m.Source < SideSelf || m.Source > SideRight {
		return fmt.Errorf("%w: unknown source %d", ErrMalformedMeld, m.Source)
	}
	for _, t := range m.Tiles {
		if !t.Type.Valid() {
			return fmt.Errorf("%w: bad tile %d", ErrMalformedMeld, t.Type)
		}
	}
	switch m.Kind {
	case MeldRun:
		if len(m.Tiles) != 3 {
			return fmt.Errorf("%w: run needs 3 tiles, got %d", ErrMalformedMeld, len(m.Tiles))
		}
		first := m.Tiles[0].Type
		if !first.IsNumbered() || first.Number() > 7 ||
			m.Tiles[1].Type != first+1 || m.Tiles[2].Type != first+2 {
			return fmt.Errorf("%w: %s is not a run", ErrMalformedMeld, FormatTiles(m.Tiles))
		}
	case MeldTriplet, MeldQuad:
		want := 3
		if m.Kind == MeldQuad {
			want = 4
		}
		if len(m.Tiles) != want {
			return fmt.Errorf("%w: %s needs %d tiles, got %d", ErrMalformedMeld, m.Kind, want, len(m.Tiles))
		}
		for _, t := range m.Tiles[1:] {
			if !t.Equal(m.Tiles[0]) {
				return fmt.Errorf("%w: %s is not a %s", ErrMalformedMeld, FormatTiles(m.Tiles), m.Kind)
			}
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrMalformedMeld, m.Kind)
	}
	if m.Added && (m.Kind != MeldQuad || m.Source == SideSelf) {
		return fmt.Errorf("%w: added quad must extend a claimed triplet", ErrMalformedMeld)
	}
	return nil
}

func (m Meld) IsRun() bool { return m.Kind == MeldRun }

func (m Meld) IsQuad() bool { return m.Kind == MeldQuad }

// IsTriplet 刻子或杠子
func (m Meld) IsTriplet() bool { return m.Kind == MeldTriplet || m.Kind == MeldQuad }

// IsConcealed 暗刻、暗杠或手牌中的面子
func (m Meld) IsConcealed() bool { return m.Source == SideSelf }

// IsCalled 通过鸣牌形成（暗杠不算）
func (m Meld) IsCalled() bool { return m.Source != SideSelf }

// First 面子中最小的牌种
func (m Meld) First() TileType {
	if len(m.Tiles) == 0 {
		return -1
	}
	return m.Tiles[0].Type
}

// HasOrphan 含幺九牌
func (m Meld) HasOrphan() bool {
	if m.IsRun() {
		return m.First().IsTerminal() || (m.First() + 2).IsTerminal()
	}
	return m.First().IsOrphan()
}

// HasTerminal 含老头牌（不含字牌）
func (m Meld) HasTerminal() bool {
	if m.IsRun() {
		return m.First().IsTerminal() || (m.First() + 2).IsTerminal()
	}
	return m.First().IsTerminal()
}

// Contains 是否含有某种牌
func (m Meld) Contains(tt TileType) bool {
	for _, t := range m.Tiles {
		if t.Type == tt {
			return true
		}
	}
	return false
}

func (m Meld) String() string {
	return fmt.Sprintf("%s@%s:%s", m.Kind, m.Source, FormatTiles(m.Tiles))
}

// Head 雀头
type Head struct {
	Type TileType
}

func (h Head) Tiles() []Tile {
	return []Tile{NewTile(h.Type), NewTile(h.Type)}
}

// newConcealedMeld 由牌种构造手牌中的面子
func newConcealedMeld(kind MeldKind, first TileType) Meld {
	switch kind {
	case MeldRun:
		return Meld{Kind: MeldRun, Source: SideSelf, Tiles: []Tile{NewTile(first), NewTile(first + 1), NewTile(first + 2)}}
	default:
		return Meld{Kind: MeldTriplet, Source: SideSelf, Tiles: []Tile{NewTile(first), NewTile(first), NewTile(first)}}
	}
}
