package mahjong

import "fmt"

// Hand 和牌者的手牌：门内牌（不含和了牌）+ 和了牌 + 按成立顺序排列的副露/暗杠
type Hand struct {
	Concealed []Tile
	WinTile   Tile
	Melds     []Meld
}

// NewHand 由记法构造手牌
func NewHand(concealed string, win string, melds ...string) (Hand, error) {
	tiles, err := ParseTiles(concealed)
	if err != nil {
		return Hand{}, err
	}
	wt, err := ParseTile(win)
	if err != nil {
		return Hand{}, err
	}
	h := Hand{Concealed: tiles, WinTile: wt}
	for _, s := range melds {
		m, err := ParseMeld(s)
		if err != nil {
			return Hand{}, err
		}
		h.Melds = append(h.Melds, m)
	}
	return h, h.Validate()
}

// Validate 检查张数与牌的合法性
func (h Hand) Validate() error {
	if len(h.Concealed)%3 != 1 {
		return fmt.Errorf("%w: %d concealed tiles is not 3k+1", ErrTileCount, len(h.Concealed))
	}
	if len(h.Concealed)+3*len(h.Melds) != 13 {
		return fmt.Errorf("%w: %d concealed tiles with %d melds", ErrTileCount, len(h.Concealed), len(h.Melds))
	}
	if !h.WinTile.Type.Valid() {
		return fmt.Errorf("%w: winning tile %d", ErrTileCount, h.WinTile.Type)
	}
	quads := 0
	for i, m := range h.Melds {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("meld %d: %w", i, err)
		}
		if m.IsQuad() {
			quads++
		}
	}
	if quads > 4 {
		return ErrTooManyQuads
	}
	counts := h.Counts34()
	for tt, c := range counts {
		if c > TileCopies {
			return fmt.Errorf("%w: %s x%d", ErrTileOverflow, TileType(tt), c)
		}
	}
	for _, t := range h.Tiles() {
		if !t.Type.Valid() {
			return fmt.Errorf("%w: bad tile %d", ErrTileCount, t.Type)
		}
	}
	return nil
}

// Tiles 全部牌（门内 + 和了牌 + 副露展开）
func (h Hand) Tiles() []Tile {
	out := make([]Tile, 0, 18)
	out = append(out, h.Concealed...)
	out = append(out, h.WinTile)
	for _, m := range h.Melds {
		out = append(out, m.Tiles...)
	}
	return out
}

// Concealed34 门内牌 + 和了牌的计数
func (h Hand) Concealed34() Hand34 {
	var c Hand34
	for _, t := range h.Concealed {
		if t.Type.Valid() {
			c[t.Type]++
		}
	}
	if h.WinTile.Type.Valid() {
		c[h.WinTile.Type]++
	}
	return c
}

// Counts34 所有牌的计数，杠子计 4 张
func (h Hand) Counts34() Hand34 {
	c := h.Concealed34()
	for _, m := range h.Melds {
		for _, t := range m.Tiles {
			if t.Type.Valid() {
				c[t.Type]++
			}
		}
	}
	return c
}

// IsConcealed 门前清（暗杠不破坏门清）
func (h Hand) IsConcealed() bool {
	for _, m := range h.Melds {
		if m.IsCalled() {
			return false
		}
	}
	return true
}

func (h Hand) String() string {
	s := FormatTiles(h.Concealed) + " + " + h.WinTile.String()
	for _, m := range h.Melds {
		s += " [" + m.String() + "]"
	}
	return s
}
