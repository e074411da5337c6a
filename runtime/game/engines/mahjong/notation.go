package mahjong

import (
	"fmt"
	"strings"
)

/*
	记法：
		数牌：数字串 + 花色字母，如 123m 0p 99s，0 表示赤五
		字牌：E S W N Dw Dg Dr，或 1z-7z
		副露：kind[@side]:tiles，如 chi:345s pon@across:555p kan@right:1111m ankan:9999s kakan@left:7777p
*/

// ParseTiles 解析牌的记法
func ParseTiles(s string) ([]Tile, error) {
	out := make([]Tile, 0, 14)
	pending := make([]byte, 0, 14)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			pending = append(pending, byte(r-'0'))
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w: suit %q without numbers in %q", ErrNotation, r, s)
			}
			for _, n := range pending {
				t, err := numberedTile(n, r)
				if err != nil {
					return nil, fmt.Errorf("%w in %q", err, s)
				}
				out = append(out, t)
			}
			pending = pending[:0]
		case r == ' ' || r == ',' || r == '\t':
			if len(pending) > 0 {
				return nil, fmt.Errorf("%w: dangling numbers in %q", ErrNotation, s)
			}
		case r == 'E' || r == 'S' || r == 'W' || r == 'N':
			if len(pending) > 0 {
				return nil, fmt.Errorf("%w: dangling numbers in %q", ErrNotation, s)
			}
			out = append(out, NewTile(East+TileType(strings.IndexRune("ESWN", r))))
		case r == 'D':
			if len(pending) > 0 || i+1 >= len(runes) {
				return nil, fmt.Errorf("%w: bad dragon in %q", ErrNotation, s)
			}
			idx := strings.IndexRune("wgr", runes[i+1])
			if idx < 0 {
				return nil, fmt.Errorf("%w: bad dragon in %q", ErrNotation, s)
			}
			out = append(out, NewTile(White+TileType(idx)))
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrNotation, r, s)
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: dangling numbers in %q", ErrNotation, s)
	}
	return out, nil
}

func numberedTile(n byte, suit rune) (Tile, error) {
	if suit == 'z' {
		if n < 1 || n > 7 {
			return Tile{}, fmt.Errorf("%w: honor %dz", ErrNotation, n)
		}
		return NewTile(East + TileType(n-1)), nil
	}
	s := Suit(strings.IndexRune("mps", suit))
	if n == 0 {
		return NewRedFive(s), nil
	}
	return NewTile(TileType(int(s)*9 + int(n) - 1)), nil
}

// ParseTile 解析单张牌
func ParseTile(s string) (Tile, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return Tile{}, err
	}
	if len(tiles) != 1 {
		return Tile{}, fmt.Errorf("%w: want one tile, got %d in %q", ErrNotation, len(tiles), s)
	}
	return tiles[0], nil
}

// ParseMeld 解析副露记法
func ParseMeld(s string) (Meld, error) {
	head, body, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Meld{}, fmt.Errorf("%w: meld %q needs kind:tiles", ErrNotation, s)
	}
	kind, sideName, hasSide := strings.Cut(head, "@")
	tiles, err := ParseTiles(body)
	if err != nil {
		return Meld{}, err
	}

	side := SideSelf
	if hasSide {
		side, err = parseSide(sideName)
		if err != nil {
			return Meld{}, err
		}
	}

	switch strings.ToLower(kind) {
	case "chi":
		if !hasSide {
			side = SideLeft
		}
		return NewMeld(MeldRun, side, tiles)
	case "pon":
		return NewMeld(MeldTriplet, side, tiles)
	case "kan":
		return NewMeld(MeldQuad, side, tiles)
	case "ankan":
		return NewMeld(MeldQuad, SideSelf, tiles)
	case "kakan":
		m, err := NewMeld(MeldQuad, side, tiles)
		if err != nil {
			return Meld{}, err
		}
		m.Added = true
		if err := m.Validate(); err != nil {
			return Meld{}, err
		}
		return m, nil
	default:
		return Meld{}, fmt.Errorf("%w: unknown meld kind %q", ErrNotation, kind)
	}
}

// ParseMelds 分号或竖线分隔的多个副露
func ParseMelds(s string) ([]Meld, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' })
	melds := make([]Meld, 0, len(parts))
	for _, p := range parts {
		m, err := ParseMeld(p)
		if err != nil {
			return nil, err
		}
		melds = append(melds, m)
	}
	return melds, nil
}

func parseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "self", "":
		return SideSelf, nil
	case "left":
		return SideLeft, nil
	case "across":
		return SideAcross, nil
	case "right":
		return SideRight, nil
	default:
		return SideSelf, fmt.Errorf("%w: unknown side %q", ErrNotation, s)
	}
}

// ParseWind 解析 E/S/W/N
func ParseWind(s string) (Wind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "E", "EAST":
		return WindEast, nil
	case "S", "SOUTH":
		return WindSouth, nil
	case "W", "WEST":
		return WindWest, nil
	case "N", "NORTH":
		return WindNorth, nil
	default:
		return WindEast, fmt.Errorf("%w: unknown wind %q", ErrNotation, s)
	}
}
