package mahjong

import "testing"

func mustTiles(t *testing.T, s string) []Tile {
	t.Helper()
	tiles, err := ParseTiles(s)
	if err != nil {
		t.Fatalf("ParseTiles(%q): %v", s, err)
	}
	return tiles
}

func mustTile(t *testing.T, s string) Tile {
	t.Helper()
	tile, err := ParseTile(s)
	if err != nil {
		t.Fatalf("ParseTile(%q): %v", s, err)
	}
	return tile
}

func mustHand(t *testing.T, concealed, win string, melds ...string) Hand {
	t.Helper()
	h, err := NewHand(concealed, win, melds...)
	if err != nil {
		t.Fatalf("NewHand(%q, %q, %v): %v", concealed, win, melds, err)
	}
	return h
}

func mustEvaluate(t *testing.T, eg *RiichiMahjong4p, h Hand, sit Situation) HandScore {
	t.Helper()
	score, err := eg.Evaluate(h, sit)
	if err != nil {
		t.Fatalf("Evaluate(%s): %v", h, err)
	}
	return score
}

func ron(seat, round Wind) Situation {
	return Situation{SeatWind: seat, RoundWind: round}
}

func tsumo(seat, round Wind) Situation {
	return Situation{Tsumo: true, SeatWind: seat, RoundWind: round}
}

func yakuIDs(s HandScore) []Yaku {
	out := make([]Yaku, 0, len(s.Yakus))
	for _, r := range s.Yakus {
		out = append(out, r.Yaku)
	}
	return out
}

func sumDeltas(s Settlement) int {
	n := 0
	for _, d := range s.Deltas {
		n += d
	}
	return n
}
