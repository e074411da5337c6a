package mahjong

import "testing"

func benchHands(b *testing.B) []Hand {
	b.Helper()
	specs := [][]string{
		{"111222333m456p7s", "7s"},
		{"1112345678999m", "5m"},
		{"22334455m66788p", "6p"},
		{"234m456p678s23s88p", "4s"},
	}
	out := make([]Hand, 0, len(specs))
	for _, s := range specs {
		h, err := NewHand(s[0], s[1])
		if err != nil {
			b.Fatalf("NewHand(%q): %v", s[0], err)
		}
		out = append(out, h)
	}
	return out
}

func BenchmarkDecompose_NoCache(b *testing.B) {
	hands := benchHands(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := hands[i%len(hands)]
		_, _ = Decompose(h.Concealed, h.WinTile, h.Melds)
	}
}

func BenchmarkDecompose_Cached(b *testing.B) {
	hands := benchHands(b)
	s := NewSearcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := hands[i%len(hands)]
		_, _ = s.Decompose(h.Concealed, h.WinTile, h.Melds)
	}
}

func BenchmarkWaits_Cached(b *testing.B) {
	hands := benchHands(b)
	s := NewSearcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := hands[i%len(hands)]
		_, _ = s.Waits(h.Concealed, h.Melds)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	hands := benchHands(b)
	eg := NewRiichiMahjong4p(DefaultRules())
	sit := Situation{Tsumo: true, SeatWind: WindSouth, RoundWind: WindEast}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eg.Evaluate(hands[i%len(hands)], sit)
	}
}
