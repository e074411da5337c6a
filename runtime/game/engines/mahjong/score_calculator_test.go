package mahjong

import (
	"errors"
	"reflect"
	"testing"
)

func TestEvaluate_HeavenlyWin(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "1m2m3m3s4s5s5s6s7s1p2p DwDw", "3p")
	sit := tsumo(WindEast, WindEast)
	sit.FirstTurn = true

	score := mustEvaluate(t, eg, h, sit)
	if !score.HasYaku(YakuTenhou) || !score.IsLimit() {
		t.Fatalf("expected heavenly win, got %v %v", score, yakuIDs(score))
	}
	for _, r := range score.Yakus {
		if r.Yaku.Kind() != KindLimit {
			t.Fatalf("graded rule %s evaluated alongside a limit hand", r.Yaku)
		}
	}
	if score.Value != 48000 || score.Tier != TierLimit {
		t.Fatalf("dealer single limit expected 48000, got %d (%s)", score.Value, score.Tier)
	}
}

func TestEvaluate_ThirteenOrphans(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "1m9m1p9p1s9s E S W N Dw DgDg", "Dr")
	score := mustEvaluate(t, eg, h, ron(WindSouth, WindEast))
	if !score.HasYaku(YakuKokushi) || score.HasYaku(YakuKokushi13) {
		t.Fatalf("expected thirteen orphans, got %v", yakuIDs(score))
	}
	if score.Value != 32000 || score.Shape != ShapeIrregular {
		t.Fatalf("expected 32000 irregular, got %d shape %d", score.Value, score.Shape)
	}

	wide := mustHand(t, "1m9m1p9p1s9s E S W N Dw Dg Dr", "Dg")
	score = mustEvaluate(t, eg, wide, ron(WindSouth, WindEast))
	if !score.HasYaku(YakuKokushi13) || score.LimitSteps != 2 || score.Value != 64000 {
		t.Fatalf("expected double limit 13-wait, got %v steps=%d value=%d", yakuIDs(score), score.LimitSteps, score.Value)
	}

	single := DefaultRules()
	single.DoubleLimit = false
	score = mustEvaluate(t, NewRiichiMahjong4p(single), wide, ron(WindSouth, WindEast))
	if score.LimitSteps != 1 || score.Value != 32000 {
		t.Fatalf("double limit disabled expected single, got steps=%d", score.LimitSteps)
	}
}

func TestEvaluate_NineGates(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "1m1m1m2m3m4m5m5m7m8m9m9m9m", "6m")
	score := mustEvaluate(t, eg, h, ron(WindSouth, WindEast))
	if !score.HasYaku(YakuChuuren) || score.HasYaku(YakuChinitsu) {
		t.Fatalf("expected nine gates only, got %v", yakuIDs(score))
	}

	pure := mustHand(t, "1112345678999m", "5m")
	score = mustEvaluate(t, eg, pure, ron(WindSouth, WindEast))
	if !score.HasYaku(YakuJunseiChuuren) || score.HasYaku(YakuChuuren) {
		t.Fatalf("expected true nine gates replacing its base, got %v", yakuIDs(score))
	}
}

func TestEvaluate_PinfuTsumo(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "234m456p678s23s88p", "4s")
	score := mustEvaluate(t, eg, h, tsumo(WindSouth, WindEast))
	want := []Yaku{YakuMenzenTsumo, YakuTanyao, YakuPinfu}
	if !reflect.DeepEqual(yakuIDs(score), want) {
		t.Fatalf("expected %v, got %v", want, yakuIDs(score))
	}
	if score.Fu != 20 || score.Han != 3 || score.Value != 2600 {
		t.Fatalf("expected 3han 20fu 2600, got %s", score)
	}
}

func TestEvaluate_PinfuRonIsThirtyFu(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "234m456p678s23s88p", "4s")
	score := mustEvaluate(t, eg, h, ron(WindSouth, WindEast))
	if score.Fu != 30 || !score.HasYaku(YakuPinfu) {
		t.Fatalf("concealed pinfu ron expected 30 fu, got %s", score)
	}
}

func TestEvaluate_NoYakuIsZero(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "456p789s234m5p", "5p", "chi:123m")
	score, err := eg.Evaluate(h, ron(WindSouth, WindEast))
	if err != nil {
		t.Fatalf("no-yaku hand must not be an error: %v", err)
	}
	if !score.IsZero() || len(score.Yakus) != 0 {
		t.Fatalf("expected zero score, got %s %v", score, yakuIDs(score))
	}
}

func TestEvaluate_DoraNeedsYaku(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "456p789s234m5p", "5p", "chi:123m")
	sit := ron(WindSouth, WindEast)
	sit.DoraIndicators = mustTiles(t, "4p")
	if score := mustEvaluate(t, eg, h, sit); !score.IsZero() {
		t.Fatalf("dora alone must not score, got %v", yakuIDs(score))
	}
}

func TestEvaluate_OpenTanyaoRule(t *testing.T) {
	h := mustHand(t, "456p678s234m5p", "5p", "chi:345m")
	open := mustEvaluate(t, NewRiichiMahjong4p(DefaultRules()), h, ron(WindSouth, WindEast))
	if !open.HasYaku(YakuTanyao) || open.Han != 1 {
		t.Fatalf("open tanyao expected, got %v", yakuIDs(open))
	}
	rules := DefaultRules()
	rules.OpenTanyao = false
	closed := mustEvaluate(t, NewRiichiMahjong4p(rules), h, ron(WindSouth, WindEast))
	if !closed.IsZero() {
		t.Fatalf("open tanyao disabled expected zero, got %v", yakuIDs(closed))
	}
}

func TestEvaluate_HighestValueWins(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "112233m445566p8s", "8s")
	score := mustEvaluate(t, eg, h, ron(WindSouth, WindEast))
	if !score.HasYaku(YakuRyanpeikou) || score.HasYaku(YakuChiitoitsu) {
		t.Fatalf("expected twice pure double sequence over seven pairs, got %v", yakuIDs(score))
	}
	if score.Fu != 40 || score.Value != 5200 {
		t.Fatalf("expected 3han 40fu 5200, got %s", score)
	}
}

func TestEvaluate_SevenPairs(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "1122m3344p5566s E", "E")
	score := mustEvaluate(t, eg, h, ron(WindSouth, WindEast))
	if !score.HasYaku(YakuChiitoitsu) || score.Fu != 25 || score.Value != 1600 {
		t.Fatalf("expected seven pairs 2han 25fu 1600, got %s %v", score, yakuIDs(score))
	}
	if score.Shape != ShapeSevenPairs || score.Decomposition != nil {
		t.Fatalf("seven pairs carries no decomposition")
	}
}

func TestEvaluate_ResliceChoosesBest(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "111222333m456p7s", "7s")
	score := mustEvaluate(t, eg, h, tsumo(WindSouth, WindEast))
	// 三暗刻 + 门前清自摸 优于 一杯口 + 门前清自摸
	if !score.HasYaku(YakuSanankou) || score.HasYaku(YakuIipeikou) {
		t.Fatalf("expected three concealed triplets, got %v", yakuIDs(score))
	}
}

func TestEvaluate_ShanponRonIsOpenTriplet(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	// 555p 荣和补成，不算暗刻
	h := mustHand(t, "111m999s 55p 234s DrDr", "5p")
	score := mustEvaluate(t, eg, h, ron(WindSouth, WindEast))
	if score.HasYaku(YakuSanankou) {
		t.Fatalf("ron on a shanpon must not count the triplet as concealed: %v", yakuIDs(score))
	}
	tsumoScore := mustEvaluate(t, eg, h, tsumo(WindSouth, WindEast))
	if !tsumoScore.HasYaku(YakuSanankou) {
		t.Fatalf("self-draw completes a concealed triplet: %v", yakuIDs(tsumoScore))
	}
}

func TestEvaluate_FourQuadsAndLimitStacking(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "5p", "5p", "ankan:1111m", "kan@across:9999p", "kakan@left:3333s", "kan@right:7777s")
	sit := tsumo(WindSouth, WindEast)
	sit.Rinshan = true
	score := mustEvaluate(t, eg, h, sit)
	if !score.HasYaku(YakuSuukantsu) || score.Value != 32000 {
		t.Fatalf("expected four quads 32000, got %v %d", yakuIDs(score), score.Value)
	}

	// 大三元 + 字一色 叠加
	stacked := mustHand(t, "EEE N", "N", "pon@left:DwDwDw", "pon@across:DgDgDg", "pon@right:DrDrDr")
	score = mustEvaluate(t, eg, stacked, ron(WindSouth, WindEast))
	if score.LimitSteps != 2 || len(score.SubScores) != 2 || score.Value != 64000 {
		t.Fatalf("expected two stacked limits, got %v steps=%d", yakuIDs(score), score.LimitSteps)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "111222333m456p7s", "7s")
	sit := tsumo(WindSouth, WindEast)
	sit.DoraIndicators = mustTiles(t, "6s")
	a := mustEvaluate(t, eg, h, sit)
	b := mustEvaluate(t, eg, h, sit)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated evaluation differs:\n%v\n%v", a, b)
	}
}

func TestEvaluate_ContractViolations(t *testing.T) {
	eg := NewRiichiMahjong4p(DefaultRules())
	h := mustHand(t, "234m456p678s23s88p", "4s")

	conflicts := []Situation{
		{Tsumo: true, Chankan: true, SeatWind: WindSouth},
		{Rinshan: true, SeatWind: WindSouth},
		{Ippatsu: true, SeatWind: WindSouth},
		{UraDoraIndicators: mustTiles(t, "1m"), SeatWind: WindSouth},
		{SeatWind: Wind(7)},
		{Tsumo: true, Riichi: true, FirstTurn: true},
	}
	for i, sit := range conflicts {
		if _, err := eg.Evaluate(h, sit); !errors.Is(err, ErrConflictingSituation) {
			t.Fatalf("case %d expected conflicting situation, got %v", i, err)
		}
	}

	open := mustHand(t, "456p678s234m5p", "5p", "chi:345m")
	sit := ron(WindSouth, WindEast)
	sit.Riichi = true
	if _, err := eg.Evaluate(open, sit); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("riichi with called melds expected invalid argument, got %v", err)
	}

	bad := Hand{Concealed: mustTiles(t, "1111m"), WinTile: mustTile(t, "1m")}
	if _, err := eg.Evaluate(bad, ron(WindSouth, WindEast)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("malformed hand expected invalid argument, got %v", err)
	}
}

func TestRawFu_Rounding(t *testing.T) {
	hands := []struct {
		hand  Hand
		tsumo bool
	}{
		{mustHand(t, "111m999s 55p 234s DrDr", "5p"), false},
		{mustHand(t, "111m999s 55p 234s DrDr", "5p"), true},
		{mustHand(t, "23345m678p111s99s", "4m"), false},
		{mustHand(t, "234m55p78s", "6s", "chi:123s", "pon@right:EEE"), true},
		{mustHand(t, "5p", "5p", "ankan:1111m", "kan@across:9999p", "kakan@left:3333s", "kan@right:7777s"), true},
	}
	for _, c := range hands {
		sit := ron(WindSouth, WindEast)
		sit.Tsumo = c.tsumo
		for _, d := range mustDecompose(t, c.hand) {
			raw := RawFu(d, sit, c.hand.IsConcealed())
			fu := CalculateFu(d, sit, c.hand.IsConcealed())
			if fu%10 != 0 || fu < raw || fu >= raw+10 {
				t.Fatalf("fu %d is not raw %d rounded up", fu, raw)
			}
		}
	}
}

func TestMeldFu(t *testing.T) {
	cases := []struct {
		meld      string
		concealed bool
		want      int
	}{
		{"chi:234m", false, 0},
		{"pon@left:555p", false, 2},
		{"pon@left:999p", false, 4},
		{"pon@left:555p", true, 4},
		{"pon@left:EEE", true, 8},
		{"kan@left:5555p", false, 8},
		{"kan@left:1111p", false, 16},
		{"ankan:5555p", true, 16},
		{"ankan:DwDwDwDw", true, 32},
	}
	for _, c := range cases {
		m, err := ParseMeld(c.meld)
		if err != nil {
			t.Fatalf("ParseMeld(%q): %v", c.meld, err)
		}
		if got := MeldFu(m, c.concealed); got != c.want {
			t.Fatalf("MeldFu(%s, %v) expected %d, got %d", c.meld, c.concealed, c.want, got)
		}
	}
}

func TestPointValue_Tiers(t *testing.T) {
	rules := DefaultRules()
	cases := []struct {
		han, fu int
		dealer  bool
		tier    PointTier
		value   int
	}{
		{1, 30, false, TierGraded, 1000},
		{1, 30, true, TierGraded, 1500},
		{3, 60, false, TierGraded, 7700},
		{3, 70, false, TierMangan, 8000},
		{4, 30, false, TierGraded, 7700},
		{4, 40, false, TierMangan, 8000},
		{5, 20, true, TierMangan, 12000},
		{6, 30, false, TierHaneman, 12000},
		{8, 30, false, TierBaiman, 16000},
		{11, 30, false, TierSanbaiman, 24000},
		{13, 30, false, TierCountedLimit, 32000},
	}
	for _, c := range cases {
		tier, value := PointValue(c.han, c.fu, c.dealer, rules)
		if tier != c.tier || value != c.value {
			t.Fatalf("PointValue(%d, %d, %v) expected %s %d, got %s %d", c.han, c.fu, c.dealer, c.tier, c.value, tier, value)
		}
		if value%100 != 0 {
			t.Fatalf("value %d is not a multiple of 100", value)
		}
	}
	rules.CountedLimit = false
	if tier, value := PointValue(13, 30, false, rules); tier != TierSanbaiman || value != 24000 {
		t.Fatalf("counted limit disabled expected sanbaiman, got %s %d", tier, value)
	}
}

func TestYaku_StableNames(t *testing.T) {
	seen := map[string]bool{}
	for _, y := range AllYaku() {
		s := y.String()
		if s == "" || seen[s] || y.Name() == "" {
			t.Fatalf("yaku %d has empty or duplicate name %q", int(y), s)
		}
		seen[s] = true
		back, ok := ParseYaku(s)
		if !ok || back != y {
			t.Fatalf("ParseYaku(%q) = %v, %v", s, back, ok)
		}
	}
	if YakuTenhou.Kind() != KindLimit || YakuDora.Kind() != KindSpecial || YakuPinfu.Kind() != KindGraded {
		t.Fatalf("unexpected yaku kinds")
	}
}
