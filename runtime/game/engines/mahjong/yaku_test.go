package mahjong

import (
	"reflect"
	"testing"
)

func TestEvaluate_Yaku(t *testing.T) {
	withFlags := func(sit Situation, apply func(s *Situation)) Situation {
		apply(&sit)
		return sit
	}

	cases := []struct {
		name      string
		concealed string
		win       string
		melds     []string
		sit       Situation
		want      []Yaku
		han, fu   int
		value     int
		steps     int
	}{
		// 门清 / 副露 成对的役
		{"ittsu", "123456789m234p5s", "5s", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuIttsu}, 2, 40, 2600, 0},
		{"ittsu open", "456789m234p5s", "5s", []string{"chi:123m"}, ron(WindSouth, WindEast),
			[]Yaku{YakuIttsuOpen}, 1, 30, 1000, 0},
		{"junchan", "123789m11p789s99s", "9s", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuJunchan}, 3, 40, 5200, 0},
		{"junchan open", "789m11p789s99s", "9s", []string{"chi:123m"}, ron(WindSouth, WindEast),
			[]Yaku{YakuJunchanOpen}, 2, 30, 2000, 0},
		{"chanta", "123m999p789s EEE N", "N", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuRoundWind, YakuChanta}, 3, 50, 6400, 0},
		{"chanta open", "999p789s EEE N", "N", []string{"chi:123m"}, ron(WindSouth, WindEast),
			[]Yaku{YakuRoundWind, YakuChantaOpen}, 2, 40, 2600, 0},
		{"sanshoku", "123m123p123s456m9p", "9p", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuSanshokuDoujun}, 2, 40, 2600, 0},
		{"sanshoku open", "123m123p456m9p", "9p", []string{"chi:123s"}, ron(WindSouth, WindEast),
			[]Yaku{YakuSanshokuDoujunOpen}, 1, 30, 1000, 0},
		{"honitsu", "123m345m678m EEE N", "N", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuRoundWind, YakuHonitsu}, 4, 40, 8000, 0},
		{"honitsu open", "123m345m678m N", "N", []string{"pon@left:EEE"}, ron(WindSouth, WindEast),
			[]Yaku{YakuRoundWind, YakuHonitsuOpen}, 3, 30, 3900, 0},
		{"chinitsu", "111p345p777p999p5p", "5p", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuChinitsu, YakuSanankou}, 8, 60, 16000, 0},
		{"chinitsu open", "345p678p999p2p", "2p", []string{"chi:123p"}, ron(WindSouth, WindEast),
			[]Yaku{YakuChinitsuOpen}, 5, 30, 8000, 0},

		// 拆法与统计役
		{"triple triplets", "222m222p22s345s66s", "2s", nil, tsumo(WindSouth, WindEast),
			[]Yaku{YakuMenzenTsumo, YakuTanyao, YakuSanankou, YakuSanshokuDoukou}, 6, 40, 12000, 0},
		{"toitoi", "222m555p33s99s", "9s", []string{"pon@left:777s"}, ron(WindSouth, WindEast),
			[]Yaku{YakuToitoi}, 2, 40, 2600, 0},
		{"four concealed triplets on ron", "111m333p555s77s99m", "7s", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuToitoi, YakuSanankou}, 4, 50, 8000, 0},
		{"honroutou seven pairs", "1m1m9m9m1p1p9p9p1s1s E E S", "S", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuHonroutou, YakuChiitoitsu}, 4, 25, 6400, 0},
		{"little three dragons", "DwDwDwDgDgDgDr123m456p", "Dr", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuHaku, YakuHatsu, YakuShousangen}, 4, 50, 8000, 0},
		{"red dragon", "123m456p789s DrDrDr N", "N", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuChun}, 1, 40, 1300, 0},
		{"double east", "123m456p789s EEE N", "N", nil, ron(WindEast, WindEast),
			[]Yaku{YakuSeatWind, YakuRoundWind}, 2, 40, 3900, 0},
		{"three quads", "678m5p", "5p", []string{"kan@left:2222m", "kan@across:3333p", "ankan:4444s"}, ron(WindSouth, WindEast),
			[]Yaku{YakuTanyao, YakuSankantsu}, 3, 60, 7700, 0},

		// 场况役与宝牌
		{"riichi ippatsu dora", "234m406p678s23s88p", "4s", nil,
			withFlags(ron(WindSouth, WindEast), func(s *Situation) {
				s.Riichi, s.Ippatsu = true, true
				s.DoraIndicators = mustTiles(t, "1m")
				s.UraDoraIndicators = mustTiles(t, "7p")
			}),
			[]Yaku{YakuRiichi, YakuIppatsu, YakuTanyao, YakuPinfu, YakuDora, YakuUraDora, YakuAkaDora}, 8, 30, 16000, 0},
		{"double riichi last tile", "234m456p678s23s88p", "4s", nil,
			withFlags(tsumo(WindSouth, WindEast), func(s *Situation) { s.DoubleRiichi, s.LastTile = true, true }),
			[]Yaku{YakuDoubleRiichi, YakuMenzenTsumo, YakuHaitei, YakuTanyao, YakuPinfu}, 6, 20, 12000, 0},
		{"last discard", "234m456p678s23s88p", "4s", nil,
			withFlags(ron(WindSouth, WindEast), func(s *Situation) { s.LastTile = true }),
			[]Yaku{YakuHoutei, YakuTanyao, YakuPinfu}, 3, 30, 3900, 0},
		{"robbing a quad", "234m456p678s23s88p", "4s", nil,
			withFlags(ron(WindSouth, WindEast), func(s *Situation) { s.Chankan = true }),
			[]Yaku{YakuChankan, YakuTanyao, YakuPinfu}, 3, 30, 3900, 0},
		{"after a quad", "234m456p23s88p", "4s", []string{"ankan:6666s"},
			withFlags(tsumo(WindSouth, WindEast), func(s *Situation) { s.Rinshan = true }),
			[]Yaku{YakuMenzenTsumo, YakuRinshan, YakuTanyao}, 3, 40, 5200, 0},

		// 役满
		{"earthly win", "1m2m3m3s4s5s5s6s7s1p2p DwDw", "3p", nil,
			withFlags(tsumo(WindSouth, WindEast), func(s *Situation) { s.FirstTurn = true }),
			[]Yaku{YakuChiihou}, 0, 0, 32000, 1},
		{"all terminals single wait", "111m999m111p999p1s", "1s", nil, tsumo(WindSouth, WindEast),
			[]Yaku{YakuChinroutou, YakuSuuankouTanki}, 0, 0, 96000, 3},
		{"four concealed triplets", "111m333p555s77s99m", "7s", nil, tsumo(WindSouth, WindEast),
			[]Yaku{YakuSuuankou}, 0, 0, 32000, 1},
		{"little four winds", "EEE SSS WWW N 123m", "N", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuShousuushii}, 0, 0, 32000, 1},
		{"big four winds", "EEE SSS WWW 1m", "1m", []string{"pon@left:NNN"}, ron(WindSouth, WindEast),
			[]Yaku{YakuDaisuushii}, 0, 0, 64000, 2},
		{"all honors", "EEE DwDwDw DgDgDg Dr", "Dr", []string{"pon@across:SSS"}, ron(WindSouth, WindEast),
			[]Yaku{YakuTsuuiisou}, 0, 0, 32000, 1},
		{"all green", "234s234s666s88s DgDg", "Dg", nil, ron(WindSouth, WindEast),
			[]Yaku{YakuRyuuiisou}, 0, 0, 32000, 1},
	}

	eg := NewRiichiMahjong4p(DefaultRules())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := mustHand(t, c.concealed, c.win, c.melds...)
			score := mustEvaluate(t, eg, h, c.sit)
			if !reflect.DeepEqual(yakuIDs(score), c.want) {
				t.Fatalf("yaku: want %v, got %v", c.want, yakuIDs(score))
			}
			if score.Han != c.han || score.Fu != c.fu || score.Value != c.value || score.LimitSteps != c.steps {
				t.Fatalf("want %dhan %dfu %d x%d, got %dhan %dfu %d x%d",
					c.han, c.fu, c.value, c.steps, score.Han, score.Fu, score.Value, score.LimitSteps)
			}
		})
	}
}

// 门清与副露版本、单骑与非单骑版本互斥
func TestEvaluate_SiblingsAreExclusive(t *testing.T) {
	siblings := [][2]Yaku{
		{YakuRiichi, YakuDoubleRiichi},
		{YakuHonitsu, YakuHonitsuOpen},
		{YakuChinitsu, YakuChinitsuOpen},
		{YakuChanta, YakuChantaOpen},
		{YakuJunchan, YakuJunchanOpen},
		{YakuIttsu, YakuIttsuOpen},
		{YakuSanshokuDoujun, YakuSanshokuDoujunOpen},
		{YakuIipeikou, YakuRyanpeikou},
		{YakuKokushi, YakuKokushi13},
		{YakuChuuren, YakuJunseiChuuren},
		{YakuSuuankou, YakuSuuankouTanki},
		{YakuShousuushii, YakuDaisuushii},
		{YakuChanta, YakuJunchan},
		{YakuHaitei, YakuHoutei},
	}
	hands := []struct {
		concealed, win string
		melds          []string
		sit            Situation
	}{
		{"123456789m234p5s", "5s", nil, Situation{SeatWind: WindSouth, RoundWind: WindEast, DoubleRiichi: true}},
		{"456789m234p5s", "5s", []string{"chi:123m"}, ron(WindSouth, WindEast)},
		{"123789m11p789s99s", "9s", nil, Situation{SeatWind: WindSouth, RoundWind: WindEast, Tsumo: true, LastTile: true}},
		{"789m11p789s99s", "9s", []string{"chi:123m"}, ron(WindSouth, WindEast)},
		{"111p345p777p999p5p", "5p", nil, ron(WindSouth, WindEast)},
		{"112233m445566p8s", "8s", nil, ron(WindSouth, WindEast)},
		{"1112345678999m", "5m", nil, ron(WindSouth, WindEast)},
		{"1m9m1p9p1s9s E S W N Dw Dg Dr", "Dg", nil, ron(WindSouth, WindEast)},
		{"111m999m111p999p1s", "1s", nil, tsumo(WindSouth, WindEast)},
		{"EEE SSS WWW 1m", "1m", []string{"pon@left:NNN"}, ron(WindSouth, WindEast)},
	}

	eg := NewRiichiMahjong4p(DefaultRules())
	for _, hc := range hands {
		score := mustEvaluate(t, eg, mustHand(t, hc.concealed, hc.win, hc.melds...), hc.sit)
		if score.IsZero() {
			t.Fatalf("%s + %s: expected a scoring hand", hc.concealed, hc.win)
		}
		for _, pair := range siblings {
			if score.HasYaku(pair[0]) && score.HasYaku(pair[1]) {
				t.Fatalf("%s + %s: %s and %s both scored", hc.concealed, hc.win, pair[0], pair[1])
			}
		}
	}
}
