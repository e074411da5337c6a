package mahjong

// limitYaku 役满只看整手统计与场况，任一成立即跳过一般役
var limitYaku = []YakuChecker{
	yakuCheckerFunc{id: YakuTenhou, check: limit(func(ctx *YakuContext) bool {
		return firstTurnSelfDraw(ctx) && ctx.Situation.Dealer()
	})},
	yakuCheckerFunc{id: YakuChiihou, check: limit(func(ctx *YakuContext) bool {
		return firstTurnSelfDraw(ctx) && !ctx.Situation.Dealer()
	})},
	yakuCheckerFunc{id: YakuKokushi, check: limit(func(ctx *YakuContext) bool {
		return IsThirteenOrphans(ctx.Feature.Concealed) && !thirteenWait(ctx)
	})},
	yakuCheckerFunc{id: YakuKokushi13, check: doubleLimit(func(ctx *YakuContext) bool {
		return IsThirteenOrphans(ctx.Feature.Concealed) && thirteenWait(ctx)
	})},
	yakuCheckerFunc{id: YakuChuuren, check: limit(func(ctx *YakuContext) bool {
		return isNineGates(ctx) && !nineWait(ctx)
	})},
	yakuCheckerFunc{id: YakuJunseiChuuren, check: doubleLimit(func(ctx *YakuContext) bool {
		return isNineGates(ctx) && nineWait(ctx)
	})},
	yakuCheckerFunc{id: YakuSuukantsu, check: limit(func(ctx *YakuContext) bool {
		return ctx.Feature.Quads == 4
	})},
	yakuCheckerFunc{id: YakuDaisangen, check: limit(func(ctx *YakuContext) bool {
		return ctx.Feature.DragonSets() == 3
	})},
	yakuCheckerFunc{id: YakuShousuushii, check: limit(func(ctx *YakuContext) bool {
		return ctx.Feature.WindSets() == 3 && ctx.Feature.WindPairs() == 1
	})},
	yakuCheckerFunc{id: YakuDaisuushii, check: doubleLimit(func(ctx *YakuContext) bool {
		return ctx.Feature.WindSets() == 4
	})},
	yakuCheckerFunc{id: YakuTsuuiisou, check: limit(func(ctx *YakuContext) bool {
		return ctx.Feature.Honors == ctx.Feature.Tiles
	})},
	yakuCheckerFunc{id: YakuChinroutou, check: limit(func(ctx *YakuContext) bool {
		return ctx.Feature.Terminals == ctx.Feature.Tiles
	})},
	yakuCheckerFunc{id: YakuRyuuiisou, check: limit(func(ctx *YakuContext) bool {
		for i, c := range ctx.Feature.Counts {
			if c == 0 {
				continue
			}
			if _, ok := greenTiles[TileType(i)]; !ok {
				return false
			}
		}
		return true
	})},
	yakuCheckerFunc{id: YakuSuuankou, check: limit(func(ctx *YakuContext) bool {
		return isFourConcealedTriplets(ctx) && !pairWait(ctx)
	})},
	yakuCheckerFunc{id: YakuSuuankouTanki, check: doubleLimit(func(ctx *YakuContext) bool {
		return isFourConcealedTriplets(ctx) && pairWait(ctx)
	})},
}

func limit(cond func(ctx *YakuContext) bool) func(ctx *YakuContext) (int, int) {
	return func(ctx *YakuContext) (int, int) {
		if cond(ctx) {
			return 0, 1
		}
		return 0, 0
	}
}

// doubleLimit 双倍役满，关闭 DoubleLimit 时按单倍
func doubleLimit(cond func(ctx *YakuContext) bool) func(ctx *YakuContext) (int, int) {
	return func(ctx *YakuContext) (int, int) {
		if !cond(ctx) {
			return 0, 0
		}
		if ctx.Rules.DoubleLimit {
			return 0, 2
		}
		return 0, 1
	}
}

func firstTurnSelfDraw(ctx *YakuContext) bool {
	return ctx.Situation.Tsumo && ctx.Situation.FirstTurn && len(ctx.Hand.Melds) == 0
}

// thirteenWait 和了前已是十三种各一张
func thirteenWait(ctx *YakuContext) bool {
	return ctx.Feature.Concealed[ctx.Feature.WinTile] == 2
}

// isNineGates 门清同一花色 1112345678999 + 任一张
func isNineGates(ctx *YakuContext) bool {
	f := ctx.Feature
	if len(ctx.Hand.Melds) > 0 || f.Suits != 1 || f.HasHonor {
		return false
	}
	base := TileType(int(f.WinTile.Suit()) * 9)
	for n := 0; n < 9; n++ {
		need := uint8(1)
		if n == 0 || n == 8 {
			need = 3
		}
		if f.Concealed[base+TileType(n)] < need {
			return false
		}
	}
	return true
}

// nineWait 和了前恰为 1112345678999
func nineWait(ctx *YakuContext) bool {
	f := ctx.Feature
	before := f.Concealed
	before[f.WinTile]--
	base := TileType(int(f.WinTile.Suit()) * 9)
	for n := 0; n < 9; n++ {
		want := uint8(1)
		if n == 0 || n == 8 {
			want = 3
		}
		if before[base+TileType(n)] != want {
			return false
		}
	}
	return true
}

// isFourConcealedTriplets 副露只能是暗杠，门内牌全为 3 张组加一个对子，且荣和时不能补成刻子
func isFourConcealedTriplets(ctx *YakuContext) bool {
	for _, m := range ctx.Hand.Melds {
		if !m.IsQuad() || m.IsCalled() {
			return false
		}
	}
	pairs, sets := 0, 0
	for _, c := range ctx.Feature.Concealed {
		switch c {
		case 0:
		case 2:
			pairs++
		case 3:
			sets++
		default:
			return false
		}
	}
	if pairs != 1 || sets+len(ctx.Hand.Melds) != 4 {
		return false
	}
	return ctx.Situation.Tsumo || pairWait(ctx)
}

// pairWait 和了牌落在雀头上
func pairWait(ctx *YakuContext) bool {
	return ctx.Feature.Concealed[ctx.Feature.WinTile] == 2
}
