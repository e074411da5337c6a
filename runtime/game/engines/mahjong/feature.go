package mahjong

// Feature 与拆法无关的手牌统计，每手只算一次
type Feature struct {
	Counts    Hand34 // 全部牌，杠子计 4 张
	Concealed Hand34 // 门内牌 + 和了牌
	WinTile   TileType

	Dragons   [3]int // 白发中张数
	Winds     [4]int // 东南西北张数
	SeatWind  int    // 自风牌张数
	RoundWind int    // 场风牌张数

	Terminals int
	Honors    int
	Orphans   int
	Tiles     int

	MaxDup   int // 同种牌最大张数
	Distinct int // 牌种数
	Suits    int // 数牌花色数 0-3
	HasHonor bool

	Dora    int
	UraDora int
	Aka     int

	Called      int // 鸣牌面子数，暗杠不计
	Quads       int
	IsConcealed bool
}

// ExtractFeature 统计整手牌
func ExtractFeature(hand Hand, sit Situation) Feature {
	f := Feature{
		Counts:      hand.Counts34(),
		Concealed:   hand.Concealed34(),
		WinTile:     hand.WinTile.Type,
		IsConcealed: hand.IsConcealed(),
	}

	var suits [3]bool
	for i, c := range f.Counts {
		if c == 0 {
			continue
		}
		n := int(c)
		tt := TileType(i)
		f.Tiles += n
		f.Distinct++
		if n > f.MaxDup {
			f.MaxDup = n
		}
		switch {
		case tt.IsDragon():
			f.Dragons[tt-White] = n
			f.Honors += n
		case tt.IsWind():
			f.Winds[tt.Wind()] = n
			f.Honors += n
		case tt.IsTerminal():
			f.Terminals += n
		}
		if tt.IsNumbered() {
			suits[tt.Suit()] = true
		}
	}
	f.Orphans = f.Terminals + f.Honors
	f.HasHonor = f.Honors > 0
	for _, ok := range suits {
		if ok {
			f.Suits++
		}
	}
	if sit.SeatWind.Valid() {
		f.SeatWind = f.Winds[sit.SeatWind]
	}
	if sit.RoundWind.Valid() {
		f.RoundWind = f.Winds[sit.RoundWind]
	}

	for _, m := range hand.Melds {
		if m.IsCalled() {
			f.Called++
		}
		if m.IsQuad() {
			f.Quads++
		}
	}

	for _, ind := range sit.DoraIndicators {
		f.Dora += int(f.Counts[ind.Type.Dora()])
	}
	if sit.Declared() {
		for _, ind := range sit.UraDoraIndicators {
			f.UraDora += int(f.Counts[ind.Type.Dora()])
		}
	}
	for _, t := range hand.Tiles() {
		if t.IsRedFive() {
			f.Aka++
		}
	}
	return f
}

// DragonSets 三元牌中成刻（≥3 张）的种数
func (f Feature) DragonSets() int {
	n := 0
	for _, c := range f.Dragons {
		if c >= 3 {
			n++
		}
	}
	return n
}

// DragonPairs 三元牌中恰为对子的种数
func (f Feature) DragonPairs() int {
	n := 0
	for _, c := range f.Dragons {
		if c == 2 {
			n++
		}
	}
	return n
}

// WindSets 风牌中成刻的种数
func (f Feature) WindSets() int {
	n := 0
	for _, c := range f.Winds {
		if c >= 3 {
			n++
		}
	}
	return n
}

// WindPairs 风牌中恰为对子的种数
func (f Feature) WindPairs() int {
	n := 0
	for _, c := range f.Winds {
		if c == 2 {
			n++
		}
	}
	return n
}
