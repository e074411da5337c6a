package mahjong

const (
	baseFu       = 20
	sevenPairsFu = 25
	tsumoFu      = 2
	menzenRonFu  = 10
	openPinfuFu  = 10 // 副露平和形荣和补到 30 符
)

// MeldFu 单个面子的符：刻子 2，幺九 ×2，暗 ×2，杠 ×4
func MeldFu(m Meld, concealed bool) int {
	if m.IsRun() {
		return 0
	}
	fu := 2
	if m.First().IsOrphan() {
		fu *= 2
	}
	if concealed {
		fu *= 2
	}
	if m.IsQuad() {
		fu *= 4
	}
	return fu
}

// HeadFu 雀头的符，连风雀头计 4
func HeadFu(h Head, sit Situation) int {
	fu := 0
	if h.Type.IsDragon() {
		fu += 2
	}
	if h.Type == sit.SeatWind.TileType() {
		fu += 2
	}
	if h.Type == sit.RoundWind.TileType() {
		fu += 2
	}
	return fu
}

// RawFu 未进位的符
func RawFu(d Decomposition, sit Situation, concealedHand bool) int {
	extra := HeadFu(d.Head, sit) + d.Wait.Fu()
	for i, m := range d.Melds {
		concealed := m.IsConcealed()
		if !sit.Tsumo && i == d.WinMeld && d.Wait == WaitShanpon {
			concealed = false
		}
		extra += MeldFu(m, concealed)
	}

	fu := baseFu + extra
	switch {
	case sit.Tsumo:
		if !(concealedHand && extra == 0) {
			fu += tsumoFu
		}
	case concealedHand:
		fu += menzenRonFu
	case fu == baseFu:
		fu += openPinfuFu
	}
	return fu
}

// RoundFu 进位到 10
func RoundFu(fu int) int {
	return (fu + 9) / 10 * 10
}

// CalculateFu 一般形的符
func CalculateFu(d Decomposition, sit Situation, concealedHand bool) int {
	return RoundFu(RawFu(d, sit, concealedHand))
}
