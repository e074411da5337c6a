package app

import (
	"fmt"
	"strings"

	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
	"github.com/spf13/pflag"
)

// handFlags 一手牌与场况的命令行参数，score 与 repl 共用
type handFlags struct {
	hand    string
	win     string
	melds   string
	seat    string
	round   string
	dora    string
	ura     string
	tsumo   bool
	riichi  bool
	double  bool
	ippatsu bool
	last    bool
	chankan bool
	rinshan bool
	first   bool

	// 结算，winner < 0 时不结算
	winner    int
	dealer    int
	discarder int
	deposits  int
	streak    int
}

func (f *handFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.hand, "hand", "", "concealed tiles before the win, e.g. 234m456p678s23s88p")
	fs.StringVar(&f.win, "win", "", "winning tile, e.g. 4s")
	fs.StringVar(&f.melds, "melds", "", "revealed melds separated by ';', e.g. chi:123m;pon@left:EEE")
	fs.StringVar(&f.seat, "seat", "E", "seat wind: E S W N")
	fs.StringVar(&f.round, "round", "E", "round wind: E S W N")
	fs.StringVar(&f.dora, "dora", "", "dora indicators")
	fs.StringVar(&f.ura, "ura", "", "ura dora indicators")
	fs.BoolVar(&f.tsumo, "tsumo", false, "self-draw win")
	fs.BoolVar(&f.riichi, "riichi", false, "riichi declared")
	fs.BoolVar(&f.double, "double-riichi", false, "riichi declared on the first turn")
	fs.BoolVar(&f.ippatsu, "ippatsu", false, "win within one turn of riichi")
	fs.BoolVar(&f.last, "last", false, "win on the last tile")
	fs.BoolVar(&f.chankan, "chankan", false, "robbing a quad")
	fs.BoolVar(&f.rinshan, "rinshan", false, "win on a replacement tile")
	fs.BoolVar(&f.first, "first-turn", false, "uninterrupted first turn")
	fs.IntVar(&f.winner, "winner", -1, "winner seat index 0-3, settle when set")
	fs.IntVar(&f.dealer, "dealer", 0, "dealer seat index 0-3")
	fs.IntVar(&f.discarder, "discarder", -1, "discarder seat index on ron")
	fs.IntVar(&f.deposits, "deposits", 0, "riichi sticks on the table")
	fs.IntVar(&f.streak, "streak", 0, "streak counter")
}

func (f *handFlags) request() (game.Request, error) {
	var req game.Request
	if f.hand == "" || f.win == "" {
		return req, fmt.Errorf("--hand 与 --win 必填")
	}
	hand, err := mahjong.NewHand(f.hand, f.win, splitMelds(f.melds)...)
	if err != nil {
		return req, err
	}
	sit, err := f.situation()
	if err != nil {
		return req, err
	}
	req.Hand, req.Situation = hand, sit

	if f.winner >= 0 {
		method := mahjong.WinRon
		switch {
		case f.tsumo:
			method = mahjong.WinTsumo
		case f.chankan:
			method = mahjong.WinChankan
		}
		req.Table = &mahjong.TableContext{
			Winner:    f.winner,
			Dealer:    f.dealer,
			Method:    method,
			Discarder: f.discarder,
			Deposits:  f.deposits,
			Streak:    f.streak,
			Melds:     hand.Melds,
			Rinshan:   f.rinshan,
		}
	}
	return req, nil
}

func (f *handFlags) situation() (mahjong.Situation, error) {
	sit := mahjong.Situation{
		Tsumo:        f.tsumo,
		Riichi:       f.riichi,
		DoubleRiichi: f.double,
		Ippatsu:      f.ippatsu,
		LastTile:     f.last,
		Chankan:      f.chankan,
		Rinshan:      f.rinshan,
		FirstTurn:    f.first,
	}
	var err error
	if sit.SeatWind, err = mahjong.ParseWind(f.seat); err != nil {
		return sit, err
	}
	if sit.RoundWind, err = mahjong.ParseWind(f.round); err != nil {
		return sit, err
	}
	if sit.DoraIndicators, err = parseOptionalTiles(f.dora); err != nil {
		return sit, err
	}
	if sit.UraDoraIndicators, err = parseOptionalTiles(f.ura); err != nil {
		return sit, err
	}
	return sit, nil
}

func parseOptionalTiles(s string) ([]mahjong.Tile, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return mahjong.ParseTiles(s)
}

// splitMelds 分号或竖线分隔
func splitMelds(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' })
}
