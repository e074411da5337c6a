package app

import (
	"fmt"
	"strings"

	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game"
	"github.com/spf13/viper"
)

// HandSpec 批量文件中的一手牌，字段与 score 的参数一一对应
type HandSpec struct {
	ID           string   `mapstructure:"id"`
	Hand         string   `mapstructure:"hand"`
	Win          string   `mapstructure:"win"`
	Melds        []string `mapstructure:"melds"`
	Seat         string   `mapstructure:"seat"`
	Round        string   `mapstructure:"round"`
	Dora         string   `mapstructure:"dora"`
	Ura          string   `mapstructure:"ura"`
	Tsumo        bool     `mapstructure:"tsumo"`
	Riichi       bool     `mapstructure:"riichi"`
	DoubleRiichi bool     `mapstructure:"doubleRiichi"`
	Ippatsu      bool     `mapstructure:"ippatsu"`
	LastTile     bool     `mapstructure:"lastTile"`
	Chankan      bool     `mapstructure:"chankan"`
	Rinshan      bool     `mapstructure:"rinshan"`
	FirstTurn    bool     `mapstructure:"firstTurn"`
	Table        *struct {
		Winner    int `mapstructure:"winner"`
		Dealer    int `mapstructure:"dealer"`
		Discarder int `mapstructure:"discarder"`
		Deposits  int `mapstructure:"deposits"`
		Streak    int `mapstructure:"streak"`
	} `mapstructure:"table"`
}

func (s HandSpec) flags() handFlags {
	f := handFlags{
		hand:    s.Hand,
		win:     s.Win,
		melds:   strings.Join(s.Melds, ";"),
		seat:    s.Seat,
		round:   s.Round,
		dora:    s.Dora,
		ura:     s.Ura,
		tsumo:   s.Tsumo,
		riichi:  s.Riichi,
		double:  s.DoubleRiichi,
		ippatsu: s.Ippatsu,
		last:    s.LastTile,
		chankan: s.Chankan,
		rinshan: s.Rinshan,
		first:   s.FirstTurn,
		winner:  -1,
	}
	if f.seat == "" {
		f.seat = "E"
	}
	if f.round == "" {
		f.round = "E"
	}
	if s.Table != nil {
		f.winner = s.Table.Winner
		f.dealer = s.Table.Dealer
		f.discarder = s.Table.Discarder
		f.deposits = s.Table.Deposits
		f.streak = s.Table.Streak
	}
	return f
}

// loadBatch 读取 hands 列表；解析失败的条目直接报错并指出序号
func loadBatch(file string) ([]game.Request, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取批量文件 %s 失败: %w", file, err)
	}
	var specs []HandSpec
	if err := v.UnmarshalKey("hands", &specs); err != nil {
		return nil, fmt.Errorf("解析批量文件失败: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("批量文件 %s 中没有 hands", file)
	}

	reqs := make([]game.Request, 0, len(specs))
	for i, spec := range specs {
		f := spec.flags()
		req, err := f.request()
		if err != nil {
			return nil, fmt.Errorf("第 %d 手 (%s): %w", i+1, spec.ID, err)
		}
		req.ID = spec.ID
		reqs = append(reqs, req)
	}
	return reqs, nil
}
