package engines

import (
	"errors"
	"testing"

	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
)

func TestNewScorer(t *testing.T) {
	s, err := NewScorer(RIICHI_MAHJONG_4P_ENGINE, Options{Rules: mahjong.DefaultRules()})
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	h, err := mahjong.NewHand("234m456p678s23s88p", "4s")
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	score, err := s.Evaluate(h, mahjong.Situation{Tsumo: true, SeatWind: mahjong.WindSouth})
	if err != nil || score.Value != 2600 {
		t.Fatalf("expected 2600, got %v %v", score, err)
	}
}

func TestNewScorer_Errors(t *testing.T) {
	rules := mahjong.DefaultRules()
	rules.DrawPot = 1001
	if _, err := NewScorer(RIICHI_MAHJONG_4P_ENGINE, Options{Rules: rules}); !errors.Is(err, mahjong.ErrInvalidRules) {
		t.Fatalf("expected invalid rules, got %v", err)
	}
	if _, err := NewScorer(engineType(9), Options{Rules: mahjong.DefaultRules()}); err == nil {
		t.Fatalf("expected unknown engine error")
	}
	if _, err := ParseEngineType("sanma"); err == nil {
		t.Fatalf("expected unknown engine name error")
	}
}

func TestRebind_SharesSearcher(t *testing.T) {
	s, err := NewScorer(RIICHI_MAHJONG_4P_ENGINE, Options{Rules: mahjong.DefaultRules()})
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	rules := mahjong.DefaultRules()
	rules.OpenTanyao = false
	next, err := Rebind(s, rules)
	if err != nil {
		t.Fatalf("Rebind: %v", err)
	}
	prev, cur := s.(*mahjong.RiichiMahjong4p), next.(*mahjong.RiichiMahjong4p)
	if prev.Searcher() != cur.Searcher() {
		t.Fatalf("rebound engine must keep the searcher")
	}
	if prev.Rules.OpenTanyao != true || cur.Rules.OpenTanyao != false {
		t.Fatalf("rules not rebound: %+v -> %+v", prev.Rules, cur.Rules)
	}

	rules.DrawPot = 1001
	if _, err := Rebind(s, rules); !errors.Is(err, mahjong.ErrInvalidRules) {
		t.Fatalf("expected invalid rules, got %v", err)
	}
}
