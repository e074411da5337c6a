package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
	"github.com/spf13/cobra"
)

func newScoreCommand() *cobra.Command {
	var f handFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "evaluate one winning hand and optionally settle it",
		Example: `  scorer score --hand 234m456p678s23s88p --win 4s --tsumo --seat S
  scorer score --hand 5p --win 5p --melds "ankan:1111m;kan@across:9999p;kakan@left:3333s;kan@right:7777s" --tsumo --rinshan --seat S --winner 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}
			e, err := newEvaluator()
			if err != nil {
				return err
			}
			defer e.Close()

			res := e.Evaluate(cmd.Context(), req)
			printResult(cmd.OutOrStdout(), res)
			return res.Err
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newWaitsCommand() *cobra.Command {
	var hand, melds string
	cmd := &cobra.Command{
		Use:     "waits",
		Short:   "list the tile faces that complete a 13-tile hand",
		Example: `  scorer waits --hand 1112345678999m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles, err := mahjong.ParseTiles(hand)
			if err != nil {
				return err
			}
			parsed, err := mahjong.ParseMelds(melds)
			if err != nil {
				return err
			}
			e, err := newEvaluator()
			if err != nil {
				return err
			}
			defer e.Close()

			waits, err := e.Waits(tiles, parsed)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(waits))
			for _, tt := range waits {
				names = append(names, tt.String())
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "not ready")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			return nil
		},
	}
	cmd.Flags().StringVar(&hand, "hand", "", "concealed tiles")
	cmd.Flags().StringVar(&melds, "melds", "", "revealed melds separated by ';'")
	_ = cmd.MarkFlagRequired("hand")
	return cmd
}

func newDrawCommand() *cobra.Command {
	var ready string
	cmd := &cobra.Command{
		Use:     "draw",
		Short:   "settle an exhaustive draw",
		Example: `  scorer draw --ready 0,2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := parseSeats(ready)
			if err != nil {
				return err
			}
			e, err := newEvaluator()
			if err != nil {
				return err
			}
			defer e.Close()

			st, err := e.SettleExhaustiveDraw(flags)
			if err != nil {
				return err
			}
			printSettlement(cmd.OutOrStdout(), st)
			return nil
		},
	}
	cmd.Flags().StringVar(&ready, "ready", "", "comma separated seats that are ready, e.g. 0,2")
	return cmd
}

// parseSeats "0,2" -> [true false true false]
func parseSeats(s string) ([4]bool, error) {
	var out [4]bool
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		seat, err := strconv.Atoi(part)
		if err != nil || seat < 0 || seat > 3 {
			return out, fmt.Errorf("%w: seat %q", mahjong.ErrInvalidArgument, part)
		}
		out[seat] = true
	}
	return out, nil
}

// runBatch 供 batch 与测试复用
func runBatch(ctx context.Context, cmd *cobra.Command, file string) error {
	reqs, err := loadBatch(file)
	if err != nil {
		return err
	}
	e, err := newEvaluator()
	if err != nil {
		return err
	}
	defer e.Close()

	failed := 0
	for _, res := range e.EvaluateBatch(ctx, reqs) {
		printResult(cmd.OutOrStdout(), res)
		if res.Err != nil {
			failed++
		}
	}
	evaluated, _, hits := e.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%d evaluated, %d failed, cache hits %d misses %d\n", evaluated, failed, hits.Hits, hits.Misses)
	if failed > 0 {
		return fmt.Errorf("%d of %d hands failed", failed, len(reqs))
	}
	return nil
}

func newBatchCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "batch",
		Short:   "evaluate every hand listed in a YAML file concurrently",
		Example: `  scorer batch --file resource/hands.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd, file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML file with a top-level 'hands' list")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
