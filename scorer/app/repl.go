package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rouhjp/rouh-mahjong-net-sub000/common/config"
	"github.com/rouhjp/rouh-mahjong-net-sub000/common/log"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newReplCommand() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "read hands from stdin, one score invocation per line",
		Long: `每行使用与 score 相同的参数，例如：
  --hand 234m456p678s23s88p --win 4s --tsumo --seat S
带 --winner 时按本桌账本（庄家、本场、立直棒）结算并记账，另有：
  riichi <seat>   立直，扣一根立直棒
  draw <seats>    荒牌流局，参数为听牌者，如 draw 0,2
  points          查看账本
输入 quit 退出；--watch 时配置文件变更会即时生效`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEvaluator()
			if err != nil {
				return err
			}
			defer e.Close()

			if watch {
				if _, err := config.Watch(configFile, func(cfg config.ScorerConfiguration, err error) {
					if err != nil {
						log.Warn("配置热更新失败: %v", err)
						return
					}
					log.SetLevel(cfg.LogConf.Level)
					if err := e.Reload(cfg.RuleConf.ToRules()); err != nil {
						log.Warn("规则热更新失败: %v", err)
					}
				}); err != nil {
					return err
				}
			}
			return repl(cmd, e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", true, "reload rules when the resource file changes")
	return cmd
}

func repl(cmd *cobra.Command, e *game.Evaluator, in io.Reader, out io.Writer) error {
	table := game.NewTableManager().CreateTable(game.DefaultStartPoints)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "points":
			printLedger(out, table.Snapshot())
			continue
		case "riichi":
			if err := declare(table, fields[1:], e.Rules().DepositUnit); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			printLedger(out, table.Snapshot())
			continue
		case "draw":
			ready, err := parseSeats(strings.Join(fields[1:], ","))
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			st, err := e.SettleExhaustiveDraw(ready)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			table.ApplyDraw(ready, st)
			printSettlement(out, st)
			printLedger(out, table.Snapshot())
			continue
		}

		var f handFlags
		fs := pflag.NewFlagSet("hand", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		f.register(fs)
		if err := fs.Parse(fields); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		req, err := f.request()
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		// 庄家、本场、立直棒以账本为准
		if req.Table != nil {
			ctx := table.Context(req.Table.Winner, req.Table.Method, req.Table.Discarder)
			ctx.Melds, ctx.Rinshan = req.Table.Melds, req.Table.Rinshan
			req.Table = &ctx
		}
		res := e.Evaluate(cmd.Context(), req)
		printResult(out, res)
		if res.Err == nil && res.Settlement != nil {
			table.ApplyWin([]int{req.Table.Winner}, *res.Settlement)
			printLedger(out, table.Snapshot())
		}
	}
	return scanner.Err()
}

func declare(table *game.Table, args []string, unit int) error {
	if len(args) != 1 {
		return fmt.Errorf("用法: riichi <seat>")
	}
	seat, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("座位号非法: %s", args[0])
	}
	return table.Declare(seat, unit)
}

func printLedger(w io.Writer, snap game.Snapshot) {
	parts := make([]string, 0, 4)
	for seat, p := range snap.Points {
		parts = append(parts, fmt.Sprintf("seat%d %d", seat, p))
	}
	fmt.Fprintf(w, "  points: %s (dealer %d, streak %d, deposits %d)\n", strings.Join(parts, ", "), snap.Dealer, snap.Streak, snap.Deposits)
}
