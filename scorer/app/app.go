package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/rouhjp/rouh-mahjong-net-sub000/common/config"
	"github.com/rouhjp/rouh-mahjong-net-sub000/common/log"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
)

// NewRootCommand scorer 命令树
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "scorer",
		Short:         "scorer 立直麻将计分",
		Long:          `scorer 立直麻将计分：和了牌计分、听牌、流局与批量计分`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(configFile); err != nil {
				return err
			}
			level := config.ScorerConf.LogConf.Level
			if cmd.Flags().Changed("logLevel") || level == "" {
				level = logLevel
			}
			log.InitLog(config.ScorerConf.ID, level)
			log.Debug("配置文件: %+v", config.ScorerConf)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configFile, "resource", "resource/application.yml", "resource file")
	root.PersistentFlags().StringVar(&logLevel, "logLevel", "info", "log level: debug, info, warn, error")

	root.AddCommand(newScoreCommand(), newWaitsCommand(), newDrawCommand(), newBatchCommand(), newReplCommand())
	return root
}

// newEvaluator 以全局配置创建计分服务
func newEvaluator() (*game.Evaluator, error) {
	return game.NewEvaluator(config.ScorerConf)
}

// printResult 输出计分与结算
func printResult(w io.Writer, res game.Result) {
	if res.Err != nil {
		fmt.Fprintf(w, "[%s] error: %v\n", res.ID, res.Err)
		return
	}
	s := res.Score
	fmt.Fprintf(w, "[%s] %s\n", res.ID, s)
	for _, r := range s.Yakus {
		switch {
		case r.Limit > 0:
			fmt.Fprintf(w, "  %-22s limit x%d\n", r.Yaku.Name(), r.Limit)
		default:
			fmt.Fprintf(w, "  %-22s %d han\n", r.Yaku.Name(), r.Han)
		}
	}
	if s.Decomposition != nil {
		fmt.Fprintf(w, "  decomposition: %s\n", s.Decomposition)
	}
	if res.Settlement != nil {
		printSettlement(w, *res.Settlement)
	}
}

func printSettlement(w io.Writer, st mahjong.Settlement) {
	parts := make([]string, 0, 4)
	for seat, d := range st.Deltas {
		parts = append(parts, fmt.Sprintf("seat%d %+d", seat, d))
	}
	fmt.Fprintf(w, "  settlement: %s\n", strings.Join(parts, ", "))
	for _, p := range st.Payments {
		tag := ""
		switch {
		case p.Streak:
			tag = " (streak)"
		case p.Liable:
			tag = " (liable)"
		}
		fmt.Fprintf(w, "    %d -> %d: %d%s\n", p.From, p.To, p.Amount, tag)
	}
	if st.DepositIncome > 0 {
		fmt.Fprintf(w, "    deposits: +%d\n", st.DepositIncome)
	}
}
