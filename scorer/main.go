package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rouhjp/rouh-mahjong-net-sub000/common/log"
	"github.com/rouhjp/rouh-mahjong-net-sub000/scorer/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewRootCommand().ExecuteContext(ctx); err != nil {
		log.Error("发生异常: %v", err)
		stop()
		os.Exit(1)
	}
}
