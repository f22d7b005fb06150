package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/palemoky/poker-machine/internal/config"
	"github.com/palemoky/poker-machine/internal/game"
	"github.com/palemoky/poker-machine/internal/game/ledger"
	"github.com/palemoky/poker-machine/internal/logger"
	"github.com/palemoky/poker-machine/internal/sound"
	"github.com/palemoky/poker-machine/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			fmt.Fprintf(os.Stderr, "程序异常退出: %v\n日志: %s\n", r, logger.GetLogPath())
			logger.Close()
			os.Exit(1)
		}
	}()

	sm := sound.NewSoundManager(cfg.Sound.Dir, cfg.Sound.Mute)
	if err := sm.Init(); err != nil {
		logger.LogError("sound disabled: %v", err)
	} else if !cfg.Sound.Mute && !sm.Loaded(sound.Deal) {
		logger.LogInfo("no sounds found in %s", cfg.Sound.Dir)
	}
	defer sm.Close()

	l := ledger.New(ledger.Rules{
		StartingPoints: cfg.Game.StartingPoints,
		MinCost:        cfg.Game.MinCost,
		CostPercent:    cfg.Game.CostPercent,
	})
	seed := uint64(time.Now().UnixNano())
	session := game.NewSession(l, rand.New(rand.NewPCG(seed, seed>>1)), game.Options{
		RedrawBudget: cfg.Game.RedrawBudget,
		HidePreview:  cfg.Game.HidePreview,
	})

	if err := ui.Run(session, sm, cfg.Game.FrameDuration()); err != nil {
		logger.LogError("ui: %v", err)
		log.Fatalf("运行游戏时出错: %v", err)
	}

	if msg := session.Message(); msg != "" {
		fmt.Println(msg)
	}
	fmt.Printf("Final points: %d\nMax points: %d\n", l.Points(), l.MaxPoints())
}
