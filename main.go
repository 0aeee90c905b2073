package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blackhole/pkg/app"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/embedded"
	"github.com/decker502/blackhole/pkg/game"
)

var (
	verbose = flag.Bool("verbose", false, "启用详细日志输出")
	mass    = flag.Float64("mass", 0, "覆盖黑洞质量（0 表示使用配置值）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何配置加载之前
	embedded.Init(dataFS)

	application, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Mass:    *mass,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)

	if err := ebiten.RunGame(application); err != nil {
		log.Fatal(err)
	}

	// 窗口关闭后保存需要持久化的场景状态
	if scene := application.GetSceneManager().GetCurrentScene(); scene != nil {
		if saveable, ok := scene.(game.Saveable); ok {
			saveable.SaveOnExit()
		}
	}
}
