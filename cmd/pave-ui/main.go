package main

import (
	"embed"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

// main wires the App bindings into a Wails desktop shell, the same
// way the original design-tool frontend is hosted, so a predicate and
// its approximated cells can be sketched interactively instead of only
// through cmd/pave on the command line.
func main() {
	app := NewApp()

	err := wails.Run(&options.App{
		Title:  "pave",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}
