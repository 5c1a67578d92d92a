package main

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/fsdevblog/tinyurl/internal/app"
	"github.com/fsdevblog/tinyurl/internal/bmeta"
	"github.com/fsdevblog/tinyurl/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bmeta.Fprint(os.Stdout, bmeta.Info{Version: buildVersion, Date: buildDate, Commit: buildCommit})

	appConf := config.MustLoadConfig()

	a := app.Must(app.New(context.Background(), *appConf))

	a.Logger.Info("Starting server", zap.Any("config", appConf))
	if err := a.Run(); err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	}
}
