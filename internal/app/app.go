package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"github.com/minhng-ct/commerce-bot/internal/cart"
	"github.com/minhng-ct/commerce-bot/internal/config"
	"github.com/minhng-ct/commerce-bot/internal/kafka"
	"github.com/minhng-ct/commerce-bot/internal/repo/checkout"
	"github.com/minhng-ct/commerce-bot/internal/server"
	"github.com/minhng-ct/commerce-bot/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newCatalog,
			newLeadStore,

			cart.NewLedger,
			checkout.NewClient,
			kafka.NewPublisher,

			usecase.NewCommerceUsecase,
			usecase.NewConversationRouter,

			server.NewHandler,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
