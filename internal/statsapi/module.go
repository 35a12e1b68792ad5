package statsapi

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"statsapi",
		fx.Provide(NewClient),
	)
}
