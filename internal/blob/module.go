package blob

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"blob",
		fx.Provide(NewClient),
		fx.Provide(func(client *Client) Fetcher { return client }),
	)
}
