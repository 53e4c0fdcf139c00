package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/poolswap-network/poolswap-core/internal/core/application"
)

var deposit = cli.Command{
	Name:  "deposit",
	Usage: "preview a proportional or single-sided deposit",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "pool_id",
			Usage:    "id of the pool",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "pool_tokens",
			Usage: "pool tokens requested by a proportional deposit",
		},
		&cli.Uint64Flag{
			Name:  "max_token_a",
			Usage: "maximum token A amount to pay",
		},
		&cli.Uint64Flag{
			Name:  "max_token_b",
			Usage: "maximum token B amount to pay",
		},
		&cli.StringFlag{
			Name:  "source_asset",
			Usage: "asset of a single-sided deposit",
		},
		&cli.Uint64Flag{
			Name:  "amount",
			Usage: "amount of a single-sided deposit",
		},
		&cli.Uint64Flag{
			Name:  "min_pool_tokens",
			Usage: "slippage protection on the minted pool tokens",
		},
		&cli.Uint64Flag{
			Name:     "reserve_a",
			Usage:    "current token A reserve",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "reserve_b",
			Usage:    "current token B reserve",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "pool_token_supply",
			Usage:    "current pool token supply",
			Required: true,
		},
	},
	Action: depositAction,
}

func depositAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	if sourceAsset := ctx.String("source_asset"); sourceAsset != "" {
		res, err := svc.PreviewSingleDeposit(
			context.Background(),
			ctx.String("pool_id"),
			application.SingleDepositRequest{
				SourceAsset:     sourceAsset,
				SourceAmount:    ctx.Uint64("amount"),
				MinPoolTokens:   ctx.Uint64("min_pool_tokens"),
				ReserveA:        ctx.Uint64("reserve_a"),
				ReserveB:        ctx.Uint64("reserve_b"),
				PoolTokenSupply: ctx.Uint64("pool_token_supply"),
			},
		)
		if err != nil {
			return err
		}
		printRespJSON(res)
		return nil
	}

	res, err := svc.PreviewDeposit(
		context.Background(),
		ctx.String("pool_id"),
		application.DepositRequest{
			PoolTokenAmount: ctx.Uint64("pool_tokens"),
			MaxTokenA:       ctx.Uint64("max_token_a"),
			MaxTokenB:       ctx.Uint64("max_token_b"),
			ReserveA:        ctx.Uint64("reserve_a"),
			ReserveB:        ctx.Uint64("reserve_b"),
			PoolTokenSupply: ctx.Uint64("pool_token_supply"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(res)
	return nil
}
