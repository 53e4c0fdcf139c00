package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/poolswap-network/poolswap-core/internal/core/application"
)

var withdraw = cli.Command{
	Name:  "withdraw",
	Usage: "preview a proportional or single-sided withdrawal",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "pool_id",
			Usage:    "id of the pool",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "pool_tokens",
			Usage: "pool tokens burned by a proportional withdrawal",
		},
		&cli.Uint64Flag{
			Name:  "min_token_a",
			Usage: "minimum token A amount to receive",
		},
		&cli.Uint64Flag{
			Name:  "min_token_b",
			Usage: "minimum token B amount to receive",
		},
		&cli.StringFlag{
			Name:  "dest_asset",
			Usage: "asset of a single-sided withdrawal",
		},
		&cli.Uint64Flag{
			Name:  "amount",
			Usage: "exact amount of a single-sided withdrawal",
		},
		&cli.Uint64Flag{
			Name:  "max_pool_tokens",
			Usage: "maximum pool tokens to burn",
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
	Action: withdrawAction,
}

func withdrawAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	if destAsset := ctx.String("dest_asset"); destAsset != "" {
		res, err := svc.PreviewSingleWithdraw(
			context.Background(),
			ctx.String("pool_id"),
			application.SingleWithdrawRequest{
				DestinationAsset:  destAsset,
				DestinationAmount: ctx.Uint64("amount"),
				MaxPoolTokens:     ctx.Uint64("max_pool_tokens"),
				ReserveA:          ctx.Uint64("reserve_a"),
				ReserveB:          ctx.Uint64("reserve_b"),
				PoolTokenSupply:   ctx.Uint64("pool_token_supply"),
			},
		)
		if err != nil {
			return err
		}
		printRespJSON(res)
		return nil
	}

	res, err := svc.PreviewWithdraw(
		context.Background(),
		ctx.String("pool_id"),
		application.WithdrawRequest{
			PoolTokenAmount: ctx.Uint64("pool_tokens"),
			MinTokenA:       ctx.Uint64("min_token_a"),
			MinTokenB:       ctx.Uint64("min_token_b"),
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
