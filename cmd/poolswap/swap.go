package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/poolswap-network/poolswap-core/internal/core/domain"
)

var previewswap = cli.Command{
	Name:  "swap",
	Usage: "preview a swap against a reserve snapshot",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "pool_id",
			Usage:    "id of the pool to trade on",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "source_asset",
			Usage:    "asset being sold",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "gross amount of source tokens offered",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "min_amount_out",
			Usage: "slippage protection on the output",
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
	},
	Action: previewSwapAction,
}

func previewSwapAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := svc.PreviewSwap(
		context.Background(),
		ctx.String("pool_id"),
		domain.SwapRequest{
			SourceAsset:      ctx.String("source_asset"),
			SourceAmount:     ctx.Uint64("amount"),
			MinimumAmountOut: ctx.Uint64("min_amount_out"),
			ReserveA:         ctx.Uint64("reserve_a"),
			ReserveB:         ctx.Uint64("reserve_b"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(res)
	return nil
}
