package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var spotprice = cli.Command{
	Name:  "spotprice",
	Usage: "get the marginal price for selling an asset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "pool_id",
			Usage:    "id of the pool",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "source_asset",
			Usage:    "asset being sold",
			Required: true,
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
	Action: spotPriceAction,
}

func spotPriceAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	price, err := svc.GetSpotPrice(
		context.Background(),
		ctx.String("pool_id"),
		ctx.String("source_asset"),
		ctx.Uint64("reserve_a"),
		ctx.Uint64("reserve_b"),
	)
	if err != nil {
		return err
	}

	fmt.Println(price.String())
	return nil
}
