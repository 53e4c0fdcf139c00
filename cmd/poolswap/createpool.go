package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/poolswap-network/poolswap-core/internal/core/application"
	"github.com/poolswap-network/poolswap-core/pkg/swapcurve"
)

var createpool = cli.Command{
	Name:  "createpool",
	Usage: "create a new pool for a token pair",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset_a",
			Usage:    "token A asset in hex format",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "asset_b",
			Usage:    "token B asset in hex format",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pool_asset",
			Usage:    "asset of the pool's liquidity-share token",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "curve",
			Usage: "pricing curve: constant_product, constant_price, stable or offset",
			Value: "constant_product",
		},
		&cli.Uint64Flag{
			Name:  "amp",
			Usage: "amplification coefficient of the stable curve",
		},
		&cli.Uint64Flag{
			Name:  "token_b_price",
			Usage: "fixed price of token B for the constant price curve",
		},
		&cli.Uint64Flag{
			Name:  "token_b_offset",
			Usage: "virtual token B amount for the offset curve",
		},
		&cli.Uint64Flag{
			Name:  "trade_fee_num",
			Usage: "trading fee numerator",
		},
		&cli.Uint64Flag{
			Name:  "trade_fee_den",
			Usage: "trading fee denominator",
		},
	},
	Action: createPoolAction,
}

func createPoolAction(ctx *cli.Context) error {
	curveType, err := swapcurve.ParseCurveType(ctx.String("curve"))
	if err != nil {
		return err
	}

	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := svc.CreatePool(context.Background(), application.CreatePoolRequest{
		TokenAAsset:    ctx.String("asset_a"),
		TokenBAsset:    ctx.String("asset_b"),
		PoolTokenAsset: ctx.String("pool_asset"),
		CurveType:      curveType,
		CurveParams: swapcurve.Params{
			Amp:          ctx.Uint64("amp"),
			TokenBPrice:  ctx.Uint64("token_b_price"),
			TokenBOffset: ctx.Uint64("token_b_offset"),
		},
		Fees: swapcurve.Fees{
			TradeFeeNumerator:   ctx.Uint64("trade_fee_num"),
			TradeFeeDenominator: ctx.Uint64("trade_fee_den"),
		},
	})
	if err != nil {
		return err
	}

	printRespJSON(info)
	return nil
}
