package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var initpool = cli.Command{
	Name:  "initpool",
	Usage: "initialize a pool with its first reserve snapshot",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "pool_id",
			Usage:    "id of the pool to initialize",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "reserve_a",
			Usage:    "initial token A reserve",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "reserve_b",
			Usage:    "initial token B reserve",
			Required: true,
		},
	},
	Action: initPoolAction,
}

func initPoolAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.InitPool(
		context.Background(),
		ctx.String("pool_id"),
		ctx.Uint64("reserve_a"),
		ctx.Uint64("reserve_b"),
	); err != nil {
		return err
	}

	fmt.Println("pool is initialized")
	return nil
}
