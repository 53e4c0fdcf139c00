package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var listpools = cli.Command{
	Name:   "listpools",
	Usage:  "list all created pools",
	Action: listPoolsAction,
}

func listPoolsAction(_ *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	pools, err := svc.ListPools(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(pools)
	return nil
}
