package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mikenye/geomdb/predicate"
	"github.com/mikenye/geomdb/prover"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "geomdb",
		Usage:     "Saturates a geometric hypotheses file and prints the resulting fact database",
		UsageText: "geomdb --file <path> [--max-rounds <value>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Path to the hypotheses file, one predicate per line",
				Aliases:  []string{"f"},
				Required: true,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "max-rounds",
				Usage:    "Maximum number of saturation rounds before giving up",
				Value:    prover.DefaultMaxRounds,
				OnlyOnce: true,
				Validator: func(n int64) error {
					if n <= 0 {
						return fmt.Errorf("max-rounds must be greater than zero")
					}
					return nil
				},
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	hypotheses, err := predicate.ParseFile(cmd.String("file"))
	if err != nil {
		return err
	}

	p := prover.New(hypotheses, prover.WithMaxRounds(int(cmd.Int("max-rounds"))))
	db, err := p.FixedPoint()
	if err != nil {
		return err
	}

	fmt.Print(db)
	return nil
}
