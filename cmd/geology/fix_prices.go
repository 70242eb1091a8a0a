package main

import (
	"fmt"

	"github.com/deppfellow/geology-api/internal/database"
	"github.com/deppfellow/geology-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var fixPricesCmd = &cobra.Command{
	Use:   "fix-prices",
	Short: "Set missing and non-positive product prices to 0.01",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := pgxpool.New(cmd.Context(), database.DSN(current.cfg.Database))
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		products := repository.NewProductRepository(pool)
		nullFixed, zeroFixed, err := products.FixPrices(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully fixed %d product prices. Null prices: %d, Zero prices: %d\n",
			nullFixed+zeroFixed, nullFixed, zeroFixed)
		return nil
	},
}
