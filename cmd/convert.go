package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tranvictor/coinscope/common"
	"github.com/tranvictor/coinscope/monetary"
)

var (
	ConvertRate         int64
	ConvertRateDecimals int
	ConvertBaseDecimals int
)

var convertCmd = &cobra.Command{
	Use:   "convert BASE_AMOUNT [COIN_AMOUNT DECIMALS]",
	Short: "Convert an amount between coins at an exact integer rate",
	Long: `Two forms are supported.

Cross rate: you know that BASE_AMOUNT smallest units of one coin equal
COIN_AMOUNT smallest units of the other, and you want the result at
DECIMALS decimal places:

	coinscope convert 123456789012345 98765432 8

Explicit rate: you have the rate itself as a fixed-point integer. The
result is BASE_AMOUNT times the rate, with BASE_AMOUNT read at
--base-decimals decimal places (8 by default):

	coinscope convert 123456789 --rate 987654321054321 --rate-decimals 6

All arithmetic is exact; fractional remainders are truncated, never
rounded.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		baseAmount, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("%s: BASE_AMOUNT must be a 64-bit integer: %s\n", common.AlertColor("Invalid input"), err)
			return
		}

		var result monetary.Amount
		if cmd.Flags().Changed("rate") {
			if len(args) != 1 {
				fmt.Printf("%s: --rate takes no COIN_AMOUNT/DECIMALS arguments\n", common.AlertColor("Invalid input"))
				return
			}
			if ConvertBaseDecimals < 0 || ConvertRateDecimals < 0 {
				fmt.Printf("%s: decimal places must not be negative\n", common.AlertColor("Invalid input"))
				return
			}
			result, err = monetary.NewFromRate(
				monetary.New(baseAmount, ConvertBaseDecimals),
				monetary.New(ConvertRate, ConvertRateDecimals),
			)
		} else {
			if len(args) != 3 {
				fmt.Printf("%s: need BASE_AMOUNT COIN_AMOUNT DECIMALS or --rate\n", common.AlertColor("Invalid input"))
				return
			}
			var coinAmount int64
			coinAmount, err = strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Printf("%s: COIN_AMOUNT must be a 64-bit integer: %s\n", common.AlertColor("Invalid input"), err)
				return
			}
			var decimals int
			decimals, err = strconv.Atoi(args[2])
			if err != nil {
				fmt.Printf("%s: DECIMALS must be an integer: %s\n", common.AlertColor("Invalid input"), err)
				return
			}
			result, err = monetary.NewFromCrossRate(baseAmount, coinAmount, decimals)
		}
		if err != nil {
			fmt.Printf("%s: %s\n", common.AlertColor("Conversion failed"), err)
			return
		}

		fmt.Printf("Amount: %s\n", common.InfoColor(result.PlainString()))
		fmt.Printf("Raw value: %d at %d decimal places\n", result.Value(), result.DecimalPlaces())
	},
}

func init() {
	convertCmd.PersistentFlags().Int64Var(&ConvertRate, "rate", 0, "Rate as a fixed-point integer")
	convertCmd.PersistentFlags().IntVar(&ConvertRateDecimals, "rate-decimals", 0, "Decimal places of --rate")
	convertCmd.PersistentFlags().IntVar(&ConvertBaseDecimals, "base-decimals", 8, "Decimal places of BASE_AMOUNT when used with --rate")
	rootCmd.AddCommand(convertCmd)
}
