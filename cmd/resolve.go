package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tranvictor/coinscope/address"
	"github.com/tranvictor/coinscope/base58check"
	"github.com/tranvictor/coinscope/coins"
	"github.com/tranvictor/coinscope/common"
)

var ResolveJSON bool

type resolveMatch struct {
	URIScheme string `json:"uri_scheme"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Decimals  int    `json:"decimals"`
	Kind      string `json:"kind"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve ADDRESS",
	Short: "List every registered coin an address could belong to",
	Long: `Decodes the address and lists every registered coin whose version bytes
claim it, in registration order. An address with no claimant is still a
valid address, it just means no coin you registered owns that version
byte.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addr := args[0]
		reg := defaultRegistry()

		version, payload, err := base58check.Decode(addr)
		if err != nil {
			fmt.Printf("%s: %s\n", common.AlertColor("Invalid address"), err)
			return
		}
		if len(payload) != address.HashLength {
			fmt.Printf(
				"%s: address payload is %d bytes, want %d\n",
				common.AlertColor("Invalid address"), len(payload), address.HashLength,
			)
			return
		}
		matches := reg.FindByVersionByte(version)

		if ResolveJSON {
			printResolveJSON(version, matches)
			return
		}

		if len(matches) == 0 {
			fmt.Printf("No registered coin claims version byte %d. The address is well formed though.\n", version)
			return
		}
		fmt.Printf("%-20s %-8s %-24s %9s  %s\n", "Scheme", "Symbol", "Name", "Decimals", "Kind")
		fmt.Printf("--------------------------------------------------------------------\n")
		for _, c := range matches {
			fmt.Printf(
				"%-20s %-8s %-24s %9d  %s\n",
				c.GetURIScheme(), c.GetSymbol(), c.GetName(), c.GetDecimalPlaces(),
				common.KindWithColor(addressKind(c, version)),
			)
		}
	},
}

func printResolveJSON(version byte, matches []coins.Coin) {
	result := []resolveMatch{}
	for _, c := range matches {
		result = append(result, resolveMatch{
			URIScheme: c.GetURIScheme(),
			Name:      c.GetName(),
			Symbol:    c.GetSymbol(),
			Decimals:  c.GetDecimalPlaces(),
			Kind:      addressKind(c, version),
		})
	}
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("Couldn't marshal the matches: %s\n", err)
		return
	}
	fmt.Printf("%s\n", output)
}

func addressKind(c coins.Coin, version byte) string {
	if c.GetP2SHHeader() == int(version) {
		return "p2sh"
	}
	return "p2pkh"
}

func init() {
	resolveCmd.PersistentFlags().BoolVarP(&ResolveJSON, "json", "j", false, "Print the matches as json instead of a table")
	rootCmd.AddCommand(resolveCmd)
}
