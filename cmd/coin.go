package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/tranvictor/coinscope/coins"
)

var CoinConfig string

// coinFuzzySource adapts a coin snapshot for fuzzy matching over name,
// symbol and uri scheme at once.
type coinFuzzySource []coins.Coin

func (s coinFuzzySource) String(i int) string {
	c := s[i]
	return strings.ToLower(fmt.Sprintf("%s %s %s", c.GetName(), c.GetSymbol(), c.GetURIScheme()))
}

func (s coinFuzzySource) Len() int {
	return len(s)
}

func getCoinMatches(input string, source coinFuzzySource) ([]coins.Coin, []int) {
	matches := fuzzy.FindFrom(strings.ToLower(strings.Replace(input, " ", "_", -1)), source)
	result := []coins.Coin{}
	scores := []int{}
	for i := 0; i < 10; i++ {
		if i < len(matches) {
			result = append(result, source[matches[i].Index])
			scores = append(scores, matches[i].Score)
		} else {
			break
		}
	}
	return result, scores
}

var coinCmd = &cobra.Command{
	Use:   "coin [QUERY]",
	Short: "List registered coins or find at max 10 matching ones",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		reg := defaultRegistry()
		if len(args) == 0 {
			fmt.Printf("%-20s %-8s %-24s %9s %9s %6s\n", "Scheme", "Symbol", "Name", "AddrByte", "P2SHByte", "Dec")
			for _, c := range reg.Coins() {
				p2sh := fmt.Sprintf("%d", c.GetP2SHHeader())
				if c.GetP2SHHeader() == coins.NoP2SH {
					p2sh = "-"
				}
				fmt.Printf(
					"%-20s %-8s %-24s %9d %9s %6d\n",
					c.GetURIScheme(), c.GetSymbol(), c.GetName(), c.GetAddressHeader(), p2sh, c.GetDecimalPlaces(),
				)
			}
			return
		}

		query := strings.Join(args, " ")
		matched, scores := getCoinMatches(query, coinFuzzySource(reg.Coins()))
		fmt.Printf("%12s  Coins\n", "Scores")
		fmt.Printf("-----------------------\n")
		for i, c := range matched {
			fmt.Printf("%12d  %s: %s (%s)\n", scores[i], c.GetURIScheme(), c.GetName(), c.GetSymbol())
		}
	},
}

var addCoinCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new coin to the supported coins list locally",
	Long: `--config flag is supported to pass a new coin config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "Dogecoin",
		"symbol": "DOGE",
		"uri_scheme": "dogecoin",
		"address_header": 30,
		"p2sh_header": 22,
		"decimal_places": 8
	}

Use a p2sh_header of -1 for coins without pay-to-script-hash addresses.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := cmd.Flags().GetString("config")
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			return
		}

		var newCoin *coins.GenericCoin
		config = strings.TrimSpace(config)
		if config != "" && strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}") {
			newCoin, err = coins.NewCoinFromJSON([]byte(config))
			if err != nil {
				fmt.Printf("The provided json is not valid: %s\n", err)
				return
			}
		} else if config != "" {
			// in this case, config is supposed to be a path to a json file
			jsonFile, err := os.Open(config)
			if err != nil {
				fmt.Printf("Couldn't open the provided json file: %s\n", err)
				return
			}
			defer jsonFile.Close()

			jsonBytes, err := io.ReadAll(jsonFile)
			if err != nil {
				fmt.Printf("Couldn't read the provided json file: %s\n", err)
				return
			}
			newCoin, err = coins.NewCoinFromJSON(jsonBytes)
			if err != nil {
				fmt.Printf("The provided json is not a valid coin config: %s\n", err)
				return
			}
		} else {
			fmt.Printf("--config is required, pass a json string or a json filepath\n")
			return
		}

		if err = coins.SaveCustomCoin(newCoin); err != nil {
			fmt.Printf("Couldn't store the new coin: %s\n", err)
			return
		}
		fmt.Printf("Added coin '%s'. It will be loaded on every run from now on.\n", newCoin.GetURIScheme())
	},
}

func init() {
	addCoinCmd.PersistentFlags().StringVarP(&CoinConfig, "config", "c", "", "Path to a coin config json file OR a json string")
	coinCmd.AddCommand(addCoinCmd)
	rootCmd.AddCommand(coinCmd)
}
