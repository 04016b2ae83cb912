package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/coinscope/address"
	"github.com/tranvictor/coinscope/common"
	"github.com/tranvictor/coinscope/keys"
	"github.com/tranvictor/coinscope/script"
)

var (
	MultisigWIFs      []string
	MultisigThreshold int
	MultisigCoin      string
)

var multisigCmd = &cobra.Command{
	Use:   "multisig",
	Short: "Build a multisig p2sh address from WIF private keys",
	Long: `Imports each --wif key, builds the threshold-of-n redeem script with the
public keys sorted lexicographically, and prints the resulting p2sh
address for the selected coin. Any order of the same keys gives the same
address. Only the public keys are used; nothing is signed.`,
	Run: func(cmd *cobra.Command, args []string) {
		reg := defaultRegistry()
		coin, err := reg.Lookup(MultisigCoin)
		if err != nil {
			fmt.Printf("%s: %s\n", common.AlertColor("Unknown coin"), err)
			return
		}

		pubKeys := [][]byte{}
		for i, wif := range MultisigWIFs {
			key, err := keys.FromWIF(coin, wif)
			if err != nil {
				fmt.Printf("%s: key %d: %s\n", common.AlertColor("Invalid key"), i+1, err)
				return
			}
			pubKeys = append(pubKeys, key.PubKeyBytes())
		}

		redeemScript, err := script.MultiSigRedeemScript(MultisigThreshold, pubKeys)
		if err != nil {
			fmt.Printf("%s: %s\n", common.AlertColor("Invalid multisig setup"), err)
			return
		}
		outputScript, err := script.P2SHOutputScriptFromRedeem(redeemScript)
		if err != nil {
			fmt.Printf("%s: %s\n", common.AlertColor("Invalid multisig setup"), err)
			return
		}
		addr, err := address.FromP2SHScript(coin, outputScript)
		if err != nil {
			fmt.Printf("%s: %s\n", common.AlertColor("Invalid multisig setup"), err)
			return
		}

		fmt.Printf("%d-of-%d multisig address on %s: %s\n",
			MultisigThreshold, len(pubKeys), coin.GetURIScheme(), common.InfoColor(addr.ToBase58()))
	},
}

func init() {
	multisigCmd.PersistentFlags().StringArrayVar(&MultisigWIFs, "wif", []string{}, "WIF private key, repeat for each signer")
	multisigCmd.PersistentFlags().IntVar(&MultisigThreshold, "threshold", 2, "Number of signatures required to spend")
	multisigCmd.PersistentFlags().StringVar(&MultisigCoin, "coin", "bitcoin", "Coin id or uri scheme the address is for")
	rootCmd.AddCommand(multisigCmd)
}
