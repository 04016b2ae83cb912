// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/coinscope/coins"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coinscope",
	Short: "Tell which coins an address could belong to and convert amounts between them",
	Long: `Coinscope is a command line tool for wallet and exchange operators who have
to deal with addresses typed in by users without knowing which coin the user
meant.

Many bitcoin-family networks share the same single-byte version code space,
so one perfectly valid address can belong to several independent coins at
once. Coinscope never guesses: it decodes the address, checks the checksum
and lists every registered coin that claims its version byte, in
registration order. Deciding which one the user meant stays with you.

Coinscope supports you on different ends:

	1. It resolves an address against the built-in coin table (bitcoin
	plus the convertible coins) and any custom coins you added, telling
	you the coin, the address kind (p2pkh or p2sh) and its precision.

	2. It converts amounts between coins at exact integer rates, with
	the intermediate arithmetic done at arbitrary precision so large
	amounts never silently overflow.

	3. It builds multisig p2sh addresses from WIF keys so you can check
	an escrow address before funding it.

Custom coins live in ~/.coinscope/coins/ as json files, one per coin; use
'coinscope coin add' to register one. Bad files are skipped with a warning.

For more information or support, reach me at https://github.com/tranvictor.`,
	// Uncomment the following line if your bare application
	// has an action associated with it:
	//	Run: func(cmd *cobra.Command, args []string) { },
}

// defaultRegistry builds the registry this process works against: the
// built-in table first, then the user's custom coins.
func defaultRegistry() *coins.Registry {
	reg := coins.NewRegistry()
	coins.RegisterBuiltins(reg)
	if err := coins.LoadCustomCoins(reg); err != nil {
		fmt.Printf("WARNING: Failed to load custom coins: %s. Ignore and continue with built-in coins.\n", err)
	}
	return reg
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
