package decode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/pkg/morse"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

type Params struct {
	Morse []string `pos:"true" optional:"true" help:"Morse code to decode. If none provided, reads from stdin."`
	Copy  bool     `short:"c" help:"Also copy the result to the system clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "decode [morse...]",
		Short:       "Decode Morse code to text",
		Long:        "Decode International Morse code back to text. Separate characters with single spaces and words with triple spaces. Unrecognized codes decode to ?.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "decode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout, stderr io.Writer) error {
	trie := morse.NewTrie()

	if len(params.Morse) > 0 {
		// Positional args arrive with their spacing collapsed by the
		// shell; a single joined string keeps quoted input intact.
		return emit(params, trie, strings.Join(params.Morse, " "), stdout, stderr)
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := emit(params, trie, scanner.Text(), stdout, stderr); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func emit(params *Params, trie *morse.Trie, message string, stdout, stderr io.Writer) error {
	text, diags := trie.Decode(message)
	for _, diag := range diags {
		fmt.Fprintf(stderr, "decode: %v\n", diag)
	}
	fmt.Fprintln(stdout, text)
	if params.Copy {
		if err := clipboardWriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
