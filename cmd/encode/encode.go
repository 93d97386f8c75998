package encode

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
	Text []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads from stdin."`
	Copy bool     `short:"c" help:"Also copy the result to the system clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "encode [text...]",
		Short:       "Encode text to Morse code",
		Long:        "Convert text to International Morse code. Characters are separated by single spaces, words by triple spaces. Characters without a Morse code become ###.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "encode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout io.Writer) error {
	if len(params.Text) > 0 {
		return emit(params, morse.Encode(strings.Join(params.Text, " ")), stdout)
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := emit(params, morse.Encode(scanner.Text()), stdout); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func emit(params *Params, encoded string, stdout io.Writer) error {
	fmt.Fprintln(stdout, encoded)
	if params.Copy {
		if err := clipboardWriteAll(encoded); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
