package table

import (
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/pkg/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Params struct{}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "table",
		Short:       "Show the Morse code table",
		Long:        "Print every supported character with its code and its length in timing units (dot=1, dash=3, plus one unit between marks).",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			Run(params)
		},
	}.ToCobra()
}

func Run(params *Params) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(getTermWidth())

	t.AppendHeader(table.Row{"Symbol", "Code", "Units"})
	rows := lo.Map(morse.Symbols(), func(sym rune, _ int) table.Row {
		code, _ := morse.CodeFor(sym)
		return table.Row{string(sym), code, codeUnits(code)}
	})
	t.AppendRows(rows)
	t.Render()
}

// codeUnits is the on-air length of one character: 1 unit per dot,
// 3 per dash, 1 between consecutive marks.
func codeUnits(code string) int {
	units := len(code) - 1 // one unit of silence between marks
	for _, mark := range code {
		if mark == morse.Dash {
			units += 3
		} else {
			units++
		}
	}
	return units
}

func getTermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120
	}
	return width
}
