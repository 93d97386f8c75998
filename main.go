package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/ditdah/cmd/decode"
	"github.com/gigurra/ditdah/cmd/encode"
	"github.com/gigurra/ditdah/cmd/play"
	"github.com/gigurra/ditdah/cmd/repl"
	"github.com/gigurra/ditdah/cmd/table"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "ditdah",
		Short:   "Morse code translator and transmitter",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			encode.Cmd(),
			decode.Cmd(),
			play.Cmd(),
			table.Cmd(),
			repl.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
