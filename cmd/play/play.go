package play

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/pkg/morse"
	"github.com/spf13/cobra"
)

type Params struct {
	Text  []string `pos:"true" optional:"true" help:"Text to transmit. If none provided, reads a line from stdin."`
	Morse bool     `short:"m" help:"Treat the input as Morse code instead of text." default:"false"`
	WPM   int      `short:"w" help:"Transmission speed in words per minute." default:"15"`
	Beep  bool     `short:"b" help:"Play audio tones (requires CGO on Linux)." default:"false"`
}

var (
	markStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	sepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play [text...]",
		Short:       "Transmit Morse code in real time",
		Long:        "Encode text (or take Morse code directly with -m) and replay it symbol by symbol at the given WPM, optionally with audio tones. Ctrl+C stops the transmission.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	input := strings.Join(params.Text, " ")
	if input == "" {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			input = scanner.Text()
		}
	}

	message := input
	if !params.Morse {
		message = morse.Encode(input)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("nothing to transmit")
	}

	fmt.Println(message)
	unit := morse.Unit(params.WPM)
	fmt.Println(infoStyle.Render(fmt.Sprintf("transmitting at %d wpm (unit %v)", params.WPM, unit)))

	transmit(message, params.WPM, params.Beep)
	fmt.Println()
	return nil
}

// transmit realizes the event plan as printed symbols, delays and
// (optionally) tones. The plan itself is pure data; all sleeping happens
// here, and Ctrl+C simply stops consuming it.
func transmit(message string, wpm int, beep bool) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for ev := range morse.PlanTransmission(message, wpm) {
		select {
		case <-sigChan:
			return
		default:
		}

		switch ev.Kind {
		case morse.MarkDot, morse.MarkDash:
			fmt.Print(markStyle.Render(string(ev.Sym)))
			sound(ev.Duration, beep)
		case morse.GapMark:
			time.Sleep(ev.Duration)
		case morse.GapChar:
			fmt.Print(" ")
			time.Sleep(ev.Duration)
		case morse.GapWord:
			fmt.Print(sepStyle.Render(" / "))
			time.Sleep(ev.Duration)
		case morse.Literal:
			fmt.Print(sepStyle.Render(string(ev.Sym)))
		}
	}
}

func sound(duration time.Duration, beep bool) {
	if beep {
		playTone(duration)
		return
	}
	fmt.Print("\a")
	time.Sleep(duration)
}
