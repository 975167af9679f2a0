package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rockfall/internal/shaft"
)

var (
	flagRenderPieces int64
	flagRows         int
	flagShowNext     bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw the top of the shaft after some rocks",
	Long: `Drop the given number of rocks and draw the top of the shaft.

Settled rock is drawn as '#', the next rock (with --next) as '@'.
The number of rows defaults to the config value, or the terminal height.

Examples:
  rockfall render input.txt
  rockfall render input.txt --pieces 2022 --rows 30
  rockfall render input.txt --pieces 3 --next`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().Int64Var(&flagRenderPieces, "pieces", 10, "Number of rocks to drop")
	renderCmd.Flags().IntVar(&flagRows, "rows", 0, "Rows to draw (0 = config or terminal height)")
	renderCmd.Flags().BoolVar(&flagShowNext, "next", false, "Also draw the next rock at its spawn position")
}

var (
	rockStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	fallingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	wallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

func runRender(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	logger := newLogger(cfg)

	if flagRenderPieces < 0 {
		fail(fmt.Errorf("--pieces must not be negative, got %d", flagRenderPieces))
	}

	pattern, err := readPattern(args)
	if err != nil {
		fail(err)
	}

	sim := shaft.NewSimulation(pattern)
	for sim.Turn() <= flagRenderPieces {
		sim.Step()
	}
	logger.Debug("simulated", "pieces", flagRenderPieces, "height", sim.Height())

	var next *shaft.Shape
	if flagShowNext {
		s := shaft.Spawn(sim.Turn(), sim.Grid().Top())
		next = &s
	}

	rows := renderRows(cfg.Render.Rows)
	fmt.Println(headerStyle.Render(fmt.Sprintf("Rocks: %d | Height: %d | Jet: %d/%d",
		flagRenderPieces, sim.Height(), sim.Jets().Index(), sim.Jets().Len())))
	fmt.Print(styleShaft(shaft.RenderASCII(sim.Grid(), next, rows)))
}

// renderRows picks the row count: flag, then config, then terminal height.
func renderRows(configured int) int {
	if flagRows > 0 {
		return flagRows
	}
	if configured > 0 {
		return configured
	}
	if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && h > 3 {
		return h - 3 // header, floor and prompt
	}
	return 24
}

// styleShaft colours the glyphs of a RenderASCII drawing.
func styleShaft(ascii string) string {
	var sb strings.Builder
	for _, r := range ascii {
		switch r {
		case shaft.GlyphRock:
			sb.WriteString(rockStyle.Render(string(r)))
		case shaft.GlyphFalling:
			sb.WriteString(fallingStyle.Render(string(r)))
		case shaft.GlyphWall, '+', '-':
			sb.WriteString(wallStyle.Render(string(r)))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
