package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/avoronkov/famicore/internal/nes"
)

// P - pause
// R - one instruction and stop, while paused

const (
	gameScreenWidth  = 256
	gameScreenHeight = 240
	gameScreenScale  = 2

	debugScreenWidth  = 300
	debugScreenHeight = gameScreenHeight * gameScreenScale

	// NTSC CPU clock over 60 frames
	ticsPerFrame = 1789773 / 60
)

type UI struct {
	bus    *nes.Bus
	disasm map[uint16]string
}

func New(bus *nes.Bus) *UI {
	return &UI{
		bus:    bus,
		disasm: bus.Disassemble(),
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.bus.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && ui.bus.Paused() {
		ui.bus.StepInstruction()
	}

	if !ui.bus.Paused() {
		for i := 0; i < ticsPerFrame && !ui.bus.Halted(); i++ {
			ui.bus.Tic()
		}
	}
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	info := ui.bus.DebugInfo()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	fmt.Fprintf(&infoStr, " CYC: %d\n", info.Cycles)
	if ui.bus.Halted() {
		infoStr.WriteString(" HALTED\n")
	}
	infoStr.WriteString("\n")

	for i := max(0, int(info.PC)-7); i < int(info.PC); i++ {
		if line, ok := ui.disasm[uint16(i)]; ok {
			infoStr.WriteString(" " + line + "\n")
		}
	}
	infoStr.WriteString("*" + ui.disasm[info.PC] + "\n")
	for i := int(info.PC) + 1; i < min(0xffff, int(info.PC)+7); i++ {
		if line, ok := ui.disasm[uint16(i)]; ok {
			infoStr.WriteString(" " + line + "\n")
		}
	}

	debugScreenOffsetX := float32(gameScreenWidth * gameScreenScale)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, debugScreenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return gameScreenWidth*gameScreenScale + debugScreenWidth, gameScreenHeight * gameScreenScale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gameScreenWidth*gameScreenScale+debugScreenWidth, gameScreenHeight*gameScreenScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
