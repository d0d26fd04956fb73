package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pixecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/pixecs/ecs/debugui/ebiten"
	"github.com/plus3/pixecs/playfield"
)

var keyBindings = map[playfield.Key][]ebiten.Key{
	playfield.KeyUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	playfield.KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	playfield.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	playfield.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	playfield.KeyBoost: {ebiten.KeyShift},
}

// game implements ebiten.Game. Update runs one engine tick per ebiten tick and
// Draw presents the last completed buffer.
type game struct {
	engine   *playfield.Engine
	buffer   []uint32
	pixels   []byte
	canvas   *ebiten.Image
	keys     playfield.Keys
	lastTick time.Time

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func newGame(engine *playfield.Engine) *game {
	screen := engine.Screen()
	return &game{
		engine:   engine,
		buffer:   screen.NewBuffer(),
		pixels:   make([]byte, screen.Len()*4),
		canvas:   ebiten.NewImage(screen.Width, screen.Height),
		keys:     make(playfield.Keys, len(keyBindings)),
		lastTick: time.Now(),
	}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(g.lastTick)
	g.lastTick = now

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	var keys playfield.KeyState = g.snapshotKeys()
	if g.imgui != nil && debugui.WantsKeyboard() {
		keys = playfield.NoKeys
	}

	if err := g.engine.Tick(keys, g.buffer); err != nil {
		return err
	}

	if g.overlay != nil {
		g.overlay.Render(g.engine.Manager(), g.engine.Stats(), float32(deltaTime.Seconds()))
	}
	return nil
}

func (g *game) snapshotKeys() playfield.Keys {
	for key, bound := range keyBindings {
		held := false
		for _, k := range bound {
			if ebiten.IsKeyPressed(k) {
				held = true
				break
			}
		}
		g.keys[key] = held
	}
	return g.keys
}

func (g *game) Draw(screen *ebiten.Image) {
	encodeRGBA(g.buffer, g.pixels)
	g.canvas.WritePixels(g.pixels)
	screen.DrawImage(g.canvas, nil)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	screen := g.engine.Screen()
	return screen.Width, screen.Height
}

// encodeRGBA expands packed 0xRRGGBB pixels into opaque RGBA bytes.
func encodeRGBA(buffer []uint32, pixels []byte) {
	for i, c := range buffer {
		p := pixels[i*4 : i*4+4 : i*4+4]
		p[0] = byte(c >> 16)
		p[1] = byte(c >> 8)
		p[2] = byte(c)
		p[3] = 0xFF
	}
}
