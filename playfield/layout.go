package playfield

import "github.com/plus3/pixecs/ecs"

// EntitySpec describes one entity created at setup. Nil components are not attached.
type EntitySpec struct {
	Position ecs.Position
	Velocity *ecs.Velocity
	Sprite   *ecs.Sprite
	Tags     []ecs.Tag
}

// Spawn creates the entity described by spec.
func Spawn(m *ecs.Manager, spec EntitySpec) ecs.Entity {
	e := m.CreateEntity()
	m.AddPosition(e, spec.Position.X, spec.Position.Y)
	if spec.Velocity != nil {
		m.AddVelocity(e, spec.Velocity.DX, spec.Velocity.DY)
	}
	if spec.Sprite != nil {
		m.AddSprite(e, spec.Sprite.Width, spec.Sprite.Height, spec.Sprite.Color)
	}
	for _, tag := range spec.Tags {
		m.AddTag(e, tag)
	}
	return e
}

const (
	enemySize  = 32
	enemyColor = 0x2233CC
)

// DefaultLayout places the player in the top-left corner, EnemyCount drifting
// enemies spread across the screen and a sprite-less marker at the center.
func DefaultLayout(cfg Config) []EntitySpec {
	layout := make([]EntitySpec, 0, cfg.EnemyCount+2)

	layout = append(layout, EntitySpec{
		Velocity: &ecs.Velocity{},
		Sprite: &ecs.Sprite{
			Width:  cfg.PlayerSize,
			Height: cfg.PlayerSize,
			Color:  cfg.PlayerColor,
		},
		Tags: []ecs.Tag{ecs.TagPlayer},
	})

	size := uint32(min(enemySize, cfg.ScreenWidth, cfg.ScreenHeight))
	spanX := uint32(cfg.ScreenWidth) - size
	spanY := uint32(cfg.ScreenHeight) - size
	for i := range cfg.EnemyCount {
		n := uint32(i + 1)
		layout = append(layout, EntitySpec{
			Position: ecs.Position{
				X: n * 97 % (spanX + 1),
				Y: n * 61 % (spanY + 1),
			},
			Velocity: &ecs.Velocity{
				DX: int32(i%5) - 2,
				DY: int32(i%3) - 1,
			},
			Sprite: &ecs.Sprite{Width: size, Height: size, Color: enemyColor},
			Tags:   []ecs.Tag{ecs.TagEnemy},
		})
	}

	layout = append(layout, EntitySpec{
		Position: ecs.Position{X: uint32(cfg.ScreenWidth / 2), Y: uint32(cfg.ScreenHeight / 2)},
		Velocity: &ecs.Velocity{DX: 1, DY: 1},
		Tags:     []ecs.Tag{ecs.TagMarker},
	})

	return layout
}
