package board

import (
	"github.com/annel0/maleghast-vtt/internal/render"
	"github.com/annel0/maleghast-vtt/internal/vec"
)

// Tile даёт единообразный доступ к позиции клетки
type Tile interface {
	X() int
	Y() int
}

// Position возвращает координаты клетки
func Position(t Tile) vec.Vec2 {
	return vec.Vec2{X: t.X(), Y: t.Y()}
}

// GameTile хранит игровое состояние клетки.
// Занятость меняется внешней игровой логикой и не влияет на отрисовку.
type GameTile struct {
	x, y       int
	isOccupied bool
}

// NewGameTile создаёт свободную клетку
func NewGameTile(x, y int) GameTile {
	return GameTile{x: x, y: y}
}

func (g *GameTile) X() int { return g.x }
func (g *GameTile) Y() int { return g.y }

// IsOccupied возвращает true, если клетку занимает юнит
func (g *GameTile) IsOccupied() bool {
	return g.isOccupied
}

// SetOccupied переключает занятость. Переход допустим из любого состояния.
func (g *GameTile) SetOccupied(occupied bool) {
	g.isOccupied = occupied
}

// BoardTile неизменяемое визуальное описание клетки. Копируется по значению.
type BoardTile struct {
	x, y     int
	tileType TileType
}

// NewBoardTile создаёт описание клетки.
// tileType должен быть одним из восьми вариантов: Attributes и Render паникуют
// на недопустимом типе. Клетки из NewGameMap это условие выполняют всегда.
func NewBoardTile(x, y int, tileType TileType) BoardTile {
	return BoardTile{x: x, y: y, tileType: tileType}
}

func (b BoardTile) X() int { return b.x }
func (b BoardTile) Y() int { return b.y }

// TileType возвращает тип клетки
func (b BoardTile) TileType() TileType {
	return b.tileType
}

// Attributes возвращает высоту и цвет клетки
func (b BoardTile) Attributes() RenderAttributes {
	return b.tileType.Attributes()
}

// Transform возвращает размещение клетки в мире: (x, y, TransformTileHeight)
func (b BoardTile) Transform() render.Transform {
	return render.Transform{Translation: vec.FromVec2(Position(b), TransformTileHeight)}
}

// Render регистрирует меш и материал клетки и возвращает примитив.
// Каждый вызов добавляет новые ассеты.
func (b BoardTile) Render(meshes render.MeshAllocator, materials render.MaterialAllocator) render.Primitive {
	attrs := b.Attributes()
	return render.Primitive{
		Mesh:      meshes.Add(render.Cuboid(tileFootprint, tileFootprint, attrs.Height)),
		Material:  materials.Add(render.StandardMaterial{BaseColor: attrs.Color}),
		Transform: b.Transform(),
	}
}

var (
	_ Tile = (*GameTile)(nil)
	_ Tile = BoardTile{}
)
