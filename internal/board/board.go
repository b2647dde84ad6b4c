package board

import (
	"fmt"

	"github.com/annel0/maleghast-vtt/internal/logging"
	"github.com/annel0/maleghast-vtt/internal/render"
	"github.com/annel0/maleghast-vtt/internal/vec"
)

// MapSource поставляет карту для поля
type MapSource interface {
	GameMap() (*GameMap, error)
}

// Board владеет картой и сеткой стеков клеток.
// Не потокобезопасен: синхронизация доступа лежит на вызывающем коде.
type Board struct {
	gameMap    *GameMap
	tileStacks [][]TileStack
}

// New получает карту из источника и сразу строит все стеки клеток
func New(src MapSource) (*Board, error) {
	m, err := src.GameMap()
	if err != nil {
		return nil, fmt.Errorf("board: load map: %w", err)
	}
	return NewFromMap(m), nil
}

// NewFromMap строит поле по готовой карте
func NewFromMap(m *GameMap) *Board {
	b := &Board{
		gameMap:    m,
		tileStacks: m.TileStacks(),
	}
	logging.GetBoardLogger().Debug("Поле %q построено: %dx%d клеток", m.Name(), m.Width(), m.Height())
	return b
}

// Map возвращает карту поля
func (b *Board) Map() *GameMap {
	return b.gameMap
}

func (b *Board) Width() int  { return b.gameMap.Width() }
func (b *Board) Height() int { return b.gameMap.Height() }

// TileStack возвращает стек клетки (x, y) для изменения игрового состояния
func (b *Board) TileStack(x, y int) (*TileStack, bool) {
	if y < 0 || y >= len(b.tileStacks) || x < 0 || x >= len(b.tileStacks[y]) {
		return nil, false
	}
	return &b.tileStacks[y][x], true
}

// Occupied возвращает координаты занятых клеток в построчном порядке
func (b *Board) Occupied() []vec.Vec2 {
	var occupied []vec.Vec2
	for y := range b.tileStacks {
		for x := range b.tileStacks[y] {
			gt := b.tileStacks[y][x].GameTile()
			if gt.IsOccupied() {
				occupied = append(occupied, Position(gt))
			}
		}
	}
	return occupied
}

// RenderBoardTiles отрисовывает все клетки в построчном порядке.
// Аллокаторы используются эксклюзивно на время вызова; дедупликации нет.
func (b *Board) RenderBoardTiles(meshes render.MeshAllocator, materials render.MaterialAllocator) []render.Primitive {
	primitives := make([]render.Primitive, 0, b.Width()*b.Height())
	for y := range b.tileStacks {
		for x := range b.tileStacks[y] {
			primitives = append(primitives, b.tileStacks[y][x].Render(meshes, materials))
		}
	}
	return primitives
}
