package board

import "github.com/annel0/maleghast-vtt/internal/render"

// TileStack объединяет игровое состояние и визуальное описание одной клетки
type TileStack struct {
	gameTile  GameTile
	boardTile BoardTile
}

// NewTileStack создаёт стек клетки
func NewTileStack(gameTile GameTile, boardTile BoardTile) TileStack {
	return TileStack{
		gameTile:  gameTile,
		boardTile: boardTile,
	}
}

// GameTile возвращает изменяемое игровое состояние клетки
func (s *TileStack) GameTile() *GameTile {
	return &s.gameTile
}

// BoardTile возвращает копию визуального описания
func (s *TileStack) BoardTile() BoardTile {
	return s.boardTile
}

// Render отрисовывает визуальную часть стека
func (s *TileStack) Render(meshes render.MeshAllocator, materials render.MaterialAllocator) render.Primitive {
	return s.boardTile.Render(meshes, materials)
}
