package board

import (
	"errors"
	"fmt"
)

// ErrShape означает, что сетка карты пуста или не прямоугольна
var ErrShape = errors.New("board: grid is not a non-empty rectangle")

// ShapeError описывает нарушение формы сетки
type ShapeError struct {
	Map  string
	Row  int // индекс первой неверной строки, -1 если сетка пуста
	Want int // ожидаемая длина строки
	Got  int
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("map %q: empty grid", e.Map)
	}
	return fmt.Sprintf("map %q: row %d has %d tiles, want %d", e.Map, e.Row, e.Got, e.Want)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrShape)
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// GameMap неизменяемая после создания карта: сетка типов клеток и описание.
// Сетка индексируется [row][col], т.е. [y][x].
type GameMap struct {
	name        string
	tiles       [][]TileType
	flavorText  string
	description string
}

// NewGameMap создаёт карту, копируя сетку.
// Пустая сетка, пустые строки и строки разной длины отклоняются с *ShapeError.
func NewGameMap(name string, tiles [][]TileType, flavorText, description string) (*GameMap, error) {
	if len(tiles) == 0 {
		return nil, &ShapeError{Map: name, Row: -1}
	}

	width := len(tiles[0])
	grid := make([][]TileType, len(tiles))
	for y, row := range tiles {
		if len(row) == 0 || len(row) != width {
			return nil, &ShapeError{Map: name, Row: y, Want: width, Got: len(row)}
		}
		for x, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("map %q: tile (%d,%d): %w: %d", name, x, y, ErrUnknownTileType, uint8(t))
			}
		}
		grid[y] = append([]TileType(nil), row...)
	}

	return &GameMap{
		name:        name,
		tiles:       grid,
		flavorText:  flavorText,
		description: description,
	}, nil
}

// MustGameMap как NewGameMap, но паникует при ошибке. Для встроенных таблиц карт.
func MustGameMap(name string, tiles [][]TileType, flavorText, description string) *GameMap {
	m, err := NewGameMap(name, tiles, flavorText, description)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *GameMap) Name() string        { return m.name }
func (m *GameMap) FlavorText() string  { return m.flavorText }
func (m *GameMap) Description() string { return m.description }

// Width возвращает количество столбцов
func (m *GameMap) Width() int {
	return len(m.tiles[0])
}

// Height возвращает количество строк
func (m *GameMap) Height() int {
	return len(m.tiles)
}

// TileTypeAt возвращает тип клетки (x, y)
func (m *GameMap) TileTypeAt(x, y int) (TileType, bool) {
	if y < 0 || y >= len(m.tiles) || x < 0 || x >= len(m.tiles[y]) {
		return 0, false
	}
	return m.tiles[y][x], true
}

// Tiles возвращает копию сетки
func (m *GameMap) Tiles() [][]TileType {
	grid := make([][]TileType, len(m.tiles))
	for y, row := range m.tiles {
		grid[y] = append([]TileType(nil), row...)
	}
	return grid
}

// TileStacks строит по одному стеку на клетку в построчном порядке.
// Все клетки свободны; повторный вызов даёт независимую копию.
func (m *GameMap) TileStacks() [][]TileStack {
	stacks := make([][]TileStack, len(m.tiles))
	for y, row := range m.tiles {
		stackRow := make([]TileStack, len(row))
		for x, tileType := range row {
			stackRow[x] = NewTileStack(NewGameTile(x, y), NewBoardTile(x, y, tileType))
		}
		stacks[y] = stackRow
	}
	return stacks
}
