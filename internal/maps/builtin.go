package maps

import (
	"github.com/annel0/maleghast-vtt/internal/board"
)

// Map1Name имя встроенной карты по умолчанию
const Map1Name = "Map 1"

// map1Rows записан символами легенды board.TileType.Glyph
var map1Rows = []string{
	"####..####",
	"#O......!#",
	"#.^^..~..#",
	"..^/..~~..",
	"....**....",
	"....**....",
	"..~~../^..",
	"#..~..^^.#",
	"#!......O#",
	"####..####",
}

// Map1 возвращает встроенную карту 10x10
func Map1() *board.GameMap {
	tiles, err := parseRows(map1Rows)
	if err != nil {
		panic(err)
	}
	return board.MustGameMap(
		Map1Name,
		tiles,
		"Старые стены помнят каждую битву.",
		"Симметричная арена: две цели в углах, возвышенности со ступенями и особая зона в центре.",
	)
}

// Builtin поставляет встроенную карту
type Builtin struct{}

// GameMap реализует board.MapSource
func (Builtin) GameMap() (*board.GameMap, error) {
	return Map1(), nil
}
