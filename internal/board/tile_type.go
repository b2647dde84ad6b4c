package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTileType возвращается при разборе неизвестного имени или символа клетки
var ErrUnknownTileType = errors.New("board: unknown tile type")

// TileType представляет семантическую категорию клетки поля.
// Набор закрыт: новые значения добавляются только перед tileTypeCount.
type TileType uint8

const (
	Normal TileType = iota
	Elevation
	SpecialZone
	AdverseTerrain
	Objective
	Stair
	Wall
	Hazard

	tileTypeCount // всегда последний: количество типов
)

var tileTypeNames = [tileTypeCount]string{
	Normal:         "Normal",
	Elevation:      "Elevation",
	SpecialZone:    "SpecialZone",
	AdverseTerrain: "AdverseTerrain",
	Objective:      "Objective",
	Stair:          "Stair",
	Wall:           "Wall",
	Hazard:         "Hazard",
}

// Символы легенды карты. Используются в YAML-каталоге и в терминальном выводе.
var tileTypeGlyphs = [tileTypeCount]rune{
	Normal:         '.',
	Elevation:      '^',
	SpecialZone:    '*',
	AdverseTerrain: '~',
	Objective:      'O',
	Stair:          '/',
	Wall:           '#',
	Hazard:         '!',
}

// TileTypes возвращает все типы клеток в порядке объявления
func TileTypes() []TileType {
	types := make([]TileType, tileTypeCount)
	for i := range types {
		types[i] = TileType(i)
	}
	return types
}

// Valid проверяет, что значение входит в закрытый набор
func (t TileType) Valid() bool {
	return t < tileTypeCount
}

// String возвращает каноническое имя типа
func (t TileType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TileType(%d)", uint8(t))
	}
	return tileTypeNames[t]
}

// Glyph возвращает символ легенды карты
func (t TileType) Glyph() rune {
	if !t.Valid() {
		return '?'
	}
	return tileTypeGlyphs[t]
}

// ParseTileType разбирает имя типа без учёта регистра
func ParseTileType(name string) (TileType, error) {
	for i, n := range tileTypeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return TileType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTileType, name)
}

// ParseGlyph возвращает тип клетки по символу легенды
func ParseGlyph(r rune) (TileType, error) {
	for i, g := range tileTypeGlyphs {
		if g == r {
			return TileType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: glyph %q", ErrUnknownTileType, r)
}

// MarshalText реализует encoding.TextMarshaler
func (t TileType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTileType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *TileType) UnmarshalText(text []byte) error {
	parsed, err := ParseTileType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
