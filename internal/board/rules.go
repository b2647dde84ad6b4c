package board

import "github.com/annel0/maleghast-vtt/internal/render"

// Высоты клеток по оси Z
const (
	FlatTileHeight     = 0.5
	StairsTileHeight   = 0.75
	ElevatedTileHeight = 1.0
	WallTileHeight     = 2.0

	// TransformTileHeight: смещение по Z для всех клеток, не зависит от высоты
	TransformTileHeight = 0.5

	tileFootprint = 1.0
)

// RenderAttributes описывает визуальное представление типа клетки
type RenderAttributes struct {
	Height float64
	Color  render.Color
}

// renderRules индексируется типом клетки.
// Пара объявлений ниже не скомпилируется, если длина таблицы разойдётся с tileTypeCount.
// Это ловит только варианты, добавленные после Hazard: пропущенная строка в середине
// даёт нулевую запись, которую отсекает TestRenderAttributesTable.
var renderRules = [...]RenderAttributes{
	Normal:         {Height: FlatTileHeight, Color: render.SRGB(0.23, 0.23, 0.22)},
	Elevation:      {Height: ElevatedTileHeight, Color: render.SRGB(0.8, 0.7, 0.6)},
	SpecialZone:    {Height: FlatTileHeight, Color: render.SRGBU8(137, 171, 162)},
	AdverseTerrain: {Height: FlatTileHeight, Color: render.SRGBU8(46, 19, 71)},
	Objective:      {Height: FlatTileHeight, Color: render.SRGBU8(219, 215, 81)},
	Stair:          {Height: StairsTileHeight, Color: render.SRGBU8(14, 14, 14)},
	Wall:           {Height: WallTileHeight, Color: render.SRGB(0, 0, 0)},
	Hazard:         {Height: FlatTileHeight, Color: render.SRGB(0.219, 0.164, 0.81)},
}

var (
	_ [len(renderRules) - int(tileTypeCount)]struct{}
	_ [int(tileTypeCount) - len(renderRules)]struct{}
)

// Attributes возвращает высоту и цвет для типа клетки.
// Тип должен быть допустимым (Valid); для остальных значений вызов паникует.
func (t TileType) Attributes() RenderAttributes {
	return renderRules[t]
}
