package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/maleghast-vtt/internal/render"
	"github.com/annel0/maleghast-vtt/internal/vec"
)

type staticSource struct {
	m   *GameMap
	err error
}

func (s staticSource) GameMap() (*GameMap, error) {
	return s.m, s.err
}

func newAllocators() (*render.Assets[render.Mesh], *render.Assets[render.StandardMaterial]) {
	return render.NewAssets[render.Mesh](), render.NewAssets[render.StandardMaterial]()
}

func TestNormalWallScenario(t *testing.T) {
	m, err := NewGameMap("pair", [][]TileType{{Normal, Wall}}, "", "")
	require.NoError(t, err)

	b, err := New(staticSource{m: m})
	require.NoError(t, err)

	first, ok := b.TileStack(0, 0)
	require.True(t, ok)
	second, ok := b.TileStack(1, 0)
	require.True(t, ok)
	assert.Equal(t, Normal, first.BoardTile().TileType())
	assert.Equal(t, Wall, second.BoardTile().TileType())

	meshes, materials := newAllocators()
	primitives := b.RenderBoardTiles(meshes, materials)
	require.Len(t, primitives, 2)

	assert.Equal(t, 0.5, meshes.MustGet(primitives[0].Mesh).Height())
	assert.Equal(t, 2.0, meshes.MustGet(primitives[1].Mesh).Height())
	assert.Equal(t, render.FromXYZ(0, 0, 0.5), primitives[0].Transform)
	assert.Equal(t, render.FromXYZ(1, 0, 0.5), primitives[1].Transform)

	assert.Equal(t, render.SRGB(0, 0, 0), materials.MustGet(primitives[1].Material).BaseColor)
}

func TestTileStacksMatchGrid(t *testing.T) {
	grids := map[string][][]TileType{
		"1x1": {{Objective}},
		"3x2": {
			{Normal, Elevation, Stair},
			{Hazard, AdverseTerrain, SpecialZone},
		},
		"2x4": {
			{Wall, Wall},
			{Normal, Normal},
			{Elevation, Objective},
			{Wall, Hazard},
		},
	}

	for name, grid := range grids {
		t.Run(name, func(t *testing.T) {
			m, err := NewGameMap(name, grid, "", "")
			require.NoError(t, err)

			stacks := m.TileStacks()
			require.Len(t, stacks, len(grid))

			total := 0
			for y, row := range stacks {
				require.Len(t, row, len(grid[y]))
				for x := range row {
					s := &row[x]
					gt := s.GameTile()
					bt := s.BoardTile()

					assert.Equal(t, vec.Vec2{X: x, Y: y}, Position(gt))
					assert.Equal(t, vec.Vec2{X: x, Y: y}, Position(bt))
					assert.Equal(t, grid[y][x], bt.TileType())
					assert.False(t, gt.IsOccupied())
					total++
				}
			}
			assert.Equal(t, m.Width()*m.Height(), total)
		})
	}
}

func TestTileStacksAreIndependent(t *testing.T) {
	m := MustGameMap("twice", [][]TileType{{Normal, Normal}}, "", "")

	first := m.TileStacks()
	first[0][1].GameTile().SetOccupied(true)

	second := m.TileStacks()
	assert.False(t, second[0][1].GameTile().IsOccupied())
}

func TestRenderIsRowMajor(t *testing.T) {
	grid := [][]TileType{
		{Normal, Elevation, Stair},
		{Wall, Hazard, Objective},
	}
	b := NewFromMap(MustGameMap("order", grid, "", ""))

	meshes, materials := newAllocators()
	primitives := b.RenderBoardTiles(meshes, materials)
	require.Len(t, primitives, 6)

	i := 0
	for y, row := range grid {
		for x, tileType := range row {
			p := primitives[i]
			assert.Equal(t, render.FromXYZ(float64(x), float64(y), TransformTileHeight), p.Transform)
			assert.Equal(t, tileType.Attributes().Height, meshes.MustGet(p.Mesh).Height())
			assert.Equal(t, tileType.Attributes().Color, materials.MustGet(p.Material).BaseColor)
			i++
		}
	}

	// Без дедупликации каждая клетка получает свои ассеты
	assert.Equal(t, 6, meshes.Len())
	assert.Equal(t, 6, materials.Len())
}

func TestRenderWithDedup(t *testing.T) {
	b := NewFromMap(MustGameMap("dedup", [][]TileType{{Normal, Normal, Wall}}, "", ""))

	meshes, materials := newAllocators()
	primitives := b.RenderBoardTiles(
		render.NewDedup[render.Mesh](meshes),
		render.NewDedup[render.StandardMaterial](materials),
	)

	require.Len(t, primitives, 3)
	assert.Equal(t, primitives[0].Mesh, primitives[1].Mesh)
	assert.NotEqual(t, primitives[0].Mesh, primitives[2].Mesh)
	assert.Equal(t, 2, meshes.Len())
	assert.Equal(t, 2, materials.Len())
}

func TestOccupancy(t *testing.T) {
	b := NewFromMap(MustGameMap("units", [][]TileType{
		{Normal, Normal},
		{Normal, Normal},
	}, "", ""))

	s, ok := b.TileStack(1, 1)
	require.True(t, ok)
	gt := s.GameTile()

	gt.SetOccupied(true)
	assert.True(t, gt.IsOccupied())
	gt.SetOccupied(true)
	assert.True(t, gt.IsOccupied())
	assert.Equal(t, []vec.Vec2{{X: 1, Y: 1}}, b.Occupied())

	gt.SetOccupied(false)
	assert.False(t, gt.IsOccupied())
	assert.Empty(t, b.Occupied())

	_, ok = b.TileStack(2, 0)
	assert.False(t, ok)
	_, ok = b.TileStack(0, -1)
	assert.False(t, ok)
}

func TestOccupancyDoesNotAffectRendering(t *testing.T) {
	b := NewFromMap(MustGameMap("still", [][]TileType{{Elevation}}, "", ""))

	meshes, materials := newAllocators()
	before := b.RenderBoardTiles(meshes, materials)

	s, _ := b.TileStack(0, 0)
	s.GameTile().SetOccupied(true)
	after := b.RenderBoardTiles(meshes, materials)

	assert.Equal(t, before[0].Transform, after[0].Transform)
	assert.Equal(t, meshes.MustGet(before[0].Mesh), meshes.MustGet(after[0].Mesh))
}

func TestNewPropagatesSourceError(t *testing.T) {
	sentinel := errors.New("нет карты")
	_, err := New(staticSource{err: sentinel})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestBoardDimensions(t *testing.T) {
	b := NewFromMap(MustGameMap("dims", [][]TileType{
		{Normal, Normal, Normal},
		{Wall, Wall, Wall},
	}, "Ветер воет.", "Узкий проход."))

	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, "dims", b.Map().Name())
	assert.Equal(t, "Ветер воет.", b.Map().FlavorText())
	assert.Equal(t, "Узкий проход.", b.Map().Description())
}
