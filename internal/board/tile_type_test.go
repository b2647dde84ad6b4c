package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/annel0/maleghast-vtt/internal/render"
)

func TestRenderAttributesTable(t *testing.T) {
	want := map[TileType]RenderAttributes{
		Normal:         {Height: 0.5, Color: render.SRGB(0.23, 0.23, 0.22)},
		Elevation:      {Height: 1.0, Color: render.SRGB(0.8, 0.7, 0.6)},
		SpecialZone:    {Height: 0.5, Color: render.SRGBU8(137, 171, 162)},
		AdverseTerrain: {Height: 0.5, Color: render.SRGBU8(46, 19, 71)},
		Objective:      {Height: 0.5, Color: render.SRGBU8(219, 215, 81)},
		Stair:          {Height: 0.75, Color: render.SRGBU8(14, 14, 14)},
		Wall:           {Height: 2.0, Color: render.SRGB(0, 0, 0)},
		Hazard:         {Height: 0.5, Color: render.SRGB(0.219, 0.164, 0.81)},
	}

	all := TileTypes()
	require.Len(t, all, len(want))

	for _, tt := range all {
		t.Run(tt.String(), func(t *testing.T) {
			_, ok := want[tt]
			require.True(t, ok, "нет ожидаемых атрибутов для %s", tt)
			// Пропущенная строка таблицы превращается в нулевую запись
			require.NotZero(t, tt.Attributes().Height, "нулевая высота у %s", tt)
			assert.Equal(t, want[tt], tt.Attributes())

			meshes := render.NewAssets[render.Mesh]()
			materials := render.NewAssets[render.StandardMaterial]()
			p := NewBoardTile(4, 2, tt).Render(meshes, materials)

			require.False(t, p.Mesh.IsZero())
			require.False(t, p.Material.IsZero())
			mesh := meshes.MustGet(p.Mesh)
			assert.Equal(t, render.Cuboid(1, 1, want[tt].Height), mesh)
			assert.Equal(t, want[tt].Color, materials.MustGet(p.Material).BaseColor)
			assert.Equal(t, render.FromXYZ(4, 2, 0.5), p.Transform)
		})
	}
}

func TestInvalidTileTypePanics(t *testing.T) {
	bad := TileType(len(TileTypes()))
	require.False(t, bad.Valid())

	assert.Panics(t, func() { bad.Attributes() })
	assert.Panics(t, func() {
		NewBoardTile(0, 0, bad).Render(render.NewAssets[render.Mesh](), render.NewAssets[render.StandardMaterial]())
	})
}

func TestTileTypeNamesAndGlyphs(t *testing.T) {
	seen := make(map[rune]TileType)
	for _, tt := range TileTypes() {
		parsed, err := ParseTileType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, parsed)

		g := tt.Glyph()
		prev, dup := seen[g]
		assert.False(t, dup, "символ %q у %s и %s", g, tt, prev)
		seen[g] = tt

		fromGlyph, err := ParseGlyph(g)
		require.NoError(t, err)
		assert.Equal(t, tt, fromGlyph)
	}

	got, err := ParseTileType(" specialzone ")
	require.NoError(t, err)
	assert.Equal(t, SpecialZone, got)

	_, err = ParseTileType("Lava")
	assert.ErrorIs(t, err, ErrUnknownTileType)
	_, err = ParseGlyph('x')
	assert.ErrorIs(t, err, ErrUnknownTileType)

	assert.Equal(t, "TileType(42)", TileType(42).String())
	assert.Equal(t, '?', TileType(42).Glyph())
}

func TestTileTypeYAML(t *testing.T) {
	var row []TileType
	require.NoError(t, yaml.Unmarshal([]byte(`[Normal, wall, Stair]`), &row))
	assert.Equal(t, []TileType{Normal, Wall, Stair}, row)

	out, err := yaml.Marshal([]TileType{Hazard, Objective})
	require.NoError(t, err)
	assert.Equal(t, "- Hazard\n- Objective\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte(`[Lava]`), &row))

	_, err = TileType(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownTileType)
}
