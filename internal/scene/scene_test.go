package scene

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/annel0/maleghast-vtt/internal/board"
	"github.com/annel0/maleghast-vtt/internal/maps"
	"github.com/annel0/maleghast-vtt/internal/observability"
	"github.com/annel0/maleghast-vtt/internal/render"
	"github.com/annel0/maleghast-vtt/internal/vec"
)

func TestComposeMap1(t *testing.T) {
	b, err := board.New(maps.Builtin{})
	require.NoError(t, err)

	meshes := render.NewAssets[render.Mesh]()
	materials := render.NewAssets[render.StandardMaterial]()

	s, err := Compose(context.Background(), b, meshes, materials, Options{})
	require.NoError(t, err)

	cells := b.Width() * b.Height()
	assert.Equal(t, 1, s.Count(KindCamera))
	assert.Equal(t, 1, s.Count(KindLight))
	assert.Equal(t, cells+1, s.Count(KindMesh))
	assert.Equal(t, cells+1, meshes.Len())
	assert.Equal(t, cells+1, materials.Len())

	entities := s.Entities()
	require.Len(t, entities, cells+3)

	cam := entities[0]
	require.Equal(t, KindCamera, cam.Kind)
	assert.Equal(t, render.FromXYZ(10, 10, 10), cam.Transform)
	assert.Equal(t, 10.0, cam.Camera.ViewportHeight)
	assert.Equal(t, vec.Vec3Float{X: -10, Y: -10, Z: -10}, cam.Camera.Forward(cam.Transform.Translation))

	ground := entities[1]
	assert.Equal(t, render.Plane(5, 5), meshes.MustGet(ground.Primitive.Mesh))
	assert.Equal(t, render.SRGB(0.3, 0.5, 0.3), materials.MustGet(ground.Primitive.Material).BaseColor)

	// Клетки идут в построчном порядке сразу после плоскости
	for i, e := range entities[2 : 2+cells] {
		x, y := i%b.Width(), i/b.Width()
		assert.Equal(t, render.FromXYZ(float64(x), float64(y), board.TransformTileHeight), e.Transform)
	}

	light := entities[len(entities)-1]
	assert.Equal(t, KindLight, light.Kind)
	assert.Equal(t, render.FromXYZ(3, 8, 5), light.Transform)

	for i, e := range entities {
		assert.Equal(t, uint64(i+1), e.ID)
	}
}

func TestComposeWithMetricsAndTracing(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	shutdown, err := observability.InitWithExporter(context.Background(), "scene-test", exp)
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	m := board.MustGameMap("pair", [][]board.TileType{{board.Normal, board.Wall}}, "", "")
	b := board.NewFromMap(m)

	reg := prometheus.NewRegistry()
	metrics := render.NewMetrics(reg)

	alloc := render.NewAllocators(metrics, false)
	_, err = Compose(context.Background(), b, alloc.Meshes, alloc.Materials, Options{Metrics: metrics})
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := make(map[string]float64)
	for _, f := range families {
		if c := f.GetMetric()[0].GetCounter(); c != nil {
			values[f.GetName()] = c.GetValue()
		}
	}
	assert.Equal(t, 3.0, values["board_render_meshes_allocated_total"])
	assert.Equal(t, 3.0, values["board_render_materials_allocated_total"])
	assert.Equal(t, 2.0, values["board_render_primitives_total"])

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "scene.Compose", spans[0].Name)

	attrs := make(map[string]interface{})
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, "pair", attrs["board.map"])
	assert.Equal(t, int64(2), attrs["board.width"])
	assert.Equal(t, int64(5), attrs["scene.entities"])
}

func TestComposeDedupMetricsCountRegistrations(t *testing.T) {
	m := board.MustGameMap("plain", [][]board.TileType{
		{board.Normal, board.Normal},
		{board.Normal, board.Normal},
	}, "", "")
	b := board.NewFromMap(m)

	reg := prometheus.NewRegistry()
	metrics := render.NewMetrics(reg)
	alloc := render.NewAllocators(metrics, true)

	s, err := Compose(context.Background(), b, alloc.Meshes, alloc.Materials, Options{Metrics: metrics})
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count(KindMesh))

	// Плоскость земли и одна общая клетка
	assert.Equal(t, 2, alloc.MeshAssets.Len())
	assert.Equal(t, 2, alloc.MaterialAssets.Len())

	meshesTotal, err := testutil.GatherAndCount(reg, "board_render_meshes_allocated_total")
	require.NoError(t, err)
	require.Equal(t, 1, meshesTotal)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		switch f.GetName() {
		case "board_render_meshes_allocated_total", "board_render_materials_allocated_total":
			assert.Equal(t, 2.0, f.GetMetric()[0].GetCounter().GetValue(), f.GetName())
		case "board_render_primitives_total":
			assert.Equal(t, 4.0, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestComposeCancelled(t *testing.T) {
	b := board.NewFromMap(maps.Map1())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	meshes := render.NewAssets[render.Mesh]()
	_, err := Compose(ctx, b, meshes, render.NewAssets[render.StandardMaterial](), Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, meshes.Len())
}

func TestEntityKindString(t *testing.T) {
	assert.Equal(t, "camera", KindCamera.String())
	assert.Equal(t, "mesh", KindMesh.String())
	assert.Equal(t, "light", KindLight.String())
	assert.Equal(t, "unknown", EntityKind(9).String())
}
