package scene

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/annel0/maleghast-vtt/internal/board"
	"github.com/annel0/maleghast-vtt/internal/logging"
	"github.com/annel0/maleghast-vtt/internal/observability"
	"github.com/annel0/maleghast-vtt/internal/render"
	"github.com/annel0/maleghast-vtt/internal/vec"
)

// EntityKind определяет вид сущности сцены
type EntityKind uint8

const (
	KindCamera EntityKind = iota
	KindMesh
	KindLight
)

// String возвращает имя вида сущности
func (k EntityKind) String() string {
	switch k {
	case KindCamera:
		return "camera"
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	default:
		return "unknown"
	}
}

// Camera описывает ортографическую камеру
type Camera struct {
	ViewportHeight float64
	Target         vec.Vec3Float
	Up             vec.Vec3Float
}

// Forward возвращает направление взгляда камеры из позиции eye
func (c Camera) Forward(eye vec.Vec3Float) vec.Vec3Float {
	return c.Target.Sub(eye)
}

// PointLight описывает точечный источник света
type PointLight struct {
	Intensity float64
	Range     float64
}

// Entity сущность сцены
type Entity struct {
	ID        uint64
	Kind      EntityKind
	Transform render.Transform
	Primitive render.Primitive // только для KindMesh
	Camera    *Camera          // только для KindCamera
	Light     *PointLight      // только для KindLight
}

// Scene хранит сущности в порядке создания
type Scene struct {
	entities []Entity
	nextID   uint64
}

// New создаёт пустую сцену
func New() *Scene {
	return &Scene{nextID: 1}
}

func (s *Scene) spawn(e Entity) uint64 {
	e.ID = s.nextID
	s.nextID++
	s.entities = append(s.entities, e)
	return e.ID
}

// SpawnPrimitive добавляет отрисовываемый примитив
func (s *Scene) SpawnPrimitive(p render.Primitive) uint64 {
	return s.spawn(Entity{Kind: KindMesh, Transform: p.Transform, Primitive: p})
}

// SpawnCamera добавляет камеру
func (s *Scene) SpawnCamera(c Camera, t render.Transform) uint64 {
	return s.spawn(Entity{Kind: KindCamera, Transform: t, Camera: &c})
}

// SpawnLight добавляет точечный источник света
func (s *Scene) SpawnLight(l PointLight, t render.Transform) uint64 {
	return s.spawn(Entity{Kind: KindLight, Transform: t, Light: &l})
}

// Entities возвращает копию списка сущностей
func (s *Scene) Entities() []Entity {
	return append([]Entity(nil), s.entities...)
}

// Count возвращает число сущностей заданного вида
func (s *Scene) Count(kind EntityKind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Параметры стартовой сцены
var (
	cameraPosition = render.FromXYZ(10, 10, 10)
	lightPosition  = render.FromXYZ(3, 8, 5)
	groundColor    = render.SRGB(0.3, 0.5, 0.3)
)

const (
	cameraViewportHeight  = 10.0
	groundHalfSize        = 5.0
	defaultLightIntensity = 1_000_000
	defaultLightRange     = 20
)

// Options настраивает сборку сцены
type Options struct {
	// Metrics учитывает проход отрисовки; может быть nil.
	// Счётчики аллокаций подключаются к аллокаторам через render.NewAllocators.
	Metrics *render.Metrics
}

// Compose собирает стартовую сцену: камеру, плоскость земли, все клетки поля и свет.
// Аллокаторы используются эксклюзивно на время вызова.
func Compose(ctx context.Context, b *board.Board, meshes render.MeshAllocator, materials render.MaterialAllocator, opts Options) (*Scene, error) {
	_, span := observability.Tracer().Start(ctx, "scene.Compose")
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s := New()

	s.SpawnCamera(Camera{
		ViewportHeight: cameraViewportHeight,
		Target:         vec.Vec3Float{},
		Up:             vec.Vec3Float{Z: 1},
	}, cameraPosition)

	s.SpawnPrimitive(render.Primitive{
		Mesh:      meshes.Add(render.Plane(groundHalfSize, groundHalfSize)),
		Material:  materials.Add(render.StandardMaterial{BaseColor: groundColor}),
		Transform: render.FromXYZ(0, 0, 0),
	})

	start := time.Now()
	tiles := b.RenderBoardTiles(meshes, materials)
	opts.Metrics.ObservePass(len(tiles), time.Since(start))

	for _, p := range tiles {
		s.SpawnPrimitive(p)
	}

	s.SpawnLight(PointLight{Intensity: defaultLightIntensity, Range: defaultLightRange}, lightPosition)

	span.SetAttributes(
		attribute.String("board.map", b.Map().Name()),
		attribute.Int("board.width", b.Width()),
		attribute.Int("board.height", b.Height()),
		attribute.Int("scene.entities", len(s.entities)),
	)
	logging.GetSceneLogger().Debug("Сцена собрана: %d сущностей, %d клеток", len(s.entities), len(tiles))

	return s, nil
}
