package render

import "github.com/annel0/maleghast-vtt/internal/vec"

// ShapeKind определяет вид примитива
type ShapeKind uint8

const (
	ShapeCuboid ShapeKind = iota
	ShapePlane
)

// String возвращает имя вида примитива
func (k ShapeKind) String() string {
	switch k {
	case ShapeCuboid:
		return "cuboid"
	case ShapePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Mesh описывает геометрию примитива без привязки к движку.
// Для кубоида Size хранит полные размеры по осям, для плоскости:
// половинные размеры по X и Y (Z всегда 0, нормаль +Z).
type Mesh struct {
	Shape ShapeKind
	Size  vec.Vec3Float
}

// Cuboid создаёт прямоугольный параллелепипед
func Cuboid(x, y, z float64) Mesh {
	return Mesh{Shape: ShapeCuboid, Size: vec.Vec3Float{X: x, Y: y, Z: z}}
}

// Plane создаёт плоскость с нормалью +Z и заданными половинными размерами
func Plane(halfX, halfY float64) Mesh {
	return Mesh{Shape: ShapePlane, Size: vec.Vec3Float{X: halfX, Y: halfY}}
}

// Height возвращает высоту примитива по оси Z
func (m Mesh) Height() float64 {
	return m.Size.Z
}

// StandardMaterial описывает материал поверхности
type StandardMaterial struct {
	BaseColor Color
}

// Transform описывает размещение примитива в мире
type Transform struct {
	Translation vec.Vec3Float
}

// FromXYZ создаёт Transform со смещением
func FromXYZ(x, y, z float64) Transform {
	return Transform{Translation: vec.Vec3Float{X: x, Y: y, Z: z}}
}

// Primitive отрисовываемый примитив: геометрия, материал и размещение
type Primitive struct {
	Mesh      Handle[Mesh]
	Material  Handle[StandardMaterial]
	Transform Transform
}
