package vec

// Vec3Float представляет трехмерный вектор с плавающими координатами
type Vec3Float struct {
	X float64
	Y float64
	Z float64
}

// FromVec2 создает Vec3Float из клетки поля, используя заданную Z координату
func FromVec2(v Vec2, z float64) Vec3Float {
	return Vec3Float{
		X: float64(v.X),
		Y: float64(v.Y),
		Z: z,
	}
}

// Sub вычитает вектор
func (v Vec3Float) Sub(other Vec3Float) Vec3Float {
	return Vec3Float{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}
