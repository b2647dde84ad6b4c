package vec

// Vec2 представляет 2D координаты клетки на поле
type Vec2 struct {
	X, Y int
}
