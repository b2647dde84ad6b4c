package render

import "math"

// Color представляет цвет поверхности в нормализованном sRGB (0..1)
type Color struct {
	R, G, B, A float64
}

// SRGB создаёт непрозрачный цвет из нормализованных компонент
func SRGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// SRGBU8 создаёт непрозрачный цвет из 8-битных компонент
func SRGBU8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// RGB8 возвращает 8-битные компоненты цвета (с округлением и обрезкой диапазона)
func (c Color) RGB8() (r, g, b uint8) {
	return toU8(c.R), toU8(c.G), toU8(c.B)
}

// Hex возвращает цвет в формате 0xRRGGBB
func (c Color) Hex() uint32 {
	r, g, b := c.RGB8()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func toU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
