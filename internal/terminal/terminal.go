package terminal

import (
	"fmt"
	"strings"

	"github.com/annel0/maleghast-vtt/internal/board"
)

// OccupiedGlyph рисуется на занятых клетках
const OccupiedGlyph = '@'

const ansiReset = "\x1b[0m"

// Options настраивает текстовый вывод
type Options struct {
	ANSIColor bool // 24-битный цвет символа по цвету клетки
	Legend    bool // добавить легенду и описание карты
}

// Render возвращает текстовое представление поля: строка на ряд, символ на клетку
func Render(b *board.Board, opts Options) string {
	var sb strings.Builder

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			s, _ := b.TileStack(x, y)
			bt := s.BoardTile()

			glyph := bt.TileType().Glyph()
			if s.GameTile().IsOccupied() {
				glyph = OccupiedGlyph
			}

			if opts.ANSIColor {
				r, g, bl := bt.Attributes().Color.RGB8()
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm%c%s", r, g, bl, glyph, ansiReset)
			} else {
				sb.WriteRune(glyph)
			}
		}
		sb.WriteByte('\n')
	}

	if opts.Legend {
		writeLegend(&sb, b)
	}
	return sb.String()
}

func writeLegend(sb *strings.Builder, b *board.Board) {
	m := b.Map()
	fmt.Fprintf(sb, "\n%s (%dx%d)\n", m.Name(), b.Width(), b.Height())
	if m.FlavorText() != "" {
		fmt.Fprintf(sb, "%s\n", m.FlavorText())
	}
	if m.Description() != "" {
		fmt.Fprintf(sb, "%s\n", m.Description())
	}
	for _, t := range board.TileTypes() {
		fmt.Fprintf(sb, "  %c %-14s h=%.2f #%06X\n", t.Glyph(), t, t.Attributes().Height, t.Attributes().Color.Hex())
	}
	fmt.Fprintf(sb, "  %c %s\n", OccupiedGlyph, "occupied")
}
