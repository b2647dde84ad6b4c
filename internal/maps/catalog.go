package maps

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/annel0/maleghast-vtt/internal/board"
	"github.com/annel0/maleghast-vtt/internal/logging"
)

var (
	// ErrMapNotFound возвращается, если карты с таким именем нет в каталоге
	ErrMapNotFound = errors.New("maps: map not found")
	// ErrDuplicateMap возвращается, если имя карты встречается дважды
	ErrDuplicateMap = errors.New("maps: duplicate map name")
)

// catalogFile формат YAML-файла каталога
type catalogFile struct {
	Maps []mapEntry `yaml:"maps"`
}

type mapEntry struct {
	Name        string   `yaml:"name"`
	FlavorText  string   `yaml:"flavor_text"`
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
}

// Catalog хранит набор авторских карт по имени
type Catalog struct {
	maps  map[string]*board.GameMap
	names []string
}

// LoadCatalog читает каталог карт из YAML-файла
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maps: read %s: %w", path, err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", path, err)
	}

	logging.GetMapsLogger().Info("Загружено карт из %s: %d", path, len(c.names))
	return c, nil
}

// ParseCatalog разбирает YAML-описание каталога.
// Строки карты записываются символами легенды (см. board.TileType.Glyph).
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{maps: make(map[string]*board.GameMap, len(file.Maps))}
	for i, entry := range file.Maps {
		if entry.Name == "" {
			return nil, fmt.Errorf("map #%d: empty name", i)
		}
		if _, exists := c.maps[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMap, entry.Name)
		}

		tiles, err := parseRows(entry.Rows)
		if err != nil {
			return nil, fmt.Errorf("map %q: %w", entry.Name, err)
		}

		m, err := board.NewGameMap(entry.Name, tiles, entry.FlavorText, entry.Description)
		if err != nil {
			return nil, err
		}

		c.maps[entry.Name] = m
		c.names = append(c.names, entry.Name)
	}

	return c, nil
}

func parseRows(rows []string) ([][]board.TileType, error) {
	tiles := make([][]board.TileType, 0, len(rows))
	for y, row := range rows {
		line := make([]board.TileType, 0, len(row))
		x := 0
		for _, r := range row {
			t, err := board.ParseGlyph(r)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", y, x, err)
			}
			line = append(line, t)
			x++
		}
		tiles = append(tiles, line)
	}
	return tiles, nil
}

// Lookup возвращает карту по имени
func (c *Catalog) Lookup(name string) (*board.GameMap, error) {
	m, ok := c.maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrMapNotFound, name, strings.Join(c.Names(), ", "))
	}
	return m, nil
}

// Names возвращает имена карт в порядке объявления в файле
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len возвращает число карт
func (c *Catalog) Len() int {
	return len(c.names)
}

// FileSource загружает карту из YAML-каталога.
// Пустое Name означает первую карту файла.
type FileSource struct {
	Path string
	Name string
}

// GameMap реализует board.MapSource
func (s FileSource) GameMap() (*board.GameMap, error) {
	c, err := LoadCatalog(s.Path)
	if err != nil {
		return nil, err
	}

	name := s.Name
	if name == "" {
		if c.Len() == 0 {
			return nil, fmt.Errorf("%w: catalog %s is empty", ErrMapNotFound, s.Path)
		}
		name = c.names[0]
	}
	return c.Lookup(name)
}

// Resolve выбирает источник карты: файл каталога, если путь задан, иначе встроенную карту.
func Resolve(path, name string) board.MapSource {
	if path == "" {
		return Builtin{}
	}
	return FileSource{Path: path, Name: name}
}
