package render

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle ссылается на ассет, зарегистрированный в Assets
type Handle[T any] struct {
	id uuid.UUID
}

// ID возвращает идентификатор ассета
func (h Handle[T]) ID() uuid.UUID {
	return h.id
}

// IsZero возвращает true для пустой ссылки
func (h Handle[T]) IsZero() bool {
	return h.id == uuid.Nil
}

// String возвращает идентификатор в текстовом виде
func (h Handle[T]) String() string {
	return h.id.String()
}

// Allocator регистрирует ассеты и выдаёт ссылки на них
type Allocator[T any] interface {
	Add(asset T) Handle[T]
}

// MeshAllocator регистрирует геометрию
type MeshAllocator = Allocator[Mesh]

// MaterialAllocator регистрирует материалы
type MaterialAllocator = Allocator[StandardMaterial]

// Assets хранит ассеты одного типа в порядке регистрации.
// Не потокобезопасен: вызывающий код владеет им эксклюзивно на время прохода отрисовки.
type Assets[T any] struct {
	items map[uuid.UUID]T
	order []uuid.UUID
}

// NewAssets создаёт пустое хранилище
func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{
		items: make(map[uuid.UUID]T),
	}
}

// Add регистрирует ассет и возвращает новую ссылку на него
func (a *Assets[T]) Add(asset T) Handle[T] {
	id := uuid.New()
	a.items[id] = asset
	a.order = append(a.order, id)
	return Handle[T]{id: id}
}

// Get возвращает ассет по ссылке
func (a *Assets[T]) Get(h Handle[T]) (T, bool) {
	asset, ok := a.items[h.id]
	return asset, ok
}

// MustGet возвращает ассет или паникует, если ссылка чужая
func (a *Assets[T]) MustGet(h Handle[T]) T {
	asset, ok := a.items[h.id]
	if !ok {
		panic(fmt.Sprintf("render: ассет %s не найден", h.id))
	}
	return asset
}

// Len возвращает количество зарегистрированных ассетов
func (a *Assets[T]) Len() int {
	return len(a.order)
}

// Dedup переиспользует ссылку для одинаковых по значению ассетов.
// Отключён по умолчанию: каждая клетка получает собственный ассет.
type Dedup[T comparable] struct {
	next  Allocator[T]
	cache map[T]Handle[T]
}

// NewDedup оборачивает аллокатор кешем по значению ассета
func NewDedup[T comparable](next Allocator[T]) *Dedup[T] {
	return &Dedup[T]{
		next:  next,
		cache: make(map[T]Handle[T]),
	}
}

// Add возвращает ранее выданную ссылку или регистрирует ассет
func (d *Dedup[T]) Add(asset T) Handle[T] {
	if h, ok := d.cache[asset]; ok {
		return h
	}
	h := d.next.Add(asset)
	d.cache[asset] = h
	return h
}

// Size возвращает количество уникальных ассетов в кеше
func (d *Dedup[T]) Size() int {
	return len(d.cache)
}
