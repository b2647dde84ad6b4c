package render

// Allocators собирает цепочку аллокаторов для прохода отрисовки:
// хранилище -> счётчик метрик -> (опционально) дедупликация.
// Метрики стоят под кешем, поэтому считают только реальные регистрации.
type Allocators struct {
	MeshAssets     *Assets[Mesh]
	MaterialAssets *Assets[StandardMaterial]
	Meshes         MeshAllocator
	Materials      MaterialAllocator

	meshDedup     *Dedup[Mesh]
	materialDedup *Dedup[StandardMaterial]
}

// NewAllocators создаёт хранилища ассетов. metrics может быть nil.
func NewAllocators(metrics *Metrics, dedupe bool) *Allocators {
	a := &Allocators{
		MeshAssets:     NewAssets[Mesh](),
		MaterialAssets: NewAssets[StandardMaterial](),
	}

	a.Meshes = metrics.Meshes(a.MeshAssets)
	a.Materials = metrics.Materials(a.MaterialAssets)

	if dedupe {
		a.meshDedup = NewDedup[Mesh](a.Meshes)
		a.materialDedup = NewDedup[StandardMaterial](a.Materials)
		a.Meshes = a.meshDedup
		a.Materials = a.materialDedup
	}
	return a
}

// Deduplicated возвращает true, если одинаковые ассеты переиспользуются
func (a *Allocators) Deduplicated() bool {
	return a.meshDedup != nil
}

// CacheSizes возвращает число уникальных мешей и материалов в кеше (0, 0 без дедупликации)
func (a *Allocators) CacheSizes() (meshes, materials int) {
	if a.meshDedup == nil {
		return 0, 0
	}
	return a.meshDedup.Size(), a.materialDedup.Size()
}
