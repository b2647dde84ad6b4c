package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics инкапсулирует Prometheus-метрики прохода отрисовки поля.
// Нулевой указатель допустим: методы тогда ничего не считают.
type Metrics struct {
	meshes       prometheus.Counter
	materials    prometheus.Counter
	primitives   prometheus.Counter
	passDuration prometheus.Histogram
}

// NewMetrics создаёт метрики и регистрирует их в reg (если reg != nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		meshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "board",
			Subsystem: "render",
			Name:      "meshes_allocated_total",
			Help:      "Общее число зарегистрированных мешей.",
		}),
		materials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "board",
			Subsystem: "render",
			Name:      "materials_allocated_total",
			Help:      "Общее число зарегистрированных материалов.",
		}),
		primitives: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "board",
			Subsystem: "render",
			Name:      "primitives_total",
			Help:      "Число примитивов, выданных проходами отрисовки.",
		}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "board",
			Subsystem: "render",
			Name:      "pass_duration_seconds",
			Help:      "Длительность прохода отрисовки поля.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.meshes, m.materials, m.primitives, m.passDuration)
	}
	return m
}

// Meshes оборачивает аллокатор мешей счётчиком
func (m *Metrics) Meshes(next MeshAllocator) MeshAllocator {
	if m == nil {
		return next
	}
	return &counting[Mesh]{next: next, counter: m.meshes}
}

// Materials оборачивает аллокатор материалов счётчиком
func (m *Metrics) Materials(next MaterialAllocator) MaterialAllocator {
	if m == nil {
		return next
	}
	return &counting[StandardMaterial]{next: next, counter: m.materials}
}

// ObservePass учитывает завершённый проход отрисовки
func (m *Metrics) ObservePass(primitives int, d time.Duration) {
	if m == nil {
		return
	}
	m.primitives.Add(float64(primitives))
	m.passDuration.Observe(d.Seconds())
}

type counting[T any] struct {
	next    Allocator[T]
	counter prometheus.Counter
}

func (c *counting[T]) Add(asset T) Handle[T] {
	c.counter.Inc()
	return c.next.Add(asset)
}
