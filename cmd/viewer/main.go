package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/maleghast-vtt/internal/board"
	"github.com/annel0/maleghast-vtt/internal/config"
	"github.com/annel0/maleghast-vtt/internal/logging"
	"github.com/annel0/maleghast-vtt/internal/maps"
	"github.com/annel0/maleghast-vtt/internal/observability"
	"github.com/annel0/maleghast-vtt/internal/render"
	"github.com/annel0/maleghast-vtt/internal/scene"
	"github.com/annel0/maleghast-vtt/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $GAME_CONFIG)")
	mapFile := flag.String("map-file", "", "YAML каталог карт (перекрывает board.map_file)")
	mapName := flag.String("map", "", "имя карты в каталоге (перекрывает board.map_name)")
	listMaps := flag.Bool("list-maps", false, "вывести имена карт каталога и выйти")
	legend := flag.Bool("legend", true, "печатать легенду и описание карты")
	serve := flag.Bool("serve", false, "не завершаться: держать /metrics до сигнала")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if *mapFile != "" {
		cfg.Board.MapFile = *mapFile
	}
	if *mapName != "" {
		cfg.Board.MapName = *mapName
	}

	if err := logging.InitDefaultLogger("viewer", cfg.Logging.Dir); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer func() {
		if err := logging.GetLoggerManager().CloseAll(); err != nil {
			log.Printf("Ошибка закрытия логгеров: %v", err)
		}
	}()

	opts := runOptions{legend: *legend, serve: *serve, listMaps: *listMaps}
	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		logging.Error("❌ %v", err)
		os.Exit(1)
	}
}

type runOptions struct {
	legend   bool
	serve    bool
	listMaps bool
}

// configureLogging применяет уровни из конфигурации к глобальному логгеру и компонентам
func configureLogging(lm *logging.LoggerManager, cfg config.LoggingConfig) {
	lm.SetDir(cfg.Dir)

	if level, err := logging.ParseLevel(cfg.Level); err != nil {
		logging.Warn("%v, используется INFO", err)
	} else {
		logging.SetDefaultLevel(level)
		lm.SetAllLevels(level)
	}

	for component, name := range cfg.Components {
		level, err := logging.ParseLevel(name)
		if err != nil {
			logging.Warn("Компонент %s: %v", component, err)
			continue
		}
		if err := lm.SetLogLevel(component, level); err != nil {
			logging.Warn("Компонент %s: %v", component, err)
		}
	}
}

func listCatalog(path string, out io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(out, maps.Map1Name)
		return err
	}
	c, err := maps.LoadCatalog(path)
	if err != nil {
		return err
	}
	for _, name := range c.Names() {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, opts runOptions, out io.Writer) error {
	lm := logging.GetLoggerManager()
	configureLogging(lm, cfg.Logging)
	defer func() {
		logging.Debug("Активные логгеры: %v", lm.ListComponents())
	}()

	if opts.listMaps {
		return listCatalog(cfg.Board.MapFile, out)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logging.Warn("Ошибка остановки OpenTelemetry: %v", err)
			}
		}()
	}

	var metrics *render.Metrics
	if cfg.Metrics.Enabled {
		metrics = render.NewMetrics(prometheus.DefaultRegisterer)
		addr := cfg.Metrics.MetricsAddr()
		go func() {
			logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
			if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
			}
		}()
	}

	b, err := board.New(maps.Resolve(cfg.Board.MapFile, cfg.Board.MapName))
	if err != nil {
		return err
	}
	logging.Info("🗺️  Карта %q: %dx%d", b.Map().Name(), b.Width(), b.Height())

	alloc := render.NewAllocators(metrics, cfg.Render.DedupeAssets)

	start := time.Now()
	sc, err := scene.Compose(ctx, b, alloc.Meshes, alloc.Materials, scene.Options{Metrics: metrics})
	if err != nil {
		return fmt.Errorf("compose scene: %w", err)
	}
	logging.Info("✅ Сцена: %d сущностей (%d мешей, %d материалов) за %v",
		len(sc.Entities()), alloc.MeshAssets.Len(), alloc.MaterialAssets.Len(), time.Since(start))
	if alloc.Deduplicated() {
		uniqueMeshes, uniqueMaterials := alloc.CacheSizes()
		logging.Debug("Кеш ассетов: %d уникальных мешей, %d уникальных материалов", uniqueMeshes, uniqueMaterials)
	}

	if _, err := io.WriteString(out, terminal.Render(b, terminal.Options{
		ANSIColor: cfg.Render.ANSIColor,
		Legend:    opts.legend,
	})); err != nil {
		return err
	}

	if opts.serve {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		logging.Debug("Ожидание сигналов завершения...")
		select {
		case sig := <-sigCh:
			logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
		case <-ctx.Done():
		}
	}
	return nil
}
