package logging

import (
	"fmt"
	"sort"
	"sync"
)

// LoggerManager управляет множественными логгерами для разных компонентов.
// Уровень и каталог файлов, заданные менеджеру, применяются и к логгерам,
// которые будут созданы позже.
type LoggerManager struct {
	mu       sync.RWMutex
	loggers  map[string]*Logger
	level    LogLevel
	hasLevel bool
	dir      string
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = NewLoggerManager()
	})
	return globalManager
}

// NewLoggerManager создаёт пустой менеджер
func NewLoggerManager() *LoggerManager {
	return &LoggerManager{
		loggers: make(map[string]*Logger),
	}
}

// SetDir включает запись логов новых компонентов в файлы каталога dir.
// Пустая строка возвращает вывод только в stdout.
func (lm *LoggerManager) SetDir(dir string) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	lm.dir = dir
}

// GetLogger возвращает логгер для компонента, создавая его при необходимости
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.RLock()
	if logger, exists := lm.loggers[component]; exists {
		lm.mu.RUnlock()
		return logger, nil
	}
	lm.mu.RUnlock()

	lm.mu.Lock()
	defer lm.mu.Unlock()

	// Проверяем еще раз на случай race condition
	if logger, exists := lm.loggers[component]; exists {
		return logger, nil
	}

	var (
		logger *Logger
		err    error
	)
	if lm.dir != "" {
		logger, err = NewFileLogger(component, lm.dir)
	} else {
		logger, err = NewLogger(component)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create logger for %s: %w", component, err)
	}

	if lm.hasLevel {
		logger.SetLevel(lm.level)
	}

	lm.loggers[component] = logger
	return logger, nil
}

// MustGetLogger возвращает логгер или глобальный логгер при ошибке
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	logger, err := lm.GetLogger(component)
	if err != nil {
		return defaultLogger
	}
	return logger
}

// CloseAll закрывает все логгеры
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var lastErr error
	for component, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close logger for %s: %w", component, err)
		}
	}

	lm.loggers = make(map[string]*Logger)
	return lastErr
}

// ListComponents возвращает отсортированный список зарегистрированных компонентов
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// SetLogLevel устанавливает уровень логирования для компонента, создавая логгер при необходимости
func (lm *LoggerManager) SetLogLevel(component string, level LogLevel) error {
	logger, err := lm.GetLogger(component)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

// SetAllLevels устанавливает уровень всем логгерам, включая создаваемые позже
func (lm *LoggerManager) SetAllLevels(level LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.level = level
	lm.hasLevel = true
	for _, logger := range lm.loggers {
		logger.SetLevel(level)
	}
}

// Удобные функции для получения логгеров
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetBoardLogger() *Logger {
	return GetComponentLogger("board")
}

func GetMapsLogger() *Logger {
	return GetComponentLogger("maps")
}

func GetSceneLogger() *Logger {
	return GetComponentLogger("scene")
}
