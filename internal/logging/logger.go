package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает имя уровня ("debug", "INFO", ...).
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("неизвестный уровень логирования %q", name)
	}
}

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case TRACE:
		return logrus.TraceLevel
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Logger представляет логгер отдельного компонента
type Logger struct {
	base  *logrus.Logger
	entry *logrus.Entry
	file  *os.File
}

// NewLogger создаёт логгер компонента, пишущий в stdout.
// Уровень и формат берутся из LOG_LEVEL и LOG_FORMAT ("text" по умолчанию, "json").
func NewLogger(component string) (*Logger, error) {
	return newLogger(component, os.Stdout, nil)
}

// NewFileLogger создаёт логгер, дублирующий вывод в файл внутри dir.
func NewFileLogger(component, dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.log", component, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	return newLogger(component, io.MultiWriter(os.Stdout, file), file)
}

// NewWriterLogger создаёт логгер поверх произвольного writer (используется в тестах).
func NewWriterLogger(component string, w io.Writer) *Logger {
	l, _ := newLogger(component, w, nil)
	return l
}

func newLogger(component string, out io.Writer, file *os.File) (*Logger, error) {
	base := logrus.New()
	base.SetOutput(out)

	level, err := ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = INFO
	}
	base.SetLevel(level.logrusLevel())

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{
		base:  base,
		entry: base.WithField("component", component),
		file:  file,
	}, nil
}

// SetLevel меняет минимальный уровень вывода
func (l *Logger) SetLevel(level LogLevel) {
	l.base.SetLevel(level.logrusLevel())
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Trace(format string, args ...interface{}) { l.entry.Tracef(format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Глобальный экземпляр логгера. До InitDefaultLogger пишет в stdout уровнем INFO.
var defaultLogger = NewWriterLogger("default", os.Stdout)

// InitDefaultLogger инициализирует глобальный логгер для компонента.
// Если dir не пуст, вывод дублируется в файл внутри dir.
func InitDefaultLogger(component, dir string) error {
	var (
		logger *Logger
		err    error
	)
	if dir != "" {
		logger, err = NewFileLogger(component, dir)
	} else {
		logger, err = NewLogger(component)
	}
	if err != nil {
		return err
	}
	defaultLogger = logger
	return nil
}

// CloseDefaultLogger закрывает глобальный логгер
func CloseDefaultLogger() {
	if defaultLogger != nil {
		_ = defaultLogger.Close()
	}
}

// SetDefaultLevel меняет уровень глобального логгера
func SetDefaultLevel(level LogLevel) {
	defaultLogger.SetLevel(level)
}

// Trace логирует сообщение уровня TRACE
func Trace(format string, args ...interface{}) { defaultLogger.Trace(format, args...) }

// Debug логирует сообщение уровня DEBUG
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }

// Info логирует сообщение уровня INFO
func Info(format string, args ...interface{}) { defaultLogger.Info(format, args...) }

// Warn логирует сообщение уровня WARN
func Warn(format string, args ...interface{}) { defaultLogger.Warn(format, args...) }

// Error логирует сообщение уровня ERROR
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
