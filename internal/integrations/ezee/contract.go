package ezee

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик запросов к PMS
type MetricsRecorder interface {
	RecordUpstream(upstream, operation, outcome string, seconds float64)
}
