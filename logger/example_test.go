package logger_test

import (
	"os"

	"github.com/mvincent/patlog/formatter"
	"github.com/mvincent/patlog/handler"
	"github.com/mvincent/patlog/logger"
)

func Example() {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewPatternFormatter("[%p] [%c] %m%n"),
	})

	lg := logger.NewBuilder().
		WithName("app").
		WithLevel(logger.InfoLevel).
		WithHandler(h).
		Build()

	lg.Debugf("not shown, below threshold")
	lg.Infof("started with %d workers", 4)

	s := lg.At(logger.WarnLevel)
	defer s.End()
	s.AppendString("shutting down")

	// Output:
	// [INFO] [app] started with 4 workers
	// [WARN] [app] shutting down
}
