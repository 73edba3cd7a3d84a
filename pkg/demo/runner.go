package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amirkhaki/ptrdemo/pkg/config"
	"github.com/amirkhaki/ptrdemo/pkg/mem"
	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

// Runner runs demos one after another. Each demo gets a fresh heap, and
// the heap must be empty when the demo returns.
type Runner struct {
	Out    io.Writer
	Config *config.Config
	Sink   trace.Sink
	Logger *zap.Logger
}

// Run runs the demos in order and stops at the first one that fails or
// leaves an allocation behind. It does not finalize the sink.
func (r *Runner) Run(demos []Demo) error {
	cfg := r.Config
	if cfg == nil {
		cfg = config.Default()
	}
	sink := r.Sink
	if sink == nil {
		sink = trace.Discard
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run", uuid.NewString()))

	for _, d := range demos {
		log := logger.With(zap.String("demo", d.Name))
		log.Debug("starting demo")

		sink.OnEvent(trace.Event{Demo: d.Name, Kind: trace.KindBegin, Index: trace.NoIndex, Value: d.Title})
		heap := mem.NewHeap(d.Name, sink)
		env := &Env{Out: r.Out, Heap: heap, Config: cfg}

		if err := errors.Join(d.Run(env), heap.Close()); err != nil {
			log.Error("demo failed", zap.Error(err))
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
		sink.OnEvent(trace.Event{Demo: d.Name, Kind: trace.KindEnd, Index: trace.NoIndex})

		log.Debug("finished demo")
	}
	return nil
}
