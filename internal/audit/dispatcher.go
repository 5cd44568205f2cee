package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	ProfessionalID uint
	ActorID        *uint
	ActorRole      string
	Action         string
	Entity         string
	EntityID       *uint
	Metadata       any
}

// Dispatcher grava eventos de auditoria em background. Nunca bloqueia a
// requisição: com a fila cheia o evento é descartado.
type Dispatcher struct {
	logger *Logger
	log    *slog.Logger
	queue  chan Event
	wg     sync.WaitGroup

	// closed protege o envio contra a fila já fechada
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error("audit write failed",
				slog.String("action", ev.Action),
				slog.Any("error", err),
			)
		}
	}
}

// Dispatch aceita receiver nil (auditoria desligada).
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", slog.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close drena a fila e espera o worker terminar. Eventos despachados
// depois disso são descartados.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
