package reminder

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

var tracer = otel.Tracer("reminder_usecase")

// Dispatcher holds one pending timer per interview and mails the reminder
// when it fires. Pending timers live in memory only and are lost on restart.
type Dispatcher struct {
	mailer service.Mailer
	to     string
	logger logger.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending map[string]*pendingReminder
	wg      sync.WaitGroup
}

type pendingReminder struct {
	timer *time.Timer
}

func NewDispatcher(m service.Mailer, to string, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:  m,
		to:      to,
		logger:  log,
		now:     time.Now,
		pending: make(map[string]*pendingReminder),
	}
}

// Schedule arms a timer for r. An overdue reminder fires immediately. A new
// reminder for the same interview replaces the pending one.
func (d *Dispatcher) Schedule(ctx context.Context, r interview.Reminder) error {
	_, span := tracer.Start(ctx, "Schedule")
	defer span.End()

	delay := r.RemindAt.Sub(d.now())
	if delay < 0 {
		delay = 0
	}
	span.SetAttributes(attribute.String("interview_id", r.InterviewID), attribute.Int64("delay_ms", delay.Milliseconds()))

	d.mu.Lock()
	defer d.mu.Unlock()

	if old, ok := d.pending[r.InterviewID]; ok && old.timer.Stop() {
		d.wg.Done()
	}

	p := &pendingReminder{}
	d.wg.Add(1)
	p.timer = time.AfterFunc(delay, func() {
		defer d.wg.Done()
		d.fire(r, p)
	})
	d.pending[r.InterviewID] = p

	d.logger.Info("Reminder scheduled",
		zap.String("interview_id", r.InterviewID),
		zap.Time("remind_at", r.RemindAt),
		zap.Duration("in", delay),
	)
	return nil
}

func (d *Dispatcher) fire(r interview.Reminder, p *pendingReminder) {
	d.mu.Lock()
	if d.pending[r.InterviewID] == p {
		delete(d.pending, r.InterviewID)
	}
	d.mu.Unlock()

	ctx, span := tracer.Start(context.Background(), "Deliver")
	defer span.End()

	if err := d.mailer.Send(ctx, d.to, r.Subject(), r.Body()); err != nil {
		span.RecordError(err)
		d.logger.Error("Failed to deliver reminder", err, zap.String("interview_id", r.InterviewID))
		return
	}
	d.logger.Info("Reminder delivered", zap.String("interview_id", r.InterviewID))
}

func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every pending timer and waits for reminders already firing.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	for id, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, id)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
