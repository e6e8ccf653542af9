package kafka

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/DRSN-tech/watch-store/internal/usecase"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/jitter"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
)

const outboxChannel = "outbox_pending"

var errRejected = errors.New("event rejected by kafka")

// OutboxWorker переносит события из таблицы outbox_events в Kafka.
// Будится через LISTEN/NOTIFY, а при тишине в канале раз в listenTimeout проверяет таблицу сам.
type OutboxWorker struct {
	repo          usecase.OutboxRepository
	logger        logger.Logger
	producer      usecase.MessageProducer
	stop          chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
	dbConnStr     string
	batchSize     int
	listenTimeout time.Duration
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
	batchSize int,
	listenTimeout time.Duration,
) *OutboxWorker {
	if batchSize <= 0 {
		batchSize = 10
	}
	if listenTimeout <= 0 {
		listenTimeout = 30 * time.Second
	}

	return &OutboxWorker{
		repo:          repo,
		logger:        logger,
		producer:      producer,
		stop:          make(chan struct{}),
		dbConnStr:     dbConnStr,
		batchSize:     batchSize,
		listenTimeout: listenTimeout,
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		select {
		case <-w.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		defer w.wg.Done()
		defer cancel()

		// Обрабатываем "остатки" при старте
		w.logger.Infof("Draining pending outbox events on startup...")
		w.drain(ctx)

		w.listenOutboxNotifications(ctx)
	}()
}

func (w *OutboxWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	var conn *pgx.Conn

	connect := func() error {
		c, err := pgx.Connect(ctx, w.dbConnStr)
		if err != nil {
			return e.Wrap("failed to connect for LISTEN", err)
		}

		if _, err := c.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
			_ = c.Close(ctx)
			return e.Wrap("failed to LISTEN", err)
		}

		conn = c
		w.logger.Infof("Subscribed to '%s' channel", outboxChannel)
		return nil
	}

	defer func() {
		if conn != nil {
			_ = conn.Close(context.Background())
		}
	}()

	for attempt := 0; ; attempt++ {
		if conn == nil {
			if err := connect(); err != nil {
				w.logger.Warnf("LISTEN connect failed: %v", err)
				if !w.sleep(ctx, jitter.ExponentialBackoff(time.Second, 30*time.Second, attempt, jitter.DefaultJitter)) {
					return
				}
				continue
			}
			attempt = 0
		}

		waitCtx, cancel := context.WithTimeout(ctx, w.listenTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if ctx.Err() != nil {
			w.logger.Infof("Outbox worker stopped")
			return
		}

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				// Тишина в канале: проверяем таблицу на случай потерянного уведомления
				w.drain(ctx)
				continue
			}
			w.logger.Warnf("Connection lost: %v. Reconnecting...", err)
			_ = conn.Close(ctx)
			conn = nil
			continue
		}

		if notif != nil && notif.Channel == outboxChannel {
			w.logger.Debugf("Received outbox notification, draining outbox events")
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

// drain обрабатывает пачки, пока в таблице есть ожидающие события.
func (w *OutboxWorker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

// processBatch возвращает true, если следующая пачка может быть непустой.
// Пачка, в которой ни одно событие не покинуло очередь, останавливает дренирование.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.batchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	// done: события, покинувшие очередь (отправленные или отклонённые)
	done := 0
	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			if errors.Is(err, errRejected) {
				w.logger.Errorf(err, "event %s (%s) rejected, marked as failed", event.EventID, event.EventType)
				if err := w.repo.MarkAsFailed(context.WithoutCancel(ctx), event.ID); err != nil {
					w.logger.Warnf("mark as failed: %v", err)
				}
				done++
				continue
			}

			w.logger.Warnf("event %s (%s) not sent: %v", event.EventID, event.EventType, err)
			if err := w.repo.MarkAsPending(context.WithoutCancel(ctx), event.ID); err != nil {
				w.logger.Warnf("release event failed: %v", err)
			}
			continue
		}

		done++
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return done > 0 && len(events) == w.batchSize, nil
}

// processEvent возвращает ошибку с errRejected, если повторная отправка не поможет.
func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	req := usecase.NewWriteRawMessageReq(strconv.FormatInt(event.AggregateID, 10), event.Payload, map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.EventType),
	})
	if err := w.producer.WriteRawMessage(ctx, req); err != nil {
		if isPermanentError(err) {
			return fmt.Errorf("%w: %w", errRejected, err)
		}
		return e.Wrap("Temporary Kafka failure, will retry", err)
	}
	return nil
}

// isPermanentError: брокер ответил кодом, который не исправится повтором
// (слишком большое сообщение, нет прав на топик). Сетевые ошибки считаются временными.
func isPermanentError(err error) bool {
	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		permanent := false
		for _, we := range writeErrs {
			if we == nil {
				continue
			}
			if !isPermanentError(we) {
				return false
			}
			permanent = true
		}
		return permanent
	}

	var kafkaErr kafka.Error
	return errors.As(err, &kafkaErr) && !kafkaErr.Temporary()
}

