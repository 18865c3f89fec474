package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"agrivision/internal/models"
	"agrivision/internal/mq"
	"agrivision/internal/repository"

	"github.com/streadway/amqp"
)

// AggregationWorker consumes activity-created events and folds approved
// activities into user credit totals. Delivery is at-least-once: a failed
// apply is requeued once, then dropped and left to the reconciliation sweep.
// The transactional apply keyed by activity id makes redelivery harmless.
type AggregationWorker struct {
	aggRepo      repository.AggregationRepository
	activityRepo repository.ActivityRepository
	publisher    mq.ActivityPublisher

	amqpURL string
	conn    *amqp.Connection
	channel *amqp.Channel

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.RWMutex

	// Reconciliation: approved activities still unaggregated past the grace
	// window get republished. This also routes admin-approved records through
	// the same aggregation entry point as automated submissions.
	sweepInterval time.Duration
	sweepGrace    time.Duration
	sweepBatch    int
}

func NewAggregationWorker(
	aggRepo repository.AggregationRepository,
	activityRepo repository.ActivityRepository,
	publisher mq.ActivityPublisher,
	amqpURL string,
) *AggregationWorker {
	return &AggregationWorker{
		aggRepo:       aggRepo,
		activityRepo:  activityRepo,
		publisher:     publisher,
		amqpURL:       amqpURL,
		stopChan:      make(chan struct{}),
		sweepInterval: 5 * time.Minute,
		sweepGrace:    2 * time.Minute,
		sweepBatch:    50,
	}
}

func (w *AggregationWorker) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.setupConsumer(); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}

	w.wg.Add(1)
	go w.sweepRoutine()

	return nil
}

func (w *AggregationWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	if w.channel != nil {
		w.channel.Close()
	}
	if w.conn != nil {
		w.conn.Close()
	}

	close(w.stopChan)
	w.wg.Wait()
}

func (w *AggregationWorker) setupConsumer() error {
	var err error
	w.conn, err = amqp.Dial(w.amqpURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	w.channel, err = w.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = w.channel.QueueDeclare(
		mq.ActivityQueue, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	msgs, err := w.channel.Consume(
		mq.ActivityQueue,      // queue
		"aggregation_worker",  // consumer
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	w.wg.Add(1)
	go w.handleDeliveries(msgs)

	return nil
}

func (w *AggregationWorker) handleDeliveries(msgs <-chan amqp.Delivery) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			var event models.ActivityEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				log.Printf("Dropping malformed activity event: %v", err)
				msg.Nack(false, false)
				continue
			}

			if err := w.Process(event); err != nil {
				// One immediate retry per event. A second failure usually
				// needs state that does not exist yet (a missing profile
				// row), so park it for the reconciliation sweep instead of
				// hot-looping on redelivery.
				if msg.Redelivered {
					log.Printf("Aggregation failed again for activity %d, deferring to sweep: %v", event.ActivityID, err)
					msg.Nack(false, false)
					continue
				}
				log.Printf("Aggregation failed for activity %d, requeueing: %v", event.ActivityID, err)
				msg.Nack(false, true)
				continue
			}

			_ = msg.Ack(false)
		}
	}
}

// Process applies one event. A nil return means the delivery is settled:
// either the credits were applied, the event was a redelivery, or the record
// is not aggregatable and there is nothing to do. An error means the whole
// invocation failed and the event must be redelivered.
func (w *AggregationWorker) Process(event models.ActivityEvent) error {
	if event.Status != models.ActivityStatusApproved || event.CalculatedCredits == nil {
		log.Printf("Skipping activity %d: status=%s, credits present=%t",
			event.ActivityID, event.Status, event.CalculatedCredits != nil)
		return nil
	}

	applied, err := w.aggRepo.Apply(event, SuggestionTextFor(event))
	if err != nil {
		return err
	}

	if !applied {
		log.Printf("Activity %d already aggregated, ignoring redelivery", event.ActivityID)
		return nil
	}

	log.Printf("User %d credits incremented by %.2f for activity %d",
		event.UserID, *event.CalculatedCredits, event.ActivityID)
	return nil
}

// SuggestionTextFor picks the advisory text for the suggestion derived from
// this activity.
func SuggestionTextFor(event models.ActivityEvent) string {
	if event.ClimateImpactAnalysis != "" {
		return event.ClimateImpactAnalysis
	}
	return models.GenericSuggestionText
}

func (w *AggregationWorker) sweepRoutine() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweepUnaggregated()
		case <-w.stopChan:
			return
		}
	}
}

func (w *AggregationWorker) sweepUnaggregated() {
	cutoff := time.Now().Add(-w.sweepGrace)
	activities, err := w.activityRepo.FindUnaggregated(cutoff, w.sweepBatch)
	if err != nil {
		log.Printf("Reconciliation sweep query failed: %v", err)
		return
	}

	for _, activity := range activities {
		if err := w.publisher.PublishActivityCreated(models.EventFromActivity(&activity)); err != nil {
			log.Printf("Failed to republish activity %d: %v", activity.ID, err)
			return
		}
	}

	if len(activities) > 0 {
		log.Printf("Reconciliation sweep republished %d unaggregated activities", len(activities))
	}
}
