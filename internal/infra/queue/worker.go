package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AssignmentMailer sends the "you were assigned a record" email.
type AssignmentMailer interface {
	SendAssignment(to, name, kind, title string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  AssignmentMailer
}

func NewWorker(ch *amqp.Channel, mailer AssignmentMailer) *Worker {
	return &Worker{Channel: ch, Mailer: mailer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("failed to register queue consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload AssignmentPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("worker: malformed message, rejecting: %s", err)
				// No requeue: a malformed body will never parse.
				d.Nack(false, false)
				continue
			}

			if err := w.Mailer.SendAssignment(payload.AssigneeEmail, payload.AssigneeName, payload.Kind, payload.Title); err != nil {
				log.Printf("worker: notification for %s %s failed: %s", payload.Kind, payload.RecordID, err)
				d.Nack(false, false)
				continue
			}

			d.Ack(false)
		}
	}()

	log.Printf("worker waiting on queue %q", queueName)
	<-forever
}
