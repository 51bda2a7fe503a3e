package worker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/m1ron1k/taskflow/internal/entity"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotifyWorker слушает очередь событий задач и пишет уведомления в лог.
// События нигде не сохраняются - это живой поток, не журнал.
type NotifyWorker struct {
	amqpURL   string
	queueName string
}

func NewNotifyWorker(amqpURL, queueName string) *NotifyWorker {
	return &NotifyWorker{
		amqpURL:   amqpURL,
		queueName: queueName,
	}
}

func (w *NotifyWorker) Start(ctx context.Context) {
	// Создаем отдельное соединение и канал для consumer'а
	conn, err := amqp.Dial(w.amqpURL)
	if err != nil {
		log.Printf("❌ Ошибка подключения к RabbitMQ для воркера: %v", err)
		return
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		log.Printf("❌ Ошибка создания канала для воркера: %v", err)
		return
	}
	defer channel.Close()

	// Убеждаемся, что очередь существует
	_, err = channel.QueueDeclare(
		w.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		log.Printf("❌ Ошибка объявления очереди: %v", err)
		return
	}

	msgs, err := channel.Consume(
		w.queueName,     // queue
		"notify_worker", // consumer tag
		false,           // auto-ack
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	if err != nil {
		log.Printf("❌ Ошибка создания consumer'а: %v", err)
		return
	}

	log.Println("Notify Worker слушает очередь", w.queueName)

	for {
		select {
		case <-ctx.Done():
			log.Println("🛑 Notify Worker остановлен")
			return
		case msg, ok := <-msgs:
			if !ok {
				log.Println("Канал событий закрыт")
				return
			}
			w.handleMessage(msg)
		}
	}
}

func (w *NotifyWorker) handleMessage(msg amqp.Delivery) {
	var event entity.TaskEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("❌ Ошибка разбора события: %v", err)
		msg.Nack(false, false) // битое сообщение в очередь не возвращаем
		return
	}

	switch {
	case event.Action == entity.ActionDelete:
		log.Printf("Задача удалена: %q (ID=%s)", event.Title, event.TaskID)
	case event.Completed:
		log.Printf("✅ Задача завершена: %q (ID=%s)", event.Title, event.TaskID)
	default:
		log.Printf("Задача %s: %q, статус %s", event.Action, event.Title, event.Status)
	}

	msg.Ack(false)
}
