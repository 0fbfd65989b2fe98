package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tugaskita/tugaskita/config"
	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/pkg/helpers"
)

// The activity worker drains the activity-event queue and indexes each entry
// into Elasticsearch, keeping the searchable trail off the request path.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQActivityQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQActivityQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQActivityQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}

	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev application.ActivityEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				logger.WithError(err).Warn("bad message")
				_ = msg.Nack(false, false)
				continue
			}

			doc := map[string]any{
				"action":      ev.Action,
				"actor_email": ev.ActorEmail,
				"detail":      ev.Detail,
				"created_at":  ev.CreatedAt.Format(time.RFC3339Nano),
			}
			b, _ := json.Marshal(doc)
			req := esapi.IndexRequest{
				Index:   cfg.ESActivityIndex,
				Body:    strings.NewReader(string(b)),
				Refresh: "false",
			}

			c, cancel := context.WithTimeout(ctx, 5*time.Second)
			res, err := req.Do(c, es)
			cancel()
			if err != nil {
				logger.WithError(err).Warn("index failed")
				_ = msg.Nack(false, true)
				continue
			}
			if res.IsError() {
				logger.WithField("status", res.Status()).Warn("index response error")
				_ = res.Body.Close()
				_ = msg.Nack(false, false)
				continue
			}
			_ = res.Body.Close()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("activity worker listening on queue=%s", cfg.RabbitMQActivityQueue)
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
