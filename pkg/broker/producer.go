package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jaessolutions/docdesk/internal/entity"
)

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	documentSavedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		documentSavedTopic: topic,
	}
}

type DocumentSavedEvent struct {
	DocClass entity.DocClass `json:"doc_class"`
	Number   int64           `json:"number"`
	PDFPath  string          `json:"pdf_path"`
	SavedAt  time.Time       `json:"saved_at"`
}

// SendDocumentSaved notifies downstream consumers that a document row and
// its artifact were refreshed. Delivery is best effort, a failure never
// fails the save.
func (p *Producer) SendDocumentSaved(ctx context.Context, class entity.DocClass, number int64, pdfPath string) {
	event := DocumentSavedEvent{
		DocClass: class,
		Number:   number,
		PDFPath:  pdfPath,
		SavedAt:  time.Now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(string(class) + "-" + strconv.FormatInt(number, 10)),
		Value: b,
		Topic: p.documentSavedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
