package eventsync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	kafkaLib "github.com/segmentio/kafka-go"
)

// MessageWriter is implemented by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaLib.Message) error
	Close() error
}

// KafkaSink writes one JSON message per event, keyed by minter so a minter's events stay ordered
// within a partition.
type KafkaSink struct {
	writer MessageWriter
}

type kafkaMintMessage struct {
	ChainID     int64     `json:"chainId"`
	Contract    string    `json:"contract"`
	TxHash      string    `json:"txHash"`
	LogIndex    uint      `json:"logIndex"`
	BlockNumber uint64    `json:"blockNumber"`
	BlockHash   string    `json:"blockHash"`
	Minter      string    `json:"minter"`
	Quantity    string    `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return NewKafkaSinkWithWriter(&kafkaLib.Writer{
		Addr:                   kafkaLib.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkaLib.Hash{},
		RequiredAcks:           kafkaLib.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		Compression:            kafkaLib.Snappy,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	})
}

func NewKafkaSinkWithWriter(writer MessageWriter) *KafkaSink {
	return &KafkaSink{writer: writer}
}

func (k *KafkaSink) Publish(ctx context.Context, events []*MintEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkaLib.Message, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(kafkaMintMessage{
			ChainID:     e.ChainID,
			Contract:    e.Contract,
			TxHash:      e.TxHash,
			LogIndex:    e.LogIndex,
			BlockNumber: e.BlockNumber,
			BlockHash:   e.BlockHash,
			Minter:      e.Minter,
			Quantity:    e.Quantity.String(),
			CreatedAt:   e.CreatedAt,
		})
		if err != nil {
			return errors.Wrap(err, "failed to marshal mint event")
		}

		msgs = append(msgs, kafkaLib.Message{
			Key:   []byte(e.Minter),
			Value: data,
		})
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		return errors.Wrap(err, "failed to write kafka messages")
	}

	return nil
}

func (k *KafkaSink) Close() error {
	return k.writer.Close()
}
