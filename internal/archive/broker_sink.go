package archive

import (
	"context"
	"encoding/json"

	"github.com/Egor213/BotStats/internal/broker"
	"github.com/Egor213/BotStats/internal/domain"
	errorsUtils "github.com/Egor213/BotStats/pkg/errors"
)

// BrokerSink publishes the snapshot as JSON keyed by account name.
type BrokerSink struct {
	producer broker.Producer
}

func NewBrokerSink(p broker.Producer) *BrokerSink {
	return &BrokerSink{producer: p}
}

func (s *BrokerSink) Name() string {
	return "kafka"
}

func (s *BrokerSink) Save(ctx context.Context, snapshot domain.AccountStats) error {
	value, err := json.Marshal(snapshot)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return s.producer.SendMessage(ctx, []byte(snapshot.Name), value)
}
