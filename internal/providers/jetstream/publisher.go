package jetstream

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/adapter"
	"github.com/feral-file/ff-sales-engine/internal/events"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/messaging"
)

// Message headers carried by every published event
const (
	HeaderEventID   = "X-Event-ID"
	HeaderEventType = "X-Event-Type"
	HeaderSignature = "X-Event-Signature"
	HeaderTimestamp = "X-Event-Timestamp"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	streamName    string
	subjectPrefix string
	json          adapter.JSON
	signer        *events.Signer

	closeOnce sync.Once
	closeCh   chan struct{}
}

// NewPublisher creates a new NATS JetStream publisher.
// Events are signed when signer is not nil.
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, signer *events.Signer) (messaging.Publisher, error) {
	p := &publisher{
		streamName:    cfg.StreamName,
		subjectPrefix: cfg.SubjectPrefix,
		json:          jsonAdapter,
		signer:        signer,
		closeCh:       make(chan struct{}),
	}
	if p.subjectPrefix == "" {
		p.subjectPrefix = "sales"
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
			p.markClosed()
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}
	p.nc = nc
	p.js = js

	return p, nil
}

// PublishEvent publishes a sales event to NATS JetStream
func (p *publisher) PublishEvent(ctx context.Context, event *events.ContractEvent) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.String("eventID", event.EventID), zap.String("eventType", event.EventType))

	msg := &nats.Msg{
		Subject: p.buildSubject(event),
		Header:  nats.Header{},
	}
	msg.Header.Set(HeaderEventID, event.EventID)
	msg.Header.Set(HeaderEventType, event.EventType)

	if p.signer != nil {
		signed, err := p.signer.Sign(event)
		if err != nil {
			return fmt.Errorf("failed to sign event: %w", err)
		}
		msg.Data = signed.Payload
		msg.Header.Set(HeaderSignature, signed.Signature)
		msg.Header.Set(HeaderTimestamp, strconv.FormatInt(signed.Timestamp, 10))
	} else {
		data, err := p.json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		msg.Data = data
	}

	// The event id doubles as the JetStream dedup key so retried publishes are stored once
	opts := []jetstream.PublishOpt{jetstream.WithMsgID(event.EventID)}
	if p.streamName != "" {
		opts = append(opts, jetstream.WithExpectStream(p.streamName))
	}

	_, err := p.js.PublishMsg(ctx, msg, opts...)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event
func (p *publisher) buildSubject(event *events.ContractEvent) string {
	// Format: {prefix}.{event_type}
	// e.g., sales.contract.approved, sales.gift.redeemed
	return fmt.Sprintf("%s.%s", p.subjectPrefix, event.EventType)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
	p.markClosed()
}

// CloseChan returns a channel that is closed once the connection is gone
func (p *publisher) CloseChan() <-chan struct{} {
	return p.closeCh
}

func (p *publisher) markClosed() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
	})
}
