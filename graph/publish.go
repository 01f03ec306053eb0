package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"
)

// GraphIngestSubject is the default subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// GraphStream is the default JetStream stream capturing GraphIngestSubject.
const GraphStream = "GRAPH"

// Acceptor receives entities.
type Acceptor interface {
	Accept(g Graphable) error
}

// AcceptFunc adapts a function to an Acceptor.
type AcceptFunc func(g Graphable) error

// Accept calls f(g).
func (f AcceptFunc) Accept(g Graphable) error { return f(g) }

// Fanout returns an Acceptor handing every entity to each acceptor in turn.
// It stops at the first error.
func Fanout(accs ...Acceptor) Acceptor {
	return AcceptFunc(func(g Graphable) error {
		for _, a := range accs {
			if err := a.Accept(g); err != nil {
				return err
			}
		}
		return nil
	})
}

// Publisher sends entities to the semstreams graph over NATS.
type Publisher struct {
	nc        *natsclient.Client
	subject   string
	published atomic.Int64
}

// NewPublisher creates a publisher. A nil client yields a publisher that
// drops everything.
func NewPublisher(nc *natsclient.Client, subject string) *Publisher {
	if subject == "" {
		subject = GraphIngestSubject
	}
	return &Publisher{nc: nc, subject: subject}
}

// Publish sends one entity.
func (p *Publisher) Publish(ctx context.Context, g Graphable) error {
	if p == nil || p.nc == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	payload := NewEntityPayload(g, time.Now())
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("entity %s: %w", g.EntityID(), err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", g.EntityID(), err)
	}
	if err := p.nc.PublishToStream(ctx, p.subject, data); err != nil {
		return fmt.Errorf("publish entity %s: %w", g.EntityID(), err)
	}
	p.published.Add(1)
	return nil
}

// Sink returns an Acceptor publishing under ctx.
func (p *Publisher) Sink(ctx context.Context) Acceptor {
	return AcceptFunc(func(g Graphable) error {
		return p.Publish(ctx, g)
	})
}

// Published returns how many entities were sent.
func (p *Publisher) Published() int64 {
	if p == nil {
		return 0
	}
	return p.published.Load()
}

// EnsureStream makes sure a JetStream stream captures subject, creating it
// when missing.
func EnsureStream(ctx context.Context, nc *natsclient.Client, name, subject string) error {
	js, err := nc.JetStream()
	if err != nil {
		return fmt.Errorf("jetstream: %w", err)
	}

	if _, err := js.Stream(ctx, name); err == nil {
		return nil
	} else if !errors.Is(err, jetstream.ErrStreamNotFound) {
		return fmt.Errorf("lookup stream %s: %w", name, err)
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     name,
		Subjects: []string{subject},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", name, err)
	}
	return nil
}
