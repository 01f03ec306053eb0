package graph

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/dwcgraph/entity"
	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "dwcgraph",
		Category:    "entity",
		Version:     "v1",
		Description: "Occurrence-derived entity with its triples",
		Factory:     func() any { return &EntityPayload{} },
	})
	if err != nil {
		panic("failed to register EntityPayload: " + err.Error())
	}
}

// EntityType is the message type for entity payloads.
var EntityType = message.Type{Domain: "dwcgraph", Category: "entity", Version: "v1"}

// EntityPayload carries one entity to the semstreams graph. It implements
// message.Payload and Graphable.
type EntityPayload struct {
	ID         string           `json:"id"`
	Kind       string           `json:"kind,omitempty"`
	TripleData []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewEntityPayload snapshots an entity.
func NewEntityPayload(g Graphable, now time.Time) *EntityPayload {
	p := &EntityPayload{
		ID:         g.EntityID(),
		TripleData: g.Triples(),
		UpdatedAt:  now,
	}
	if e, ok := g.(entity.Entity); ok {
		p.Kind = string(e.EntityKind())
	}
	return p
}

func (e *EntityPayload) EntityID() string          { return e.ID }
func (e *EntityPayload) Triples() []message.Triple { return e.TripleData }
func (e *EntityPayload) Schema() message.Type      { return EntityType }

func (e *EntityPayload) Validate() error {
	if e.ID == "" {
		return errors.New("entity ID is required")
	}
	if len(e.TripleData) == 0 {
		return errors.New("entity has no triples")
	}
	return nil
}

func (e *EntityPayload) MarshalJSON() ([]byte, error) {
	type Alias EntityPayload
	return json.Marshal((*Alias)(e))
}

func (e *EntityPayload) UnmarshalJSON(data []byte) error {
	type Alias EntityPayload
	return json.Unmarshal(data, (*Alias)(e))
}
