package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"MercadoPagoBridge/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

var _ notification.EventSink = (*NotificationSink)(nil)

// NotificationSink stores notification audit events in an OpenSearch index.
type NotificationSink struct {
	client *opensearch.Client
	index  string
}

func NewNotificationSink(ctx context.Context, urls []string, index string) (*NotificationSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &NotificationSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *NotificationSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"id":          map[string]any{"type": "keyword"},
				"payment_id":  map[string]any{"type": "keyword"},
				"type":        map[string]any{"type": "keyword"},
				"action":      map[string]any{"type": "keyword"},
				"cart_id":     map[string]any{"type": "keyword"},
				"outcome":     map[string]any{"type": "keyword"},
				"error":       map[string]any{"type": "text"},
				"received_at": map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

func (s *NotificationSink) Record(ctx context.Context, event notification.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now()
	}
	event.ReceivedAt = event.ReceivedAt.UTC()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(event.ID.String()),
		s.client.Index.WithContext(ctx),
		// admin reads follow the webhook closely
		s.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (s *NotificationSink) List(ctx context.Context, query notification.EventQuery) ([]notification.Event, error) {
	filters := make([]map[string]any, 0, 2)
	if query.CartID != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"cart_id": query.CartID}})
	}
	if query.PaymentID != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"payment_id": query.PaymentID}})
	}

	body := map[string]any{
		"size": clampLimit(query.Limit),
		"query": map[string]any{
			"bool": map[string]any{
				"filter": filters,
			},
		},
		"sort": []map[string]any{
			{"received_at": map[string]any{"order": "desc"}},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}

	out := make([]notification.Event, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		var ev notification.Event
		if err := json.Unmarshal(h.Source, &ev); err != nil {
			return nil, fmt.Errorf("decode hit: %w", err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
