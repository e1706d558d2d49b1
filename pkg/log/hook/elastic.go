/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

// Package hook ships logrus entries to elasticsearch.
package hook

import (
	"context"
	"fmt"
	"time"

	elastic "github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

type message struct {
	Host      string                 `json:"host"`
	Timestamp string                 `json:"@timestamp"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data"`
	Level     string                 `json:"level"`
}

type fireFunc func(h *ElasticHook, msg message) error

// ElasticHook is a logrus hook indexing every entry at or above a level.
type ElasticHook struct {
	client    *elastic.Client
	processor *elastic.BulkProcessor
	host      string
	index     string
	levels    []logrus.Level
	ctx       context.Context
	cancel    context.CancelFunc
	fire      fireFunc
}

// NewElasticHook indexes entries synchronously.
func NewElasticHook(client *elastic.Client, host string, level logrus.Level, index string) (*ElasticHook, error) {
	return newHook(client, host, level, index, syncFire)
}

// NewAsyncElasticHook indexes entries on a separate goroutine per entry.
func NewAsyncElasticHook(client *elastic.Client, host string, level logrus.Level, index string) (*ElasticHook, error) {
	return newHook(client, host, level, index, func(h *ElasticHook, msg message) error {
		go syncFire(h, msg)
		return nil
	})
}

// NewBulkProcessorElasticHook batches entries through a bulk processor.
func NewBulkProcessorElasticHook(client *elastic.Client, host string, level logrus.Level, index string) (*ElasticHook, error) {
	h, err := newHook(client, host, level, index, func(h *ElasticHook, msg message) error {
		h.processor.Add(elastic.NewBulkIndexRequest().Index(h.index).Doc(msg))
		return nil
	})

	if err != nil {
		return nil, err
	}

	processor, err := client.BulkProcessor().
		Name(fmt.Sprintf("%s-logger", index)).
		Workers(2).
		BulkActions(100).
		FlushInterval(5 * time.Second).
		Do(h.ctx)

	if err != nil {
		h.cancel()
		return nil, err
	}

	h.processor = processor
	return h, nil
}

func newHook(client *elastic.Client, host string, level logrus.Level, index string, fire fireFunc) (*ElasticHook, error) {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= level {
			levels = append(levels, l)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	exists, err := client.IndexExists(index).Do(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	if !exists {
		created, err := client.CreateIndex(index).Do(ctx)
		if err != nil {
			cancel()
			return nil, err
		}

		if !created.Acknowledged {
			cancel()
			return nil, fmt.Errorf("elastic index %s creation was not acknowledged", index)
		}
	}

	return &ElasticHook{
		client: client,
		host:   host,
		index:  index,
		levels: levels,
		ctx:    ctx,
		cancel: cancel,
		fire:   fire,
	}, nil
}

func newMessage(host string, entry *logrus.Entry) message {
	data := make(map[string]interface{}, len(entry.Data))
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			data[k] = err.Error()
			continue
		}
		data[k] = v
	}

	return message{
		Host:      host,
		Timestamp: entry.Time.UTC().Format(time.RFC3339Nano),
		Message:   entry.Message,
		Data:      data,
		Level:     entry.Level.String(),
	}
}

func syncFire(h *ElasticHook, msg message) error {
	_, err := h.client.Index().Index(h.index).BodyJson(msg).Do(h.ctx)
	return err
}

func (h *ElasticHook) Fire(entry *logrus.Entry) error {
	return h.fire(h, newMessage(h.host, entry))
}

func (h *ElasticHook) Levels() []logrus.Level {
	return h.levels
}

// Close flushes pending bulk requests and stops in-flight ones.
func (h *ElasticHook) Close() error {
	defer h.cancel()
	if h.processor != nil {
		return h.processor.Close()
	}

	return nil
}
