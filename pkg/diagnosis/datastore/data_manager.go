// Copyright 2024 The DLRover Authors. All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datastore

import (
	"sync"

	"github.com/elliotchance/orderedmap"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/utils"
)

// DataManager is the concurrency-safe store of diagnosis data. Events are
// kept per data type in insertion order, trimmed to a capacity ceiling and
// aged out by a staleness window. Producers report in near-real-time, so
// timestamps within one type are non-decreasing and eviction only needs to
// scan a stale prefix.
type DataManager struct {
	locker           *sync.Mutex
	diagnosisData    *orderedmap.OrderedMap
	expireTimePeriod int
	capacity         int
}

// NewDataManager creates a DataManager with the given staleness window
// (seconds) and per-type capacity ceiling. Non-positive arguments fall back
// to the defaults.
func NewDataManager(expireTimePeriod int, capacity int) *DataManager {
	if expireTimePeriod <= 0 {
		expireTimePeriod = common.DefaultDataExpireTimePeriod
	}
	if capacity <= 0 {
		capacity = common.DefaultMaxDataCount
	}
	return &DataManager{
		locker:           &sync.Mutex{},
		diagnosisData:    orderedmap.NewOrderedMap(),
		expireTimePeriod: expireTimePeriod,
		capacity:         capacity,
	}
}

// StoreData appends an event to the sequence of its data type, then evicts
// the stale prefix and trims the sequence to the capacity ceiling. The whole
// append+evict step is atomic with respect to other mutators.
func (m *DataManager) StoreData(data *common.DiagnosisData) {
	if data == nil {
		return
	}
	m.locker.Lock()
	defer m.locker.Unlock()

	events := m.getEvents(data.DataType)
	events = append(events, data)
	events = m.cleanExpiredData(events)
	if len(events) > m.capacity {
		events = events[len(events)-m.capacity:]
	}
	m.diagnosisData.Set(data.DataType, events)
}

// GetData returns a snapshot of the current non-stale events of a data type.
// An unknown type yields an empty sequence. The returned slice never aliases
// the internal buffer.
func (m *DataManager) GetData(dataType string) []*common.DiagnosisData {
	m.locker.Lock()
	defer m.locker.Unlock()

	events := m.getEvents(dataType)
	if len(events) == 0 {
		return []*common.DiagnosisData{}
	}
	events = m.cleanExpiredData(events)
	m.diagnosisData.Set(dataType, events)

	snapshot := make([]*common.DiagnosisData, len(events))
	copy(snapshot, events)
	return snapshot
}

// GetDataSize returns the total number of retained events across all types.
// The value is approximate: it may count events which already turned stale
// but have not been evicted yet.
func (m *DataManager) GetDataSize() int {
	m.locker.Lock()
	defer m.locker.Unlock()

	size := 0
	for el := m.diagnosisData.Front(); el != nil; el = el.Next() {
		size += len(el.Value.([]*common.DiagnosisData))
	}
	return size
}

func (m *DataManager) getEvents(dataType string) []*common.DiagnosisData {
	value, found := m.diagnosisData.Get(dataType)
	if !found {
		return nil
	}
	return value.([]*common.DiagnosisData)
}

// cleanExpiredData removes the maximal stale prefix. It stops at the first
// non-stale event because timestamps are non-decreasing in insertion order.
func (m *DataManager) cleanExpiredData(events []*common.DiagnosisData) []*common.DiagnosisData {
	n := 0
	for _, event := range events {
		if !utils.HasExpired(event.Timestamp, m.expireTimePeriod) {
			break
		}
		n++
	}
	if n == 0 {
		return events
	}
	remaining := make([]*common.DiagnosisData, len(events)-n)
	copy(remaining, events[n:])
	return remaining
}
