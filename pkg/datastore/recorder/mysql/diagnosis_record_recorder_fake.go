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

package mysql

import (
	"errors"
	"fmt"
	"sync"
)

// DiagnosisRecordFakeRecorder is the fake recorder struct of diagnosis records
type DiagnosisRecordFakeRecorder struct {
	locker  *sync.Mutex
	records map[string]*DiagnosisRecord
}

// NewDiagnosisRecordFakeRecorder returns a new fake diagnosis record recorder
func NewDiagnosisRecordFakeRecorder() DiagnosisRecordRecorderInterface {
	return &DiagnosisRecordFakeRecorder{
		locker:  &sync.Mutex{},
		records: make(map[string]*DiagnosisRecord),
	}
}

func canApplyDiagnosisRecordCondition(condition *DiagnosisRecordCondition, record *DiagnosisRecord) bool {
	if len(condition.UID) > 0 && condition.UID != record.UID {
		return false
	}
	if len(condition.JobUUID) > 0 && condition.JobUUID != record.JobUUID {
		return false
	}
	return true
}

// Get returns a row
func (r *DiagnosisRecordFakeRecorder) Get(condition *DiagnosisRecordCondition, record *DiagnosisRecord) error {
	if record == nil {
		record = &DiagnosisRecord{}
	}
	r.locker.Lock()
	defer r.locker.Unlock()
	for _, row := range r.records {
		if canApplyDiagnosisRecordCondition(condition, row) {
			*record = *row
			return nil
		}
	}
	return fmt.Errorf("fail to find record for %v", condition)
}

// List returns multiple rows
func (r *DiagnosisRecordFakeRecorder) List(condition *DiagnosisRecordCondition, records *[]*DiagnosisRecord) error {
	if records == nil {
		rows := make([]*DiagnosisRecord, 0)
		records = &rows
	}
	r.locker.Lock()
	defer r.locker.Unlock()
	for _, row := range r.records {
		if canApplyDiagnosisRecordCondition(condition, row) {
			*records = append(*records, row)
		}
	}
	return nil
}

// Upsert inserts or updates a row
func (r *DiagnosisRecordFakeRecorder) Upsert(record *DiagnosisRecord) error {
	if len(record.UID) == 0 {
		return errors.New("record UID can not be empty")
	}
	r.locker.Lock()
	defer r.locker.Unlock()
	r.records[record.UID] = record
	return nil
}
