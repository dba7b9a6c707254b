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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosisRecordFakeRecorder(t *testing.T) {
	recorder := NewDiagnosisRecordFakeRecorder()

	err := recorder.Upsert(&DiagnosisRecord{
		UID:       "uid-1",
		JobUUID:   "job-1",
		Problem:   "training/is_or_not/hang",
		RootCause: "node/is/failure",
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)

	record := &DiagnosisRecord{}
	err = recorder.Get(&DiagnosisRecordCondition{UID: "uid-1"}, record)
	assert.NoError(t, err)
	assert.Equal(t, "job-1", record.JobUUID)

	// Upsert with the same UID overwrites the row.
	err = recorder.Upsert(&DiagnosisRecord{
		UID:       "uid-1",
		JobUUID:   "job-1",
		Problem:   "training/is_or_not/hang",
		RootCause: "node/is/failure",
		Context:   `{"nodes":"worker-0"}`,
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)

	records := make([]*DiagnosisRecord, 0)
	err = recorder.List(&DiagnosisRecordCondition{JobUUID: "job-1"}, &records)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(records))
	assert.Equal(t, `{"nodes":"worker-0"}`, records[0].Context)
}

func TestDiagnosisRecordFakeRecorderGetNotFound(t *testing.T) {
	recorder := NewDiagnosisRecordFakeRecorder()
	err := recorder.Get(&DiagnosisRecordCondition{UID: "uid-missing"}, &DiagnosisRecord{})
	assert.Error(t, err)
}

func TestDiagnosisRecordFakeRecorderUpsertEmptyUID(t *testing.T) {
	recorder := NewDiagnosisRecordFakeRecorder()
	err := recorder.Upsert(&DiagnosisRecord{JobUUID: "job-1"})
	assert.Error(t, err)
}
