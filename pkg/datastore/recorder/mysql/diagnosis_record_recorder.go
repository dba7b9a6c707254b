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
	"time"

	"github.com/intelligent-machine-learning/easydl/master/pkg/datastore/dbbase"
	"xorm.io/xorm"
)

// TableDiagnosisRecord is the name of the diagnosis record table
const TableDiagnosisRecord = "diagnosis_record"

// DiagnosisRecordCondition is the struct of sql condition for the diagnosis record table
type DiagnosisRecordCondition struct {
	UID     string
	JobUUID string
}

// DiagnosisRecord is the identified root cause of an observed training
// problem, persisted for the orchestration layer.
type DiagnosisRecord struct {
	UID       string
	JobUUID   string
	Problem   string
	RootCause string
	Context   string
	CreatedAt time.Time
}

// Apply applies DiagnosisRecordCondition
func (c *DiagnosisRecordCondition) Apply(session *xorm.Session) *xorm.Session {
	if c.UID != "" {
		session.Where("uid = ?", c.UID)
	}
	if c.JobUUID != "" {
		session.Where("job_uuid = ?", c.JobUUID)
	}
	return session
}

// DiagnosisRecordRecorderInterface is the recorder interface of diagnosis records
type DiagnosisRecordRecorderInterface interface {
	Get(condition *DiagnosisRecordCondition, record *DiagnosisRecord) error
	List(condition *DiagnosisRecordCondition, records *[]*DiagnosisRecord) error
	Upsert(record *DiagnosisRecord) error
}

// DiagnosisRecordRecorder is the recorder struct of diagnosis records
type DiagnosisRecordRecorder struct {
	Recorder dbbase.RecorderInterface
}

// NewDiagnosisRecordDBRecorder creates a new DiagnosisRecordRecorder
func NewDiagnosisRecordDBRecorder(db *dbbase.Database) DiagnosisRecordRecorderInterface {
	return &DiagnosisRecordRecorder{
		Recorder: &dbbase.DatabaseRecorder{Engine: db.Engine, TableName: TableDiagnosisRecord},
	}
}

// Get returns a row
func (r *DiagnosisRecordRecorder) Get(condition *DiagnosisRecordCondition, record *DiagnosisRecord) error {
	if record == nil {
		record = &DiagnosisRecord{}
	}
	return r.Recorder.Get(record, condition)
}

// List returns multiple rows
func (r *DiagnosisRecordRecorder) List(condition *DiagnosisRecordCondition, records *[]*DiagnosisRecord) error {
	if records == nil {
		rows := make([]*DiagnosisRecord, 0)
		records = &rows
	}
	return r.Recorder.List(records, condition)
}

// Upsert updates or inserts a row
func (r *DiagnosisRecordRecorder) Upsert(record *DiagnosisRecord) error {
	return r.Recorder.Upsert(record, &DiagnosisRecordCondition{UID: record.UID})
}
