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

package dbbase

import (
	"fmt"

	"xorm.io/xorm"
)

// Condition is the interface of db query condition
type Condition interface {
	// Apply this condition to SQL where clause
	Apply(session *xorm.Session) *xorm.Session
}

// RecorderInterface is the interface of the recorder
type RecorderInterface interface {
	// row must be a pointer
	Get(row interface{}, condition Condition) error
	// rows must be a pointer to a slice
	List(rows interface{}, condition Condition) error
	Upsert(row interface{}, condition Condition) error
}

// DatabaseRecorder is the struct of the database recorder
type DatabaseRecorder struct {
	*xorm.Engine
	TableName string
}

var _ RecorderInterface = &DatabaseRecorder{}

// Get returns a single row which meets the condition
func (r *DatabaseRecorder) Get(row interface{}, condition Condition) error {
	session := r.Table(r.TableName)
	if condition != nil {
		session = condition.Apply(session)
	}
	has, err := session.Get(row)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("no record found in table %s for %v", r.TableName, condition)
	}
	return nil
}

// List returns multiple rows which meet the condition
func (r *DatabaseRecorder) List(rows interface{}, condition Condition) error {
	session := r.Table(r.TableName)
	if condition != nil {
		session = condition.Apply(session)
	}
	return session.Find(rows)
}

// Upsert updates the row matching the condition, or inserts it when absent
func (r *DatabaseRecorder) Upsert(row interface{}, condition Condition) error {
	exist := false
	if condition != nil {
		var err error
		exist, err = condition.Apply(r.Table(r.TableName)).Exist()
		if err != nil {
			return err
		}
	}
	if exist {
		_, err := condition.Apply(r.Table(r.TableName)).Update(row)
		return err
	}
	_, err := r.Table(r.TableName).Insert(row)
	return err
}
