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

package common

import "time"

// DiagnosisData is a typed, timestamped runtime signal reported by a
// training component. It is immutable once created; the data store only
// drops it by eviction.
type DiagnosisData struct {
	// DataType is the type key of the signal, e.g. DataTypeTrainingHangSignal.
	DataType string
	// Timestamp is the wall-clock report time in seconds.
	Timestamp int64
	// Content is the opaque payload of the signal.
	Content string
}

// NewDiagnosisData creates a DiagnosisData stamped with the current time.
func NewDiagnosisData(dataType string, content string) *DiagnosisData {
	return &DiagnosisData{
		DataType:  dataType,
		Timestamp: time.Now().Unix(),
		Content:   content,
	}
}
