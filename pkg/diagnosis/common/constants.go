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

const (
	// DefaultDataExpireTimePeriod is the retention window in seconds beyond
	// which a stored diagnosis event is evicted.
	DefaultDataExpireTimePeriod = 600
	// DefaultMaxDataCount is the per-type capacity ceiling of the diagnosis
	// data store.
	DefaultMaxDataCount = 100000
	// DefaultObservingIntervalSecs is the sleep interval of the observation
	// loop between two diagnosis rounds.
	DefaultObservingIntervalSecs = 60
)

const (
	// DataTypeTrainingHangSignal is the data type of hang signals reported
	// by training workers.
	DataTypeTrainingHangSignal = "hang_signal"
	// DataTypeNodeFailure is the data type of node failure reports.
	DataTypeNodeFailure = "node_failure"
)
