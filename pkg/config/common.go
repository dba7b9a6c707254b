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

package config

const (
	// JobName is the config key of the training job name
	JobName = "job.name"
	// JobUUID is the config key of the training job uuid
	JobUUID = "job.uuid"

	// DBUser is the config key of database user
	DBUser = "db.user"
	// DBPassword is the config key of database password
	DBPassword = "db.password"
	// DBEngineType is the config key of database engine type, e.g., mysql
	DBEngineType = "db.engine.type"
	// DBURL is the config key of database url
	DBURL = "db.url"

	// DiagnosisDataExpireTimePeriodSecs is the config key of the diagnosis
	// data staleness window in seconds
	DiagnosisDataExpireTimePeriodSecs = "diagnosis.data.expire-time-period.secs"
	// DiagnosisDataMaxCount is the config key of the per-type capacity
	// ceiling of the diagnosis data store
	DiagnosisDataMaxCount = "diagnosis.data.max-count"
	// DiagnosisObservingIntervalSecs is the config key of the observation
	// loop interval in seconds
	DiagnosisObservingIntervalSecs = "diagnosis.observing.interval.secs"
)
