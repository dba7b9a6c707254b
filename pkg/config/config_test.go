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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigSetAndGet(t *testing.T) {
	conf := NewEmptyConfig()
	assert.True(t, conf.IsEmpty())

	conf.Set(JobName, "train-job")
	conf.Set(DiagnosisObservingIntervalSecs, 30)

	assert.Equal(t, "train-job", conf.GetString(JobName))
	assert.Equal(t, 30, conf.GetInt(DiagnosisObservingIntervalSecs))

	// Unset or mistyped keys fall back to zero values.
	assert.Equal(t, "", conf.GetString(JobUUID))
	assert.Equal(t, 0, conf.GetInt(JobName))
	assert.False(t, conf.IsEmpty())
	assert.ElementsMatch(t, conf.GetKeys(), []string{JobName, DiagnosisObservingIntervalSecs})
}

func TestConfigClone(t *testing.T) {
	conf := NewConfig(map[string]interface{}{
		JobUUID: "uuid-0",
	})

	clone := conf.Clone()
	clone.Set(JobUUID, "uuid-1")

	assert.Equal(t, "uuid-0", conf.GetString(JobUUID))
	assert.Equal(t, "uuid-1", clone.GetString(JobUUID))
}
