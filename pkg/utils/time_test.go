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

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasExpired(t *testing.T) {
	now := time.Now().Unix()
	assert.True(t, HasExpired(now-100, 10))
	assert.False(t, HasExpired(now, 100))
}

func TestWaitForCondition(t *testing.T) {
	count := 0
	done := WaitForCondition(func() bool {
		count++
		return count >= 3
	}, 10*time.Millisecond, time.Second)
	assert.True(t, done)

	done = WaitForCondition(func() bool {
		return false
	}, 10*time.Millisecond, 50*time.Millisecond)
	assert.False(t, done)
}
