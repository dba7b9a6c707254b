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

import "time"

// HasExpired reports whether a wall-clock timestamp (in seconds) is older
// than the given retention period (in seconds).
func HasExpired(timestamp int64, timePeriod int) bool {
	expiredAt := time.Unix(timestamp, 0).Add(time.Duration(timePeriod) * time.Second)
	return expiredAt.Before(time.Now())
}

// Condition is the condition function
type Condition func() bool

// WaitForCondition waits until meets the condtion
func WaitForCondition(cond Condition, checkInterval time.Duration, timeout time.Duration) bool {
	tick := time.NewTicker(checkInterval)
	expire := time.NewTimer(timeout)

	defer func() {
		tick.Stop()
		expire.Stop()
	}()

	for {
		select {
		case <-tick.C:
			if done := cond(); done {
				return true
			}
		case <-expire.C:
			return false
		}
	}
}
