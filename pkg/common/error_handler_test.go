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

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStopAllErrorHandlerWithoutCancelFunc(t *testing.T) {
	_, err := NewStopAllErrorHandler(nil)
	assert.Error(t, err)
}

func TestStopAllErrorHandlerCancelsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	handler, err := NewStopAllErrorHandler(cancel)
	assert.NoError(t, err)

	go handler.HandleError(ctx)
	handler.ReportError(ctx, NewError("test-component", fmt.Errorf("boom")))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after an error report")
	}
}
