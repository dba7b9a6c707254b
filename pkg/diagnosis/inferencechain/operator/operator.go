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

package operator

import (
	"fmt"
	"sync"

	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/datastore"
)

// InferenceOperator is a unit of diagnosis rule logic. Implementations read
// the diagnosis data store but never mutate it.
type InferenceOperator interface {
	// IsApplicable reports whether the operator can process the inference.
	// It is a pure predicate with no side effects.
	IsApplicable(inference common.Inference) bool
	// Infer derives zero or more inferences from an applicable inference.
	// An error means the operator contributes nothing for this input; it
	// never aborts the surrounding chain evaluation.
	Infer(inference common.Inference) ([]common.Inference, error)
}

var (
	locker           = &sync.RWMutex{}
	newOperatorFuncs = make(map[string]newOperatorFunc)
)

type newOperatorFunc func(dataManager *datastore.DataManager) InferenceOperator

func registerNewOperatorFunc(name string, newFunc newOperatorFunc) error {
	locker.Lock()
	defer locker.Unlock()

	if _, found := newOperatorFuncs[name]; found {
		err := fmt.Errorf("NewOperatorFunc %s has already registered", name)
		return err
	}
	newOperatorFuncs[name] = newFunc
	return nil
}

// CreateOperator creates a registered inference operator by name.
func CreateOperator(name string, dataManager *datastore.DataManager) (InferenceOperator, error) {
	locker.RLock()
	defer locker.RUnlock()

	newFunc, exist := newOperatorFuncs[name]
	if !exist {
		err := fmt.Errorf("inference operator %s has not registered", name)
		return nil, err
	}
	return newFunc(dataManager), nil
}
