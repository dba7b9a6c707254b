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

package diagnosis

import (
	"sync"

	log "github.com/golang/glog"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/datastore"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/inferencechain"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/inferencechain/operator"
)

// Diagnostician binds inference operator catalogues to chain purposes and
// evaluates registered seed inferences against them. The data store is
// injected at construction and scoped to one training-job run.
type Diagnostician struct {
	locker           *sync.RWMutex
	dataManager      *datastore.DataManager
	preChecks        []common.Inference
	trainingProblems []common.Inference
}

// NewDiagnostician creates a Diagnostician over a diagnosis data store.
func NewDiagnostician(dataManager *datastore.DataManager) *Diagnostician {
	return &Diagnostician{
		locker:           &sync.RWMutex{},
		dataManager:      dataManager,
		preChecks:        []common.Inference{},
		trainingProblems: []common.Inference{},
	}
}

// GetPreCheckOperators returns the pre-check operator catalogue. No
// pre-check rule is implemented yet, so pre-check evaluation returns empty
// results by contract.
func (d *Diagnostician) GetPreCheckOperators() []operator.InferenceOperator {
	return []operator.InferenceOperator{}
}

// GetObservingOperators returns the operator catalogue used to observe a
// running training job.
func (d *Diagnostician) GetObservingOperators() []operator.InferenceOperator {
	return d.createOperators(operator.CheckTrainingHangOperatorName)
}

// GetRootCauseOperators returns the operator catalogue used to diagnose the
// root causes of an observed problem.
func (d *Diagnostician) GetRootCauseOperators() []operator.InferenceOperator {
	return d.createOperators(operator.CheckNodeFailureOperatorName)
}

func (d *Diagnostician) createOperators(names ...string) []operator.InferenceOperator {
	operators := make([]operator.InferenceOperator, 0, len(names))
	for _, name := range names {
		op, err := operator.CreateOperator(name, d.dataManager)
		if err != nil {
			log.Errorf("fail to create inference operator %s: %v", name, err)
			continue
		}
		operators = append(operators, op)
	}
	return operators
}

// RegisterPreCheck replaces the seed inferences of subsequent CheckTraining
// calls. Last writer wins.
func (d *Diagnostician) RegisterPreCheck(preChecks []common.Inference) {
	d.locker.Lock()
	defer d.locker.Unlock()
	d.preChecks = copyInferences(preChecks)
}

// RegisterProblems replaces the seed inferences of subsequent
// ObserveTraining calls. Last writer wins.
func (d *Diagnostician) RegisterProblems(problems []common.Inference) {
	d.locker.Lock()
	defer d.locker.Unlock()
	d.trainingProblems = copyInferences(problems)
}

// CheckTraining evaluates the registered pre-checks before training starts.
func (d *Diagnostician) CheckTraining() []common.Inference {
	chain := inferencechain.NewInferenceChain(d.preCheckSnapshot(), d.GetPreCheckOperators())
	return chain.Infer()
}

// ObserveTraining evaluates the registered problems against the observing
// catalogue and returns the problems detected in this round.
func (d *Diagnostician) ObserveTraining() []common.Inference {
	chain := inferencechain.NewInferenceChain(d.problemSnapshot(), d.GetObservingOperators())
	return chain.Infer()
}

// DiagnoseFailure determines the root causes of one observed problem. An
// unrecognized problem yields an empty result, never an error.
func (d *Diagnostician) DiagnoseFailure(problem common.Inference) []common.Inference {
	chain := inferencechain.NewInferenceChain([]common.Inference{problem}, d.GetRootCauseOperators())
	return chain.Infer()
}

func (d *Diagnostician) preCheckSnapshot() []common.Inference {
	d.locker.RLock()
	defer d.locker.RUnlock()
	return copyInferences(d.preChecks)
}

func (d *Diagnostician) problemSnapshot() []common.Inference {
	d.locker.RLock()
	defer d.locker.RUnlock()
	return copyInferences(d.trainingProblems)
}

func copyInferences(inferences []common.Inference) []common.Inference {
	snapshot := make([]common.Inference, len(inferences))
	copy(snapshot, inferences)
	return snapshot
}
