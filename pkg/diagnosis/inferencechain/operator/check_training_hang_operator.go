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

	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/datastore"
)

const (
	// CheckTrainingHangOperatorName is the registered name of the training
	// hang detector.
	CheckTrainingHangOperatorName = "check_training_hang"

	// minHangSignalCount is the number of recent hang signals required to
	// confirm that training is hanging.
	minHangSignalCount = 2
)

func init() {
	registerNewOperatorFunc(CheckTrainingHangOperatorName, newCheckTrainingHangOperator)
}

// CheckTrainingHangOperator confirms the "is training hanging" hypothesis
// when enough non-stale hang signals exist in the data store.
type CheckTrainingHangOperator struct {
	dataManager *datastore.DataManager
}

func newCheckTrainingHangOperator(dataManager *datastore.DataManager) InferenceOperator {
	return &CheckTrainingHangOperator{
		dataManager: dataManager,
	}
}

// IsApplicable reports whether the inference asks if training is hanging.
func (op *CheckTrainingHangOperator) IsApplicable(inference common.Inference) bool {
	return inference.Name == common.InferenceNameTraining &&
		inference.Attribute == common.InferenceAttributeIsOrNot &&
		inference.Description == common.InferenceDescriptionHang
}

// Infer confirms the hang hypothesis if minHangSignalCount or more hang
// signals remain within the staleness window.
func (op *CheckTrainingHangOperator) Infer(inference common.Inference) ([]common.Inference, error) {
	if op.dataManager == nil {
		return nil, fmt.Errorf("no data manager to check training hang")
	}
	signals := op.dataManager.GetData(common.DataTypeTrainingHangSignal)
	if len(signals) < minHangSignalCount {
		return []common.Inference{}, nil
	}
	return []common.Inference{
		common.NewInference(
			common.InferenceNameTraining,
			common.InferenceAttributeIsOrNot,
			common.InferenceDescriptionHang,
		),
	}, nil
}
