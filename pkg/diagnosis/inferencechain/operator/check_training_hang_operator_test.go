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
	"testing"

	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/datastore"
	"github.com/stretchr/testify/assert"
)

func TestCheckTrainingHangOperatorIsApplicable(t *testing.T) {
	op := newCheckTrainingHangOperator(datastore.NewDataManager(0, 0))

	hang := common.NewInference(
		common.InferenceNameTraining,
		common.InferenceAttributeIsOrNot,
		common.InferenceDescriptionHang,
	)
	assert.True(t, op.IsApplicable(hang))

	failure := common.NewInference(
		common.InferenceNameNode,
		common.InferenceAttributeIs,
		common.InferenceDescriptionFailure,
	)
	assert.False(t, op.IsApplicable(failure))
}

func TestCheckTrainingHangOperatorInfer(t *testing.T) {
	dataManager := datastore.NewDataManager(0, 0)
	op := newCheckTrainingHangOperator(dataManager)
	hang := common.NewInference(
		common.InferenceNameTraining,
		common.InferenceAttributeIsOrNot,
		common.InferenceDescriptionHang,
	)

	// No signal yet.
	results, err := op.Infer(hang)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(results))

	// One signal is not enough to confirm a hang.
	dataManager.StoreData(common.NewDiagnosisData(common.DataTypeTrainingHangSignal, "worker-0"))
	results, err = op.Infer(hang)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(results))

	dataManager.StoreData(common.NewDiagnosisData(common.DataTypeTrainingHangSignal, "worker-1"))
	results, err = op.Infer(hang)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(results))
	assert.True(t, results[0].Equal(hang))
}

func TestCheckTrainingHangOperatorWithoutDataManager(t *testing.T) {
	op := &CheckTrainingHangOperator{}
	_, err := op.Infer(common.NewInference(
		common.InferenceNameTraining,
		common.InferenceAttributeIsOrNot,
		common.InferenceDescriptionHang,
	))
	assert.Error(t, err)
}

func TestCreateOperator(t *testing.T) {
	dataManager := datastore.NewDataManager(0, 0)

	op, err := CreateOperator(CheckTrainingHangOperatorName, dataManager)
	assert.NoError(t, err)
	assert.NotNil(t, op)

	_, err = CreateOperator("nonexistent_operator", dataManager)
	assert.Error(t, err)
}
