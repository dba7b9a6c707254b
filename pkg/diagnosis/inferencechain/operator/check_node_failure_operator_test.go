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

func TestCheckNodeFailureOperatorIsApplicable(t *testing.T) {
	op := newCheckNodeFailureOperator(datastore.NewDataManager(0, 0))

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

func TestCheckNodeFailureOperatorInfer(t *testing.T) {
	dataManager := datastore.NewDataManager(0, 0)
	op := newCheckNodeFailureOperator(dataManager)
	hang := common.NewInference(
		common.InferenceNameTraining,
		common.InferenceAttributeIsOrNot,
		common.InferenceDescriptionHang,
	)

	results, err := op.Infer(hang)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(results))

	dataManager.StoreData(common.NewDiagnosisData(common.DataTypeNodeFailure, "worker-0"))
	dataManager.StoreData(common.NewDiagnosisData(common.DataTypeNodeFailure, "worker-1"))
	dataManager.StoreData(common.NewDiagnosisData(common.DataTypeNodeFailure, "worker-0"))

	results, err = op.Infer(hang)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, common.InferenceNameNode, results[0].Name)
	assert.Equal(t, common.InferenceAttributeIs, results[0].Attribute)
	assert.Equal(t, common.InferenceDescriptionFailure, results[0].Description)
	assert.Equal(t, "worker-0,worker-1", results[0].Context["nodes"])
}
