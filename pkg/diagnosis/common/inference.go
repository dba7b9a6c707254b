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

import "fmt"

// InferenceName is the subject of an inference
type InferenceName string

// InferenceAttribute is the relation kind of an inference
type InferenceAttribute string

// InferenceDescription is the predicate of an inference
type InferenceDescription string

const (
	// InferenceNameTraining is the inference subject of the training run
	InferenceNameTraining InferenceName = "training"
	// InferenceNameNode is the inference subject of a worker node
	InferenceNameNode InferenceName = "node"
)

const (
	// InferenceAttributeIsOrNot asks whether the description holds
	InferenceAttributeIsOrNot InferenceAttribute = "is_or_not"
	// InferenceAttributeIs asserts that the description holds
	InferenceAttributeIs InferenceAttribute = "is"
	// InferenceAttributeNot asserts that the description does not hold
	InferenceAttributeNot InferenceAttribute = "not"
)

const (
	// InferenceDescriptionHang is the hang predicate
	InferenceDescriptionHang InferenceDescription = "hang"
	// InferenceDescriptionFailure is the failure predicate
	InferenceDescriptionFailure InferenceDescription = "failure"
)

// Inference is an immutable proposition used both as the seed and as the
// conclusion of rule evaluation. Two inferences stating the same
// (name, attribute, description) triple are the same proposition regardless
// of their context.
type Inference struct {
	Name        InferenceName
	Attribute   InferenceAttribute
	Description InferenceDescription
	// Context carries optional free-form supporting annotations.
	Context map[string]string
}

// NewInference creates an Inference without context.
func NewInference(name InferenceName, attribute InferenceAttribute, description InferenceDescription) Inference {
	return Inference{
		Name:        name,
		Attribute:   attribute,
		Description: description,
	}
}

// Key returns the structural identity of the proposition. It is the
// de-duplication key during chain evaluation.
func (i Inference) Key() string {
	return fmt.Sprintf("%s/%s/%s", i.Name, i.Attribute, i.Description)
}

// Equal reports whether two inferences state the same proposition.
func (i Inference) Equal(other Inference) bool {
	return i.Name == other.Name && i.Attribute == other.Attribute && i.Description == other.Description
}

// String renders the inference for logs.
func (i Inference) String() string {
	if len(i.Context) == 0 {
		return i.Key()
	}
	return fmt.Sprintf("%s%v", i.Key(), i.Context)
}
