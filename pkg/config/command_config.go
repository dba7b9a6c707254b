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

import "flag"

const (
	// SpecJobName is the spec name of the training job name
	SpecJobName = "jobName"
	// SpecJobUUID is the spec name of the training job uuid
	SpecJobUUID = "jobUuid"
	// SpecServerPort is the port of the diagnosis master gRPC service
	SpecServerPort = "port"
	// SpecDBUser is the spec name of the database user
	SpecDBUser = "dbUser"
	// SpecDBPassword is the spec name of the database password
	SpecDBPassword = "dbPassword"
	// SpecDBEngineType is the spec name of the database engine type
	SpecDBEngineType = "dbEngineType"
	// SpecDBURL is the spec name of the database url
	SpecDBURL = "dbUrl"
)

// Spec is the struct of configure specifications
type Spec struct {
	// JobName is the name of the training job
	JobName string
	// JobUUID is the uuid of the training job
	JobUUID string
	// Port is the port of the diagnosis master gRPC service
	Port string
	// DBUser is the database user
	DBUser string
	// DBPassword is the database password
	DBPassword string
	// DBEngineType is the database engine type
	DBEngineType string
	// DBURL is the database url
	DBURL string
}

// CommandConfig is the variable of type Spec
var CommandConfig = &Spec{}

func init() {
	flag.StringVar(&CommandConfig.JobName,
		SpecJobName,
		"",
		"The name of the training job")
	flag.StringVar(&CommandConfig.JobUUID,
		SpecJobUUID,
		"",
		"The uuid of the training job")
	flag.StringVar(&CommandConfig.Port,
		SpecServerPort,
		":50051",
		"Port of the diagnosis master gRPC service")
	flag.StringVar(&CommandConfig.DBUser,
		SpecDBUser,
		"",
		"The user of the database storing diagnosis records")
	flag.StringVar(&CommandConfig.DBPassword,
		SpecDBPassword,
		"",
		"The password of the database storing diagnosis records")
	flag.StringVar(&CommandConfig.DBEngineType,
		SpecDBEngineType,
		"mysql",
		"The engine type of the database storing diagnosis records")
	flag.StringVar(&CommandConfig.DBURL,
		SpecDBURL,
		"",
		"The url of the database storing diagnosis records. Leave empty to disable persistence.")
}
