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

package dbbase

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	// mysql driver
	_ "github.com/go-sql-driver/mysql"
	log "github.com/golang/glog"
	"xorm.io/xorm"
	"xorm.io/xorm/names"
)

// Database is the struct of database
type Database struct {
	*xorm.Engine
}

// NewDatabase creates a DB
func NewDatabase(username, password, engineType, url string) *Database {
	var db Database
	uri := formatURI(username, password, url)
	db.init(engineType, uri)
	return &db
}

// Make sure the database connection URL is well formatted
func formatURI(username, password, url string) string {
	var params []string
	if !strings.Contains(url, "interpolateParams=") {
		params = append(params, "interpolateParams=true")
	}
	if !strings.Contains(url, "parseTime=") {
		params = append(params, "parseTime=true")
	}
	if !strings.Contains(url, "charset=") {
		params = append(params, "charset=utf8mb4,utf8")
	}
	if len(params) > 0 {
		if !strings.Contains(url, "?") {
			url += "?"
		} else {
			url += "&"
		}
		url += strings.Join(params, "&")
	}
	log.Infof("Database URL is formatted as %s", url)
	uri := fmt.Sprintf("%s:%s@%s", username, password, url)
	return uri
}

func (db *Database) init(engineType string, uri string) {
	engine, err := xorm.NewEngine(engineType, uri)
	if err != nil {
		panic(err)
	}
	// Test DB availability as early as possible
	if err = engine.Ping(); err != nil {
		panic(err)
	}
	db.Engine = postProcessEngine(engine, true)
}

// postProcessEngine sets the default mapper, fixes the time zone and enables SQL logging
func postProcessEngine(engine *xorm.Engine, showSQL bool) *xorm.Engine {
	uri := engine.DataSourceName()
	// Set Gonic mapper, for example: JobUUID <==> job_uuid
	engine.SetMapper(names.GonicMapper{})
	// go-sql-driver defaults to UTC while xorm defaults to Local. If they
	// mismatch, xorm overwrites the timezone of returned values.
	if !strings.Contains(uri, "loc=") || strings.Contains(uri, "loc=UTC") {
		engine.SetTZDatabase(time.UTC)
		engine.SetTZLocation(time.UTC)
	} else if strings.Contains(uri, "loc=Local") {
		engine.SetTZDatabase(time.Local)
		engine.SetTZLocation(time.Local)
	} else {
		log.Warningf("Please make sure the 'loc' arg of the sql driver won't cause any time parsing problem")
	}
	engine.SetLogger(NewHumanFriendlyLogger())
	engine.ShowSQL(showSQL)
	return engine
}

// InitMockAndDB initializes a mock db
func InitMockAndDB(showSQL bool) (*Database, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}
	xormEngine, err := GetXormEngine(mockDB, showSQL)
	if err != nil {
		return nil, nil, err
	}
	db := &Database{Engine: xormEngine}
	return db, mock, nil
}

// GetXormEngine gets an xorm engine over an existing sql.DB
func GetXormEngine(db *sql.DB, showSQL bool) (*xorm.Engine, error) {
	xormEngine, err := xorm.NewEngine("mysql", "")
	if err != nil {
		return nil, err
	}
	// Replace the underlying sql.DB
	xormEngine.DB().DB = db
	if err = xormEngine.Ping(); err != nil {
		return nil, err
	}
	xormEngine = postProcessEngine(xormEngine, showSQL)
	return xormEngine, nil
}
