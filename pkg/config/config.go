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

import "sync"

// Config is a key-value configuration with dotted string keys.
type Config struct {
	locker *sync.RWMutex
	data   map[string]interface{}
}

// NewEmptyConfig creates an empty Config
func NewEmptyConfig() *Config {
	return &Config{
		locker: &sync.RWMutex{},
		data:   make(map[string]interface{}),
	}
}

// NewConfig creates a Config from a map
func NewConfig(data map[string]interface{}) *Config {
	conf := NewEmptyConfig()
	for key, value := range data {
		conf.data[key] = value
	}
	return conf
}

// Set sets the value of a given key
func (conf *Config) Set(key string, value interface{}) {
	conf.locker.Lock()
	defer conf.locker.Unlock()
	conf.data[key] = value
}

// GetString returns the string value of a given key, or "" if unset
func (conf *Config) GetString(key string) string {
	conf.locker.RLock()
	defer conf.locker.RUnlock()

	if value, found := conf.data[key]; found {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

// GetInt returns the int value of a given key, or 0 if unset
func (conf *Config) GetInt(key string) int {
	conf.locker.RLock()
	defer conf.locker.RUnlock()

	if value, found := conf.data[key]; found {
		if i, ok := value.(int); ok {
			return i
		}
	}
	return 0
}

// GetKeys returns all keys of the config
func (conf *Config) GetKeys() []string {
	conf.locker.RLock()
	defer conf.locker.RUnlock()

	keys := make([]string, 0, len(conf.data))
	for key := range conf.data {
		keys = append(keys, key)
	}
	return keys
}

// Clone returns a copy of the config
func (conf *Config) Clone() *Config {
	conf.locker.RLock()
	defer conf.locker.RUnlock()
	return NewConfig(conf.data)
}

// IsEmpty reports whether the config has no keys
func (conf *Config) IsEmpty() bool {
	conf.locker.RLock()
	defer conf.locker.RUnlock()
	return len(conf.data) == 0
}
