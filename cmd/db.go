/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"songstats/internal/store"
)

// openExistingStore opens the database and verifies that the normalized
// tables exist, so query commands fail with a clear message instead of
// empty results when preprocess has not run yet.
func openExistingStore(dbPath string) (*store.Store, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	exists, err := s.Exists()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("checking database: %w", err)
	}
	if !exists {
		s.Close()
		return nil, fmt.Errorf("database doesn't exist - run preprocess first")
	}
	return s, nil
}
