// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hwyinfo prints the CPU features Go detects, the registered vector
// backends and the trait table the hwy package resolves on this machine.
//
// Usage:
//
//	hwyinfo                     # everything
//	hwyinfo cpu                 # CPU features only
//	hwyinfo backends            # registered backends
//	hwyinfo traits --backend swar --kind f --accelerated
package main

import (
	"os"

	_ "github.com/ajroetker/hwyvec/hwy/avx2"
	_ "github.com/ajroetker/hwyvec/hwy/swar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
