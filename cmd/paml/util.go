// Copyright 2018 The CUE Authors
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

package main

import (
	"io"
	"os"
)

func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}
