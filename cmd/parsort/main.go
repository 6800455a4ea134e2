// Copyright 2025 go-parsort Authors
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

// Command parsort sorts numeric arrays stored as MessagePack documents.
//
// Usage:
//
//	parsort sort -i input.msgpack -o sorted.msgpack -w 8
//	parsort sort -i floats.msgpack -o out.msgpack -t float32
//	parsort check -i sorted.msgpack
//	parsort info
//
// The worker count defaults to PARSORT_WORKERS, or to the number of CPUs
// available (at most 16). PARSORT_SEQUENTIAL=1 forces a single worker.
package main

import (
	"fmt"
	"os"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", trace.UserMessage(err))
		os.Exit(1)
	}
}
