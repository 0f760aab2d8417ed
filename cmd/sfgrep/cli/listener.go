/*
Copyright 2011-2025 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"fmt"
	"io"

	succinct "github.com/lefromage/succinct"
)

// consoleListener prints one line per event to an io.Writer, adapted
// from the teacher's app/InfoPrinter.go block listener: that one
// tracks per-block timings and thresholds, this one just echoes the
// build/serialize progress stream attached with --verbose.
type consoleListener struct {
	w io.Writer
}

func newConsoleListener(w io.Writer) *consoleListener {
	return &consoleListener{w: w}
}

func (this *consoleListener) ProcessEvent(evt *succinct.Event) {
	fmt.Fprintln(this.w, evt.String())
}
