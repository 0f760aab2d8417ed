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

package succinct

import (
	"fmt"
	"time"
)

const (
	EvtBuildStart      = 0 // suffix array construction starts
	EvtSuffixArrayDone = 1 // suffix array construction ends
	EvtWaveletDone     = 2 // wavelet tree over the BWT column is built
	EvtSampleDone      = 3 // SA/ISA samples are materialized
	EvtBuildEnd        = 4 // index is frozen and ready for queries
	EvtSerializeStart  = 5 // Serialize begins writing the layout
	EvtSerializeEnd    = 6 // Serialize has written the integrity footer
	EvtDeserializeEnd  = 7 // Deserialize has validated the footer
)

// Event reports build/serialization progress. The query path never emits
// events: it is a pure read of a frozen structure with nothing to report.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEvent creates an Event carrying a size (bytes processed so far) and
// an optional message. A zero time is replaced with time.Now().
func NewEvent(evtType int, size int64, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, size: size, msg: msg, eventTime: evtTime}
}

// Type returns the event type (one of the Evt* constants).
func (this *Event) Type() int {
	return this.eventType
}

// Time returns when the event was recorded.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the size info attached to the event, or 0 if none.
func (this *Event) Size() int64 {
	return this.size
}

// String returns a short human-readable representation of this event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EvtBuildStart:
		t = "BUILD_START"
	case EvtSuffixArrayDone:
		t = "SUFFIX_ARRAY_DONE"
	case EvtWaveletDone:
		t = "WAVELET_DONE"
	case EvtSampleDone:
		t = "SAMPLE_DONE"
	case EvtBuildEnd:
		t = "BUILD_END"
	case EvtSerializeStart:
		t = "SERIALIZE_START"
	case EvtSerializeEnd:
		t = "SERIALIZE_END"
	case EvtDeserializeEnd:
		t = "DESERIALIZE_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"time\":%d }", t, this.size,
		this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors attached to a build or a
// serialization call.
type Listener interface {
	// ProcessEvent is called whenever the listener receives an event.
	ProcessEvent(evt *Event)
}

// Broadcast sends evt to every non-nil listener. Safe to call with an
// empty or nil slice.
func Broadcast(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		if l != nil {
			l.ProcessEvent(evt)
		}
	}
}
