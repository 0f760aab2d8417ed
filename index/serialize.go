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

package index

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/natefinch/atomic"

	succinct "github.com/lefromage/succinct"
	"github.com/lefromage/succinct/internal/xxhash"
	"github.com/lefromage/succinct/sample"
	"github.com/lefromage/succinct/wavelet"
)

// Serialize writes the fixed-order layout: n (8B), sigma (4B),
// alphabet (sigma*4B), C (sigma*8B), the wavelet-tree layout, the
// sample table (rate, sampledSA, sampledISA), and an additive 8-byte
// XXHash64 checksum trailer over everything written before it.
func (this *Index) Serialize(w io.Writer, listeners ...succinct.Listener) error {
	var buf bytes.Buffer

	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtSerializeStart, int64(this.n), "", time.Time{}))

	if err := binary.Write(&buf, binary.BigEndian, int64(this.n)); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	sigma := len(this.alphabet)

	if err := binary.Write(&buf, binary.BigEndian, uint32(sigma)); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	for _, b := range this.alphabet {
		if err := binary.Write(&buf, binary.BigEndian, uint32(b)); err != nil {
			return fmt.Errorf("index: %w", err)
		}
	}

	for _, c := range this.cum[1 : sigma+1] {
		if err := binary.Write(&buf, binary.BigEndian, c); err != nil {
			return fmt.Errorf("index: %w", err)
		}
	}

	if err := this.tree.Serialize(&buf); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	if err := this.samples.Serialize(&buf); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	h, _ := xxhash.NewXXHash64(0)
	checksum := h.Hash(buf.Bytes())

	if err := binary.Write(&buf, binary.BigEndian, checksum); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtSerializeEnd, int64(buf.Len()), "", time.Time{}))
	return nil
}

// Deserialize reads an Index written by Serialize, verifying the
// trailing checksum before trusting the layout.
func Deserialize(r io.Reader, listeners ...succinct.Listener) (*Index, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	if len(raw) < 8 {
		return nil, fmt.Errorf("index: truncated stream (%d bytes)", len(raw))
	}

	body, trailer := raw[:len(raw)-8], raw[len(raw)-8:]

	h, _ := xxhash.NewXXHash64(0)
	want := binary.BigEndian.Uint64(trailer)
	got := h.Hash(body)

	if want != got {
		return nil, fmt.Errorf("index: checksum mismatch (corrupt or truncated index file)")
	}

	br := bytes.NewReader(body)

	var n int64
	if err := binary.Read(br, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	var sigma32 uint32
	if err := binary.Read(br, binary.BigEndian, &sigma32); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	sigma := int(sigma32)
	alphabet := make([]byte, sigma)

	for i := range alphabet {
		var b uint32
		if err := binary.Read(br, binary.BigEndian, &b); err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}

		alphabet[i] = byte(b)
	}

	cum := make([]int64, sigma+2)

	for i := 1; i <= sigma; i++ {
		if err := binary.Read(br, binary.BigEndian, &cum[i]); err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
	}

	cum[sigma+1] = n + 1

	tree, err := wavelet.Deserialize(br, sigma+1, int(n)+1)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	samples, err := sample.Deserialize(br)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtDeserializeEnd, n, "", time.Time{}))

	return &Index{n: int(n), alphabet: alphabet, cum: cum, tree: tree, samples: samples}, nil
}

// WriteFile serializes the index and writes it atomically: a crash
// mid-write never leaves a corrupt file for a later ReadFile to trip
// over, since atomic.WriteFile stages to a temp file and renames into
// place only once the write fully succeeds.
func (this *Index) WriteFile(path string, listeners ...succinct.Listener) error {
	var buf bytes.Buffer

	if err := this.Serialize(&buf, listeners...); err != nil {
		return err
	}

	return atomic.WriteFile(path, &buf)
}

// ReadFile deserializes an index previously written with WriteFile.
func ReadFile(path string, listeners ...succinct.Listener) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	defer f.Close()

	return Deserialize(f, listeners...)
}
