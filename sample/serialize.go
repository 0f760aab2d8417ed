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

package sample

import (
	"encoding/binary"
	"io"

	"github.com/lefromage/succinct/bitpack"
)

// Serialize writes rate (4B), n (8B), then sampledSA and sampledISA in
// turn, each as length (8B), width (1B) and raw words.
func (this *Table) Serialize(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint32(this.rate)); err != nil {
		return err
	}

	if err := binary.Write(w, binary.BigEndian, int64(this.n)); err != nil {
		return err
	}

	if err := writeArray(w, this.sampledSA); err != nil {
		return err
	}

	return writeArray(w, this.sampledISA)
}

func writeArray(w io.Writer, a *bitpack.Array) error {
	if err := binary.Write(w, binary.BigEndian, int64(a.Len())); err != nil {
		return err
	}

	if err := binary.Write(w, binary.BigEndian, uint8(a.Width())); err != nil {
		return err
	}

	for _, word := range a.Words() {
		if err := binary.Write(w, binary.BigEndian, word); err != nil {
			return err
		}
	}

	return nil
}

// Deserialize reads a Table written by Serialize.
func Deserialize(r io.Reader) (*Table, error) {
	var rate uint32
	if err := binary.Read(r, binary.BigEndian, &rate); err != nil {
		return nil, err
	}

	var n int64
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}

	sa, err := readArray(r)
	if err != nil {
		return nil, err
	}

	isa, err := readArray(r)
	if err != nil {
		return nil, err
	}

	return FromArrays(sa, isa, int(rate), int(n)), nil
}

func readArray(r io.Reader) (*bitpack.Array, error) {
	var length int64
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, err
	}

	var width uint8
	if err := binary.Read(r, binary.BigEndian, &width); err != nil {
		return nil, err
	}

	nbWords := (int(length)*int(width) + 63) / 64
	if nbWords == 0 {
		nbWords = 1
	}

	words := make([]uint64, nbWords)

	for i := range words {
		if err := binary.Read(r, binary.BigEndian, &words[i]); err != nil {
			return nil, err
		}
	}

	return bitpack.FromWords(words, int(length), uint(width))
}
