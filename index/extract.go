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

import "fmt"

// CharAt returns the byte at text position i. Panics with ErrRange if
// i is out of [0, n).
func (this *Index) CharAt(i int) byte {
	if i < 0 || i >= this.n {
		panic(fmt.Errorf("%w: charAt(%d), len=%d", ErrRange, i, this.n))
	}

	row := lookupISA(this, i+1)
	return this.byteOf(this.tree.Access(row))
}

// Extract returns T[offset:offset+min(len, n-offset)]. Extraction
// walks lookupLF 'len' times from the row at offset+len, emitting one
// byte per step and reversing the result, per the backward-stepping
// extraction algorithm.
func (this *Index) Extract(offset, length int) ([]byte, error) {
	if offset < 0 || offset > this.n {
		return nil, fmt.Errorf("%w: extract offset=%d, len=%d", ErrRange, offset, this.n)
	}

	if length < 0 {
		return nil, fmt.Errorf("%w: extract negative length %d", ErrRange, length)
	}

	if offset+length > this.n {
		length = this.n - offset
	}

	out := make([]byte, length)
	row := lookupISA(this, offset+length)

	for k := length - 1; k >= 0; k-- {
		sym := this.tree.Access(row)
		out[k] = this.byteOf(sym)
		row = lookupLF(this, row)
	}

	return out, nil
}

// ExtractUntil returns T[offset:] up to (not including) the first byte
// equal to delim, or to the end of the text if delim never occurs.
func (this *Index) ExtractUntil(offset int, delim byte) ([]byte, error) {
	if offset < 0 || offset > this.n {
		return nil, fmt.Errorf("%w: extractUntil offset=%d, len=%d", ErrRange, offset, this.n)
	}

	var out []byte

	for i := offset; i < this.n; i++ {
		b := this.CharAt(i)

		if b == delim {
			break
		}

		out = append(out, b)
	}

	return out, nil
}

// ExtractShort reads a 2-byte big-endian integer at offset.
func (this *Index) ExtractShort(offset int) (uint16, error) {
	b, err := this.Extract(offset, 2)
	if err != nil {
		return 0, err
	}

	if len(b) < 2 {
		return 0, fmt.Errorf("%w: extractShort at %d truncated by end of text", ErrRange, offset)
	}

	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// ExtractInt reads a 4-byte big-endian integer at offset.
func (this *Index) ExtractInt(offset int) (uint32, error) {
	b, err := this.Extract(offset, 4)
	if err != nil {
		return 0, err
	}

	if len(b) < 4 {
		return 0, fmt.Errorf("%w: extractInt at %d truncated by end of text", ErrRange, offset)
	}

	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}

	return v, nil
}

// ExtractLong reads an 8-byte big-endian integer at offset.
func (this *Index) ExtractLong(offset int) (uint64, error) {
	b, err := this.Extract(offset, 8)
	if err != nil {
		return 0, err
	}

	if len(b) < 8 {
		return 0, fmt.Errorf("%w: extractLong at %d truncated by end of text", ErrRange, offset)
	}

	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v, nil
}

// Compare lexicographically compares buf against T[i:i+len(buf)),
// skipping the first 'skip' bytes of buf. Returns -1, 0 or +1.
func (this *Index) Compare(buf []byte, i, skip int) (int, error) {
	if i < 0 || i > this.n {
		return 0, fmt.Errorf("%w: compare at %d, len=%d", ErrRange, i, this.n)
	}

	for k := skip; k < len(buf); k++ {
		pos := i + (k - skip)

		if pos >= this.n {
			return 1, nil // buf has more bytes than remain in T: buf is "greater"
		}

		tb := this.CharAt(pos)

		if buf[k] < tb {
			return -1, nil
		}

		if buf[k] > tb {
			return 1, nil
		}
	}

	return 0, nil
}
