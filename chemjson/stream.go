/*
 * stream.go, part of chemcalc.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/chemcalc"
)

//DecodeRequest reads one line from stdin and decodes the request in it.
//It returns io.EOF, unchanged, when there is nothing else to read.
func DecodeRequest(stdin *bufio.Reader) (*Request, error) {
	line, err := stdin.ReadBytes('\n')
	if len(bytes.TrimSpace(line)) == 0 {
		if err == nil {
			//blank line, we just try the next one.
			return DecodeRequest(stdin)
		}
		return nil, err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	ret := new(Request)
	if err := json.Unmarshal(line, ret); err != nil {
		return nil, requestError("DecodeRequest", err.Error())
	}
	return ret, nil
}

//Send Marshals the response and writes it to out, followed by a newline.
func (R *Response) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("Response.Send", err)
	}
	return nil
}

//Serve reads requests from in, one per line, and writes the response
//to each, also one per line, to out, until in is exhausted.
//Requests that can't be decoded get a response with an invalid_request error,
//and the following ones are still processed.
//It returns nil when in ends, or the first error reading from in or writing to out.
func Serve(in io.Reader, out io.Writer) error {
	stdin := bufio.NewReader(in)
	for {
		req, err := DecodeRequest(stdin)
		if errors.Is(err, io.EOF) {
			return nil
		}
		var resp *Response
		var jerr *Error
		switch {
		case errors.As(err, &jerr):
			resp = &Response{Error: jerr}
		case err != nil:
			return err
		default:
			resp = Handle(req)
		}
		if err := resp.Send(out); err != nil {
			return err
		}
	}
}

//nopWriteCloser adds a Close method that does nothing to a writer.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//*zstd.Decoder doesn't implement io.ReadCloser, as its Close
//returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//NewWriter returns a writer that writes to w, compressing the data with zstd if compressed is true.
//The writer must be closed to flush the compressed data. Closing it doesn't close w.
func NewWriter(w io.Writer, compressed bool) (io.WriteCloser, error) {
	if !compressed {
		return nopWriteCloser{w}, nil
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

//NewReader returns a reader for the data in r, which is decompressed with zstd if compressed is true.
func NewReader(r io.Reader, compressed bool) (io.ReadCloser, error) {
	if !compressed {
		return io.NopCloser(r), nil
	}
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zstdReadCloser{d}, nil
}

//EncodeTubes writes the tubes of a serial dilution to out, one JSON object per line.
func EncodeTubes(tubes []chem.Tube, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	for _, t := range tubes {
		if err := enc.Encode(t); err != nil {
			return NewError("EncodeTubes", err)
		}
	}
	return nil
}

//DecodeTubes reads the tubes written by EncodeTubes.
func DecodeTubes(in io.Reader) ([]chem.Tube, *Error) {
	dec := json.NewDecoder(in)
	var tubes []chem.Tube
	for {
		var t chem.Tube
		err := dec.Decode(&t)
		if errors.Is(err, io.EOF) {
			return tubes, nil
		}
		if err != nil {
			return nil, requestError("DecodeTubes", err.Error())
		}
		tubes = append(tubes, t)
	}
}
