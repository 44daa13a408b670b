package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/amurant/transcode"
)

var convertFlags = struct {
	from *string
	to   *string
	out  *string
}{}

const (
	encUTF8   = "utf8"
	encUTF16  = "utf16"
	encLatin1 = "latin1"
)

func init() {
	cmd := &cobra.Command{
		Use:     "convert <file>",
		Short:   "Convert a file between UTF-8, UTF-16 and Latin-1",
		Example: `  transcode convert --from utf16 --to utf8 input.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runConvert,
	}
	convertFlags.from = cmd.Flags().StringP("from", "f", encUTF8, "source encoding: one of utf8|utf16|latin1")
	convertFlags.to = cmd.Flags().StringP("to", "t", encUTF8, "destination encoding: one of utf8|utf16|latin1")
	convertFlags.out = cmd.Flags().StringP("output", "o", "-", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, to := *convertFlags.from, *convertFlags.to
	if !validEncodingName(from) {
		return fmt.Errorf("invalid --from encoding: %v", from)
	}
	if !validEncodingName(to) {
		return fmt.Errorf("invalid --to encoding: %v", to)
	}

	data, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	out, err := convert(data, from, to)
	if err != nil {
		return err
	}
	log.Printf("converted %s: %d bytes (%s) -> %d bytes (%s)", args[0], len(data), from, len(out), to)

	return writeOutput(*convertFlags.out, out)
}

func validEncodingName(name string) bool {
	return name == encUTF8 || name == encUTF16 || name == encLatin1
}

// convert dispatches on the (from, to) pair. The same-encoding cases
// pass the bytes through unchanged rather than round-tripping them
// through a decode/encode pair that would have no effect.
func convert(src []byte, from, to string) ([]byte, error) {
	if from == to {
		return src, nil
	}

	switch from {
	case encUTF8:
		if !transcode.IsUTF8(src) {
			upTo := transcode.ValidUpTo(src)
			return nil, fmt.Errorf("input is not valid UTF-8 at byte offset %d", upTo)
		}
		switch to {
		case encUTF16:
			return utf16ToBytes(utf8ToUTF16(src)), nil
		case encLatin1:
			return utf8ToLatin1(src), nil
		}

	case encUTF16:
		units := bytesToUTF16(src)
		switch to {
		case encUTF8:
			return utf16ToUTF8Chunked(units), nil
		case encLatin1:
			dst := make([]byte, len(units))
			transcode.LossyConvertUTF16ToLatin1(units, dst)
			return dst, nil
		}

	case encLatin1:
		switch to {
		case encUTF8:
			return latin1ToUTF8Chunked(src), nil
		case encUTF16:
			dst := make([]uint16, len(src))
			transcode.ConvertLatin1ToUTF16(src, dst)
			return utf16ToBytes(dst), nil
		}
	}

	return nil, fmt.Errorf("unsupported conversion: %s to %s", from, to)
}

// chunkWindow is the fixed-size destination buffer the partial
// converters write into per call. A real caller would size this to
// its I/O buffer; a small constant here exercises the resumption path
// instead of converting everything in one shot.
const chunkWindow = 64

// utf16ToUTF8Chunked drives ConvertUTF16ToUTF8Partial to completion,
// resuming at src[read:] after each call the way any caller chunking a
// large buffer through the bounded converter would.
func utf16ToUTF8Chunked(src []uint16) []byte {
	var out []byte
	buf := make([]byte, chunkWindow)
	for len(src) > 0 {
		// Hand over at most as many units as are certain to fit in the
		// window (3 bytes each), and never end a chunk on a high
		// surrogate, so no code point is cut off by the window edge.
		chunk := src
		if len(chunk) > chunkWindow/3 {
			chunk = chunk[:chunkWindow/3]
			if last := chunk[len(chunk)-1]; last >= 0xD800 && last <= 0xDBFF {
				chunk = chunk[:len(chunk)-1]
			}
		}
		read, written := transcode.ConvertUTF16ToUTF8Partial(chunk, buf)
		out = append(out, buf[:written]...)
		src = src[read:]
	}
	return out
}

// latin1ToUTF8Chunked drives ConvertLatin1ToUTF8Partial the same way.
func latin1ToUTF8Chunked(src []byte) []byte {
	var out []byte
	buf := make([]byte, chunkWindow)
	for len(src) > 0 {
		read, written := transcode.ConvertLatin1ToUTF8Partial(src, buf)
		out = append(out, buf[:written]...)
		src = src[read:]
	}
	return out
}

func utf8ToUTF16(src []byte) []uint16 {
	dst := make([]uint16, len(src)+1)
	n := transcode.ConvertUTF8ToUTF16(src, dst)
	return dst[:n]
}

func utf8ToLatin1(src []byte) []byte {
	dst := make([]byte, len(src))
	n := transcode.LossyConvertUTF8ToLatin1(src, dst)
	return dst[:n]
}

// utf16ToBytes and bytesToUTF16 use the platform's native byte order,
// matching the package's native-endian contract for in-memory UTF-16.
func utf16ToBytes(units []uint16) []byte {
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.NativeEndian.PutUint16(out[2*i:], u)
	}
	return out
}

func bytesToUTF16(b []byte) []uint16 {
	n := len(b) / 2
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = binary.NativeEndian.Uint16(b[2*i:])
	}
	return units
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
