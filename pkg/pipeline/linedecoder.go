package pipeline

import "bytes"

// LineDecoder reassembles newline-delimited records from a chunked byte
// stream. Chunk boundaries carry no meaning: a record may span many chunks
// and one chunk may carry many records. Splitting on the newline byte is safe
// for UTF-8 payloads since 0x0A never appears inside a multi-byte sequence.
type LineDecoder struct {
	buf []byte
}

// Append adds one chunk and returns every record completed by it, in order.
// A trailing partial record stays buffered for the next call. Carriage
// returns before the newline are stripped.
func (d *LineDecoder) Append(chunk []byte) []string {
	d.buf = append(d.buf, chunk...)

	var lines []string
	for {
		i := bytes.IndexByte(d.buf, '\n')
		if i < 0 {
			return lines
		}
		line := d.buf[:i]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		lines = append(lines, string(line))
		d.buf = d.buf[i+1:]
	}
}

// Flush returns any buffered partial record and resets the decoder. Used at
// end of stream for producers that omit the final newline.
func (d *LineDecoder) Flush() (string, bool) {
	if len(d.buf) == 0 {
		return "", false
	}
	line := string(bytes.TrimSuffix(d.buf, []byte{'\r'}))
	d.buf = nil
	return line, true
}
