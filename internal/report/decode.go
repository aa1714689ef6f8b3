package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// lookupEncoding resolves a WHATWG label first, then an IANA name.
func lookupEncoding(label string) (encoding.Encoding, string, error) {
	label = strings.TrimSpace(label)
	if enc, err := htmlindex.Get(label); err == nil {
		name, _ := htmlindex.Name(enc)
		return enc, name, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, "", fmt.Errorf("encoding %q is not supported", label)
	}
	name, _ := ianaindex.IANA.Name(enc)
	return enc, name, nil
}

// decodeText converts raw bytes to a string under enc. UTF-8 input must be
// valid; other encodings must not produce replacement characters.
func decodeText(raw []byte, enc encoding.Encoding) (string, error) {
	if enc == unicode.UTF8 || enc == encoding.Nop {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid utf-8 at byte %d", firstInvalidUTF8(raw))
		}
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	text := string(out)
	if i := strings.IndexRune(text, utf8.RuneError); i >= 0 {
		return "", fmt.Errorf("undecodable byte sequence near character offset %d", utf8.RuneCountInString(text[:i]))
	}
	return strings.TrimPrefix(text, "\ufeff"), nil
}

func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// mojibake returns label as it appears when its UTF-8 bytes are read as
// Windows-1252, or "" when label is plain ASCII.
func mojibake(label string) string {
	label = norm.NFC.String(label)
	garbled, err := charmap.Windows1252.NewDecoder().String(label)
	if err != nil || garbled == label {
		return ""
	}
	return garbled
}

// checkMojibake fails when the decoded text carries a garbled form of an
// expected header, which means the configured encoding does not match the file.
func checkMojibake(text string, columns map[string]string) error {
	for _, src := range sortedKeys(columns) {
		if g := mojibake(src); g != "" && strings.Contains(text, g) {
			return fmt.Errorf("encoding mismatch: found %q where %q was expected", g, src)
		}
	}
	return nil
}

// unwrapTransfer returns the body of the first text/html part of a MIME
// archive when that part is quoted-printable or base64 encoded. Anything that
// is not such an archive is returned unchanged with ok=false.
func unwrapTransfer(raw []byte) ([]byte, bool) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return raw, false
	}
	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil {
		return raw, false
	}
	if !strings.HasPrefix(mediaType, "multipart/") {
		return singlePart(raw, msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	}
	boundary := params["boundary"]
	if boundary == "" {
		return raw, false
	}
	mr := multipart.NewReader(msg.Body, boundary)
	for {
		// NextRawPart keeps the transfer encoding so it can be inspected below.
		part, err := mr.NextRawPart()
		if err != nil {
			return raw, false
		}
		ct := part.Header.Get("Content-Type")
		if !isHTML(ct) {
			continue
		}
		return singlePart(raw, ct, part.Header.Get("Content-Transfer-Encoding"), part)
	}
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "text/html"
}

func singlePart(raw []byte, contentType, transfer string, r io.Reader) ([]byte, bool) {
	if !isHTML(contentType) {
		return raw, false
	}
	switch strings.ToLower(strings.TrimSpace(transfer)) {
	case "quoted-printable":
		b, err := io.ReadAll(quotedprintable.NewReader(r))
		if err != nil {
			return raw, false
		}
		return b, true
	case "base64":
		b, err := io.ReadAll(base64.NewDecoder(base64.StdEncoding, r))
		if err != nil {
			return raw, false
		}
		return b, true
	}
	return raw, false
}
