package mail

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/message"
)

var fakePNG = []byte("\x89PNG\r\n\x1a\n" + strings.Repeat("bouquet", 40))

func testContent() Content {
	return Content{
		Seed:    "2024-01-01",
		Date:    time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		Message: message.Generate("2024-01-01", 8),
		PNG:     fakePNG,
	}
}

type parsedPart struct {
	header map[string][]string
	body   []byte
}

func readParts(t *testing.T, r io.Reader, boundary string) []parsedPart {
	t.Helper()
	mr := multipart.NewReader(r, boundary)
	var parts []parsedPart
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			return parts
		}
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		body, err := io.ReadAll(p)
		if err != nil {
			t.Fatal(err)
		}
		parts = append(parts, parsedPart{header: p.Header, body: body})
	}
}

func TestComposeStructure(t *testing.T) {
	cfg := validConfig()
	c := testContent()
	msg, err := Compose(cfg, c)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	m, err := mail.ReadMessage(bytes.NewReader(msg.Data))
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	subject, err := new(mime.WordDecoder).DecodeHeader(m.Header.Get("Subject"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "🌸 " + c.Message.Subject; subject != want || msg.Subject != want {
		t.Errorf("subject = %q, want %q", subject, want)
	}
	if got := m.Header.Get("To"); got != cfg.To {
		t.Errorf("To = %q", got)
	}
	if from, err := m.Header.AddressList("From"); err != nil || from[0].Name != DefaultFromName {
		t.Errorf("From = %v, %v", from, err)
	}
	if m.Header.Get("Message-ID") == "" {
		t.Error("missing Message-ID")
	}

	mediaType, params, err := mime.ParseMediaType(m.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/related" {
		t.Fatalf("Content-Type = %q, %v", mediaType, err)
	}
	related := readParts(t, m.Body, params["boundary"])
	if len(related) != 2 {
		t.Fatalf("related parts = %d, want 2", len(related))
	}

	altType, altParams, err := mime.ParseMediaType(related[0].header["Content-Type"][0])
	if err != nil || altType != "multipart/alternative" {
		t.Fatalf("first part = %q, %v", altType, err)
	}
	alt := readParts(t, bytes.NewReader(related[0].body), altParams["boundary"])
	if len(alt) != 2 {
		t.Fatalf("alternative parts = %d, want 2", len(alt))
	}
	text := strings.ReplaceAll(string(alt[0].body), "\r\n", "\n")
	html := strings.ReplaceAll(string(alt[1].body), "\r\n", "\n")
	if !strings.HasPrefix(text, c.Message.Text) || !strings.Contains(text, c.Message.Signature) {
		t.Errorf("plain text part = %q", text)
	}
	if !strings.Contains(html, `src="cid:bouquet-daily"`) {
		t.Error("html does not reference the inline image")
	}
	if !strings.Contains(html, "Monday, January 1") {
		t.Error("html lacks the date label")
	}
	if n := strings.Count(html, "<p>"); n < len(c.Message.Paragraphs()) {
		t.Errorf("html has %d paragraphs, want at least %d", n, len(c.Message.Paragraphs()))
	}
	if !strings.Contains(html, `href="https://bouquet.example.com?seed=2024-01-01"`) {
		t.Error("html lacks the view link")
	}

	img := related[1]
	if got := img.header["Content-Id"]; len(got) == 0 || got[0] != "<bouquet-daily>" {
		t.Errorf("Content-ID = %v", got)
	}
	if _, p, _ := mime.ParseMediaType(img.header["Content-Disposition"][0]); p["filename"] != "bouquet-2024-01-01.png" {
		t.Errorf("filename = %q", p["filename"])
	}
	data, err := base64.StdEncoding.DecodeString(string(img.body))
	if err != nil {
		t.Fatalf("decode image: %v", err)
	}
	if !bytes.Equal(data, fakePNG) {
		t.Error("image bytes differ")
	}
	for _, line := range strings.Split(string(img.body), "\r\n") {
		if len(line) > 76 {
			t.Fatalf("base64 line of %d characters", len(line))
		}
	}
}

func TestComposeEscapesHTML(t *testing.T) {
	c := testContent()
	c.Message = message.Message{Subject: "<b>hi</b>", Text: "a & b", Signature: "me"}
	msg, err := Compose(validConfig(), c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(msg.Data, []byte("&lt;b&gt;hi&lt;/b&gt;")) {
		t.Error("subject not escaped in html")
	}
	if !bytes.Contains(msg.Data, []byte("a &amp; b")) {
		t.Error("text not escaped in html")
	}
}

func TestComposeRequiresPNG(t *testing.T) {
	c := testContent()
	c.PNG = nil
	if _, err := Compose(validConfig(), c); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v", err)
	}
}

func TestViewURL(t *testing.T) {
	tests := []struct {
		site, seed, want string
	}{
		{"https://x.dev", "2024-01-01", "https://x.dev?seed=2024-01-01"},
		{"https://x.dev/?ref=mail", "a b", "https://x.dev/?ref=mail&seed=a+b"},
	}
	for _, tt := range tests {
		if got := ViewURL(tt.site, tt.seed); got != tt.want {
			t.Errorf("ViewURL(%q, %q) = %q, want %q", tt.site, tt.seed, got, tt.want)
		}
	}
}
