package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venooo/dailybouquet/pkg/buildinfo"
	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/message"
	"github.com/venooo/dailybouquet/pkg/pipeline"
)

// ImageCID is the content ID the HTML body uses to reference the bouquet.
const ImageCID = "bouquet-daily"

// SubjectPrefix is prepended to every subject line.
const SubjectPrefix = "🌸 "

// Content is what goes into one daily email.
type Content struct {
	Seed    string
	Date    time.Time
	Message message.Message
	PNG     []byte
}

// Message is a composed RFC 5322 message ready for delivery.
type Message struct {
	From    string
	To      []string
	Subject string
	Data    []byte
}

// ViewURL links to the web app showing seed.
func ViewURL(site, seed string) string {
	sep := "?"
	if strings.Contains(site, "?") {
		sep = "&"
	}
	return site + sep + "seed=" + url.QueryEscape(seed)
}

// Compose builds a multipart/related message: an HTML card with the
// bouquet inline as cid:bouquet-daily, a plain-text alternative, and the
// PNG itself.
func Compose(cfg Config, c Content) (*Message, error) {
	if len(c.PNG) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "email requires a rendered PNG")
	}
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	subject := SubjectPrefix + c.Message.Subject
	link := ViewURL(cfg.SiteURL, c.Seed)

	html, err := renderHTML(c, link)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render email template")
	}

	var buf bytes.Buffer
	related := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("From", cfg.From())
	h.Set("To", cfg.To)
	h.Set("Subject", mime.QEncoding.Encode("utf-8", subject))
	h.Set("Date", c.Date.Format(time.RFC1123Z))
	h.Set("Message-ID", "<"+uuid.NewString()+"@"+domain(cfg.SMTPUser)+">")
	h.Set("MIME-Version", "1.0")
	h.Set("X-Mailer", buildinfo.UserAgent())
	h.Set("Content-Type", "multipart/related; boundary="+related.Boundary())
	writeHeader(&buf, h)

	alt, err := alternative(plainText(c.Message, link), html)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build message body")
	}
	part, err := related.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"multipart/alternative; boundary=" + alt.boundary},
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build message body")
	}
	if _, err := part.Write(alt.body); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build message body")
	}

	name := pipeline.FileName(c.Seed, pipeline.FormatPNG)
	img, err := related.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {mime.FormatMediaType("image/png", map[string]string{"name": name})},
		"Content-Transfer-Encoding": {"base64"},
		"Content-ID":                {"<" + ImageCID + ">"},
		"Content-Disposition":       {mime.FormatMediaType("inline", map[string]string{"filename": name})},
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "attach image")
	}
	if err := writeBase64(img, c.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "attach image")
	}
	if err := related.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "finish message")
	}

	return &Message{
		From:    cfg.SMTPUser,
		To:      []string{cfg.To},
		Subject: subject,
		Data:    buf.Bytes(),
	}, nil
}

type multipartBody struct {
	boundary string
	body     []byte
}

func alternative(text, html string) (multipartBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range []struct{ ctype, body string }{
		{"text/plain; charset=utf-8", text},
		{"text/html; charset=utf-8", html},
	} {
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.ctype},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return multipartBody{}, err
		}
		qp := quotedprintable.NewWriter(part)
		if _, err := io.WriteString(qp, p.body); err != nil {
			return multipartBody{}, err
		}
		if err := qp.Close(); err != nil {
			return multipartBody{}, err
		}
	}
	if err := w.Close(); err != nil {
		return multipartBody{}, err
	}
	return multipartBody{boundary: w.Boundary(), body: buf.Bytes()}, nil
}

func plainText(m message.Message, link string) string {
	return m.Text + "\n\n" + m.Signature + "\n\nView in app: " + link + "\n"
}

func writeHeader(w *bytes.Buffer, h textproto.MIMEHeader) {
	for _, k := range []string{"From", "To", "Subject", "Date", "Message-ID", "MIME-Version", "X-Mailer", "Content-Type"} {
		fmt.Fprintf(w, "%s: %s\r\n", k, h.Get(k))
	}
	w.WriteString("\r\n")
}

// writeBase64 writes data base64-encoded in 76 character lines.
func writeBase64(w io.Writer, data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	for len(enc) > 76 {
		if _, err := io.WriteString(w, enc[:76]+"\r\n"); err != nil {
			return err
		}
		enc = enc[76:]
	}
	_, err := io.WriteString(w, enc+"\r\n")
	return err
}

func domain(addr string) string {
	if i := strings.LastIndexByte(addr, '@'); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}

type htmlData struct {
	Date       string
	Title      string
	Paragraphs []string
	Signature  string
	Link       string
	CID        template.URL
}

func renderHTML(c Content, link string) (string, error) {
	var buf bytes.Buffer
	err := cardTemplate.Execute(&buf, htmlData{
		Date:       c.Date.Format("Monday, January 2"),
		Title:      c.Message.Subject,
		Paragraphs: c.Message.Paragraphs(),
		Signature:  c.Message.Signature,
		Link:       link,
		CID:        template.URL("cid:" + ImageCID),
	})
	return buf.String(), err
}

var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html>
<head>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<meta name="color-scheme" content="light"/>
<style>
body { margin: 0; padding: 0; background-color: #F5F5F7; color: #1d1d1f;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
.wrapper { width: 100%; background-color: #F5F5F7; padding: 40px 0 60px; }
.card { max-width: 600px; margin: 0 auto; background-color: #FFFFFF; border-radius: 24px; overflow: hidden; }
.header { padding: 40px 40px 20px; text-align: center; }
.date { font-size: 13px; font-weight: 600; text-transform: uppercase; letter-spacing: 0.5px; color: #86868b; }
h1 { font-family: "Playfair Display", Georgia, serif; font-size: 34px; margin: 8px 0 0; line-height: 1.1; }
.hero { width: 100%; height: auto; display: block; }
.content { padding: 10px 48px 48px; }
.content p { font-size: 19px; line-height: 1.6; }
.signature { margin-top: 32px; font-family: "Playfair Display", Georgia, serif; font-size: 24px; font-style: italic; }
.cta { text-align: center; margin-top: 40px; }
.cta a { display: inline-block; background-color: #007AFF; color: #ffffff; font-size: 15px; font-weight: 600;
  padding: 14px 28px; border-radius: 98px; text-decoration: none; }
.footer { text-align: center; padding-top: 40px; color: #86868b; font-size: 12px; }
@media only screen and (max-width: 600px) {
  .card { border-radius: 0; }
  .content { padding: 32px 24px; }
}
</style>
</head>
<body>
<div class="wrapper">
<div class="card">
<div class="header">
<div class="date">{{.Date}}</div>
<h1>{{.Title}}</h1>
</div>
<img src="{{.CID}}" alt="Your Daily Bouquet" class="hero"/>
<div class="content">
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}<div class="signature">{{.Signature}} ❤️</div>
<div class="cta"><a href="{{.Link}}">View in App</a></div>
</div>
</div>
<div class="footer"><p>Sent with love</p></div>
</div>
</body>
</html>
`))
