package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyJSON
	BodyMultipart
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyMultipart:
		return "multipart"
	default:
		return "none"
	}
}

// Body is a request payload. The set of implementations is closed: JSONBody
// and MultipartBody.
type Body interface {
	Kind() BodyKind
	// encode returns the payload and, for bodies that carry their own, the
	// content type to send.
	encode() (r io.Reader, contentType string, err error)
}

// JSONBody marshals Value as the request payload.
type JSONBody struct {
	Value any
}

func (JSONBody) Kind() BodyKind { return BodyJSON }

func (b JSONBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.Value)
	if err != nil {
		return nil, "", fmt.Errorf("marshal body: %w", err)
	}
	return bytes.NewReader(data), "", nil
}

type FormField struct {
	Name  string
	Value string
}

// FormFile is a file part read from Path on disk. FileName defaults to the
// base name of Path and ContentType to a guess from its extension.
type FormFile struct {
	Field       string
	Path        string
	FileName    string
	ContentType string
}

// MultipartBody is a multipart/form-data payload. Files are streamed from
// disk, so large videos are never held in memory.
type MultipartBody struct {
	Fields []FormField
	Files  []FormFile
}

func (MultipartBody) Kind() BodyKind { return BodyMultipart }

func (b MultipartBody) encode() (io.Reader, string, error) {
	files := make([]*os.File, 0, len(b.Files))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	for _, ff := range b.Files {
		f, err := os.Open(ff.Path)
		if err != nil {
			closeAll()
			return nil, "", fmt.Errorf("open %s: %w", ff.Field, err)
		}
		files = append(files, f)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer closeAll()
		pw.CloseWithError(b.write(mw, files))
	}()

	return pr, mw.FormDataContentType(), nil
}

func (b MultipartBody) write(mw *multipart.Writer, files []*os.File) error {
	for _, f := range b.Fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return err
		}
	}
	for i, ff := range b.Files {
		part, err := mw.CreatePart(filePartHeader(ff))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, files[i]); err != nil {
			return fmt.Errorf("copy %s: %w", ff.Field, err)
		}
	}
	return mw.Close()
}

// videoTypes covers upload formats missing from minimal system mime tables.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func filePartHeader(ff FormFile) textproto.MIMEHeader {
	name := ff.FileName
	if name == "" {
		name = filepath.Base(ff.Path)
	}
	ct := ff.ContentType
	if ct == "" {
		ext := strings.ToLower(filepath.Ext(name))
		if ct = mime.TypeByExtension(ext); ct == "" {
			ct = videoTypes[ext]
		}
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(ff.Field), quoteEscaper.Replace(name)))
	h.Set("Content-Type", ct)
	return h
}
