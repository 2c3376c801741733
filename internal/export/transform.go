package export

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"io"
	"logistics/pkg/serrors"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

// Transformer rewrites a serialized byte stream and can undo the rewrite.
type Transformer interface {
	Name() string
	// Extension is appended to the file name of a transformed export.
	Extension() string
	ContentType() string
	Apply(data []byte) ([]byte, error)
	Revert(data []byte) ([]byte, error)
}

// innerAware is implemented by transformers whose output depends on the
// extension of the exporter they wrap.
type innerAware interface {
	forInner(ext string) Transformer
}

// Compression returns the transformer named name: "zip", "gzip" or the
// empty string for none.
func Compression(name string) (Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return nil, nil
	case "zip":
		return Zip(), nil
	case "gzip", "gz":
		return Gzip(), nil
	default:
		return nil, serrors.With(serrors.ErrUnsupportedFormat,
			"unsupported compression %q, expected zip or gzip", name)
	}
}

const keySize = 16

type encrypter struct {
	key [keySize]byte
}

// Encrypt seals data with AES-128-GCM. The key is the first 16 bytes of the
// SHA-256 digest of passphrase; each Apply draws a fresh nonce and prefixes
// it to the ciphertext.
func Encrypt(passphrase string) Transformer {
	sum := sha256.Sum256([]byte(passphrase))
	e := encrypter{}
	copy(e.key[:], sum[:keySize])

	return e
}

func (encrypter) Name() string        { return "aes" }
func (encrypter) Extension() string   { return ".enc" }
func (encrypter) ContentType() string { return "application/octet-stream" }

func (e encrypter) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key[:])
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not create cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not create cipher")
	}

	return gcm, nil
}

func (e encrypter) Apply(data []byte) ([]byte, error) {
	gcm, err := e.aead()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not generate nonce")
	}

	return gcm.Seal(nonce, nonce, data, nil), nil
}

func (e encrypter) Revert(data []byte) ([]byte, error) {
	gcm, err := e.aead()
	if err != nil {
		return nil, err
	}
	if len(data) < gcm.NonceSize() {
		return nil, serrors.With(serrors.ErrTransform, "ciphertext is too short")
	}

	nonce, sealed := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not decrypt")
	}

	return plain, nil
}

const zipEntryBase = "result"

type zipper struct {
	entry string
}

// Zip stores data as the single entry of a zip archive. When wrapping an
// exporter the entry is named "result" plus the exporter's extension.
func Zip() Transformer {
	return zipper{entry: zipEntryBase}
}

func (zipper) Name() string        { return "zip" }
func (zipper) Extension() string   { return ".zip" }
func (zipper) ContentType() string { return "application/zip" }

func (z zipper) forInner(ext string) Transformer {
	return zipper{entry: zipEntryBase + ext}
}

func (z zipper) Apply(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	w, err := zw.Create(z.entry)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not create zip entry")
	}
	if _, err := w.Write(data); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not write zip entry")
	}
	if err := zw.Close(); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not finish zip archive")
	}

	return buf.Bytes(), nil
}

func (zipper) Revert(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not open zip archive")
	}
	if len(zr.File) != 1 {
		return nil, serrors.With(serrors.ErrTransform, "zip archive has %d entries, expected 1", len(zr.File))
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not open zip entry")
	}
	defer func() { _ = rc.Close() }()

	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not read zip entry")
	}

	return out, nil
}

type gzipper struct{}

// Gzip compresses data as a gzip stream.
func Gzip() Transformer {
	return gzipper{}
}

func (gzipper) Name() string        { return "gzip" }
func (gzipper) Extension() string   { return ".gz" }
func (gzipper) ContentType() string { return "application/gzip" }

func (gzipper) Apply(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	gw := gzip.NewWriter(buf)
	if _, err := gw.Write(data); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not compress")
	}
	if err := gw.Close(); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not compress")
	}

	return buf.Bytes(), nil
}

func (gzipper) Revert(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not open gzip stream")
	}
	defer func() { _ = gr.Close() }()

	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransform, err, "could not decompress")
	}

	return out, nil
}
