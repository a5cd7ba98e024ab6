package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// openMaybeGzip opens path and transparently decompresses it if its
// first two bytes are the gzip magic number, so large reference
// datasets can be stored as .gz without any caller-visible difference.
// The returned closer closes the underlying file as well as any gzip
// reader wrapping it.
func openMaybeGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %w", path, err)
	}

	buffered := bufio.NewReader(f)
	peek, err := buffered.Peek(2)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("ingest: peeking %s: %w", path, err)
	}

	if len(peek) == 2 && peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("ingest: opening gzip stream %s: %w", path, err)
		}
		return &gzipFileReader{gz: gz, file: f}, nil
	}

	return &plainFileReader{r: buffered, file: f}, nil
}

type gzipFileReader struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipFileReader) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipFileReader) Close() error {
	gzErr := g.gz.Close()
	fErr := g.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

type plainFileReader struct {
	r    *bufio.Reader
	file *os.File
}

func (p *plainFileReader) Read(b []byte) (int, error) { return p.r.Read(b) }
func (p *plainFileReader) Close() error                { return p.file.Close() }
