// Package utils provides helpers for loading program images from disk.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// LoadFile loads the given file and performs decompression if necessary.
// The compression is asserted from the file extension: .gz, .xz,
// .zst, .lz4 and .br streams are decompressed, while for .zip and
// .7z archives the first file is returned. Anything else is
// returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// Decompress decompresses data according to the file extension ext.
func Decompress(ext string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		decoder = x
	case ".zst":
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer z.Close()
		decoder = z
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".br":
		decoder = brotli.NewReader(r)
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		f, err := zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		decoder = f
	case ".7z":
		archive, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(archive.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		f, err := archive.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		decoder = f
	default:
		// return the data as is
		return data, nil
	}

	return io.ReadAll(decoder)
}
