package fileutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
)

// copyChunkSize bounds how much data moves between cancellation checks.
const copyChunkSize = 1 << 20

// CopyFile streams src to dst, honoring ctx cancellation between chunks. On
// cancellation or failure the partially written destination file is removed;
// the source is never touched. The source modification time is preserved on
// the destination so repeated runs can fingerprint already-copied files.
func CopyFile(ctx context.Context, src, dst string) error {
	return copyFile(ctx, src, dst, false)
}

// CopyFileVerified behaves like CopyFile and additionally verifies the copy
// with a SHA-256 digest computed on both sides of the stream. The destination
// is removed on any mismatch.
func CopyFileVerified(ctx context.Context, src, dst string) error {
	return copyFile(ctx, src, dst, true)
}

func copyFile(ctx context.Context, src, dst string, verified bool) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	var reader io.Reader = in
	var writer io.Writer = out
	var srcHasher, dstHasher hash.Hash
	if verified {
		srcHasher = sha256.New()
		dstHasher = sha256.New()
		reader = io.TeeReader(in, srcHasher)
		writer = io.MultiWriter(out, dstHasher)
	}

	written, err := copyChunks(ctx, writer, reader)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}
	if verified && !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return errors.New("copy hash mismatch: file corrupted during copy")
	}

	// Propagate the source mtime so SameFingerprint holds on the next run.
	// A copy that cannot carry the mtime is removed like any other failure;
	// leaving it would make every later run re-copy over it anyway.
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("set destination times: %w", err)
	}
	return nil
}

func copyChunks(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, copyChunkSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, werr
			}
			if w != n {
				return written, io.ErrShortWrite
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return written, nil
			}
			return written, err
		}
	}
}

// SameFingerprint reports whether dst already holds a copy of src, judged by
// size and modification time. A missing destination is simply "not a copy";
// any other stat failure is returned to the caller.
func SameFingerprint(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat destination: %w", err)
	}
	if dstInfo.Size() != srcInfo.Size() {
		return false, nil
	}
	return dstInfo.ModTime().Equal(srcInfo.ModTime()), nil
}
