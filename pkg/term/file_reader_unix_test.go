//go:build unix

package term

import (
	"os"
	"testing"
	"time"
)

func TestFileReader_ReadByteWithTimeout(t *testing.T) {
	rd, w := setupFileReader(t)

	w.WriteString("ab")
	for _, want := range []byte{'a', 'b'} {
		b, err := rd.ReadByteWithTimeout(-1)
		if b != want || err != nil {
			t.Errorf("got (%q, %v), want (%q, nil)", b, err, want)
		}
	}
}

func TestFileReader_ReadByteWithTimeout_Timeout(t *testing.T) {
	rd, _ := setupFileReader(t)

	_, err := rd.ReadByteWithTimeout(time.Millisecond)
	if err != errTimeout {
		t.Errorf("got err %v, want errTimeout", err)
	}
	if !IsReadErrorRecoverable(err) {
		t.Errorf("got unrecoverable err %v, want recoverable", err)
	}
}

func TestFileReader_Stop(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer pr.Close()
	defer pw.Close()
	rd, err := newFileReader(pr)
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()

	errCh := make(chan error, 1)
	go func() {
		_, err := rd.ReadByteWithTimeout(-1)
		errCh <- err
	}()
	// Wait for the read to start. There is no way to reliably detect this,
	// so just sleep for a while.
	time.Sleep(10 * time.Millisecond)
	if err := rd.Stop(); err != nil {
		t.Errorf("Stop -> %v, want nil", err)
	}
	if err := <-errCh; err != ErrStopped {
		t.Errorf("got err %v, want ErrStopped", err)
	}
}
