package fsops

import (
	"errors"
	"testing"
	"time"
)

var fakeNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFakeFilesystemListChildren(t *testing.T) {
	fs := NewFakeFilesystem()
	fs.AddDir("/root", fakeNow)
	fs.AddFile("/root/b.txt", fakeNow)
	fs.AddDir("/root/a", fakeNow)
	fs.AddFile("/root/a/deep.txt", fakeNow)

	entries, err := fs.ListChildren("/root")
	if err != nil {
		t.Fatalf("ListChildren failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 immediate children, got %v", entries)
	}
	if entries[0].Path != "/root/a" || !entries[0].IsDir {
		t.Errorf("expected /root/a first as directory, got %+v", entries[0])
	}
	if entries[1].Path != "/root/b.txt" || entries[1].IsDir {
		t.Errorf("expected /root/b.txt second as leaf, got %+v", entries[1])
	}
}

func TestFakeFilesystemListMissing(t *testing.T) {
	fs := NewFakeFilesystem()
	if _, err := fs.ListChildren("/nope"); err == nil {
		t.Error("expected error listing a missing directory")
	}
}

func TestFakeFilesystemRemoveRecordsCalls(t *testing.T) {
	fs := NewFakeFilesystem()
	fs.AddFile("/f.txt", fakeNow)

	if err := fs.Remove("/f.txt"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if fs.Exists("/f.txt") {
		t.Error("entry should be gone after Remove")
	}
	if len(fs.Calls) != 1 || fs.Calls[0] != "rm:/f.txt" {
		t.Errorf("expected call rm:/f.txt recorded, got %v", fs.Calls)
	}

	if err := fs.Remove("/f.txt"); err == nil {
		t.Error("expected error removing a missing entry")
	}
}

func TestFakeFilesystemRemoveNonEmptyDir(t *testing.T) {
	fs := NewFakeFilesystem()
	fs.AddDir("/d", fakeNow)
	fs.AddFile("/d/f.txt", fakeNow)

	if err := fs.Remove("/d"); err == nil {
		t.Error("expected error removing a non-empty directory")
	}
	if !fs.Exists("/d") {
		t.Error("directory must survive a failed Remove")
	}
}

func TestFakeFilesystemInjectedErrors(t *testing.T) {
	fs := NewFakeFilesystem()
	fs.AddDir("/d", fakeNow)
	fs.AddFile("/f.txt", fakeNow)

	listErr := errors.New("boom")
	fs.ListErr["/d"] = listErr
	if _, err := fs.ListChildren("/d"); !errors.Is(err, listErr) {
		t.Errorf("expected injected listing error, got %v", err)
	}

	rmErr := errors.New("denied")
	fs.RemoveErr["/f.txt"] = rmErr
	if err := fs.Remove("/f.txt"); !errors.Is(err, rmErr) {
		t.Errorf("expected injected remove error, got %v", err)
	}
	if !fs.Exists("/f.txt") {
		t.Error("entry must survive an injected Remove failure")
	}
}
