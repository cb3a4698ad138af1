package file

import "testing"

func TestWorkspaceInputName(t *testing.T) {
	if got := WorkspaceInputName("abc", "photo.HEIC"); got != "abc.heic" {
		t.Errorf("Expected abc.heic, got %s", got)
	}
}

func TestWorkspaceInputName_PlaceholderWithoutExtension(t *testing.T) {
	if got := WorkspaceInputName("abc", "photo"); got != "abc.dat" {
		t.Errorf("Expected abc.dat, got %s", got)
	}
}

func TestWorkspaceOutputName(t *testing.T) {
	if got := WorkspaceOutputName("abc", "PNG"); got != "abc.png" {
		t.Errorf("Expected abc.png, got %s", got)
	}
}

func TestDownloadName(t *testing.T) {
	if got := DownloadName("photo.heic", "png"); got != "converted_photo.png" {
		t.Errorf("Expected converted_photo.png, got %s", got)
	}
	if got := DownloadName("clip.old.mp4", "mp4"); got != "converted_clip.old.mp4" {
		t.Errorf("Expected converted_clip.old.mp4, got %s", got)
	}
	if got := DownloadName("noext", "webp"); got != "converted_noext.webp" {
		t.Errorf("Expected converted_noext.webp, got %s", got)
	}
}
