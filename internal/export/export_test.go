package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/proplens/themescope/pkg/themescope/internalerr"
)

const arrayExport = `[
  {
    "username": "green_dev",
    "full_name": "Green Dev",
    "followers": 1000,
    "country": "UAE",
    "posts": [
      {
        "upload_date": "2024-03-15",
        "caption": "Solar panels",
        "hashtags": ["eco"],
        "number_of_likes": 10,
        "number_of_comments": 2,
        "video_view_count": null,
        "url": "https://posts.example/1"
      }
    ]
  },
  {"username": "city_homes", "country": "UK", "posts": []}
]`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileArray(t *testing.T) {
	data, err := LoadFile(writeExport(t, arrayExport))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(data))
	}
	if data[0].Username != "green_dev" || data[0].Followers != 1000 {
		t.Errorf("unexpected first account %+v", data[0])
	}

	post := data[0].Posts[0]
	if post.Likes != 10 || post.Comments != 2 {
		t.Errorf("unexpected post counts %+v", post)
	}
	if post.VideoViews != 0 {
		t.Errorf("null video count should decode to zero, got %d", post.VideoViews)
	}
	if post.Hashtags[0] != "eco" {
		t.Errorf("unexpected hashtags %v", post.Hashtags)
	}
}

func TestLoadFileJSONL(t *testing.T) {
	content := `{"username": "green_dev", "posts": []}
{"username": "city_homes", "posts": []}
`
	data, err := LoadFile(writeExport(t, content))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(data) != 2 || data[1].Username != "city_homes" {
		t.Errorf("unexpected corpus %+v", data)
	}
}

func TestLoadFileJSONLSkipsMalformed(t *testing.T) {
	content := `{"username": "green_dev"}
this line is not json
{"username": "city_homes"}`

	data, err := LoadFile(writeExport(t, content))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(data) != 2 {
		t.Errorf("malformed lines should be skipped, got %d accounts", len(data))
	}
}

func TestLoadFileNoValidAccounts(t *testing.T) {
	_, err := LoadFile(writeExport(t, "not json at all"))
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput when nothing parses, got %v", err)
	}
}

func TestLoadFileBadArray(t *testing.T) {
	if _, err := LoadFile(writeExport(t, `[{"username": ]`)); err == nil {
		t.Error("expected error for a malformed array")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestRead(t *testing.T) {
	data, err := Read(strings.NewReader(arrayExport))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(data) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(data))
	}
}

func TestFileSource(t *testing.T) {
	src := FileSource{Path: writeExport(t, arrayExport)}

	data, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(data) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(data))
	}

	src.Path = filepath.Join(t.TempDir(), "gone.json")
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Error("expected error for a missing export")
	}
}
