package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/phanxgames/showcase/specialtext"
)

func testOptions() options {
	return options{width: 1000, size: 26, cell: 10, line: 20, images: imageFlags{}}
}

func TestImageFlagsSet(t *testing.T) {
	f := imageFlags{}
	if err := f.Set("img1=40x32.5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := f["img1"]; got.Width != 40 || got.Height != 32.5 {
		t.Errorf("img1 = %+v", got)
	}
	for _, bad := range []string{"img1", "=4x4", "img1=4", "img1=ax4", "img1=4xb", "img1=-1x4"} {
		if err := f.Set(bad); err == nil {
			t.Errorf("Set(%q) should fail", bad)
		}
	}
}

func TestImageFlagsUnresolved(t *testing.T) {
	_, err := imageFlags{}.ImageSize("nope")
	if !errors.Is(err, specialtext.ErrUnresolvedAsset) {
		t.Errorf("err = %v, want ErrUnresolvedAsset", err)
	}
}

func TestDump(t *testing.T) {
	opts := testOptions()
	opts.images["img1"] = specialtext.Size{Width: 20, Height: 30}

	var buf bytes.Buffer
	if err := dump(&buf, "ab [img1] cd", opts); err != nil {
		t.Fatalf("dump: %v", err)
	}
	var out output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []item{
		{Kind: "text", Content: "ab ", X: 0, Y: 30, Width: 30, Height: 20},
		{Kind: "image", Content: "img1", X: 30, Y: 30, Width: 20, Height: 30},
		{Kind: "text", Content: "cd", X: 50, Y: 30, Width: 20, Height: 20},
	}
	if len(out.Items) != len(want) {
		t.Fatalf("items = %+v", out.Items)
	}
	for i := range want {
		if out.Items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, out.Items[i], want[i])
		}
	}
	if out.Width != 70 || out.Height != 30 || out.Lines != 1 {
		t.Errorf("layout = %vx%v, %d lines", out.Width, out.Height, out.Lines)
	}
}

func TestDumpIssues(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, "a ] b", testOptions()); err != nil {
		t.Fatalf("dump: %v", err)
	}
	var out output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out.Issues) != 1 {
		t.Errorf("issues = %v, want one", out.Issues)
	}

	opts := testOptions()
	opts.strict = true
	if err := dump(&buf, "a ] b", opts); !errors.Is(err, specialtext.ErrMalformedMarkup) {
		t.Errorf("strict err = %v, want ErrMalformedMarkup", err)
	}
}
