package model

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		tags []Tag
		want string
	}{
		{
			name: "tags sorted",
			tags: []Tag{NewTag("Martin_Ueding"), NewTag("Another Tag")},
			want: "20120204-Klopapierberg-9240#Another_Tag#Martin_Ueding.jpg",
		},
		{
			name: "no tags",
			want: "20120204-Klopapierberg-9240.jpg",
		},
		{
			name: "with dir",
			dir:  "20120204-Klopapierberg",
			tags: []Tag{NewTag("x")},
			want: "20120204-Klopapierberg/20120204-Klopapierberg-9240#x.jpg",
		},
		{
			name: "root dir",
			dir:  "/",
			want: "/20120204-Klopapierberg-9240.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.dir, "20120204", "Klopapierberg", "9240", tt.tags, "jpg")
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
		want string
	}{
		{"empty", nil, ""},
		{"single", []Tag{NewTag("a")}, "#a"},
		{"dedup", []Tag{NewTag("b"), NewTag("a b"), NewTag("b")}, "#a_b#b"},
		{"dedup by encoding", []Tag{NewTag("a b"), TagFromEncoded("a_b")}, "#a_b"},
		{"case-sensitive order", []Tag{NewTag("b"), NewTag("B"), NewTag("a")}, "#B#a#b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagString(tt.tags); got != tt.want {
				t.Errorf("TagString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantTags []string
	}{
		{"holiday#Beach#Sun.png", "holiday.png", []string{"Beach", "Sun"}},
		{"notes.txt", "notes.txt", nil},
		{"README#draft", "README", []string{"draft"}},
		{"scan.2019#Old_Photos.tif", "scan.2019.tif", []string{"Old Photos"}},
		{"#only.jpg", "#only.jpg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, tags := SplitTags(tt.name)
			if name != tt.wantName {
				t.Errorf("SplitTags(%q) name = %q, want %q", tt.name, name, tt.wantName)
			}
			if len(tags) != len(tt.wantTags) {
				t.Fatalf("SplitTags(%q) tags = %v, want %v", tt.name, tags, tt.wantTags)
			}
			for i, tag := range tags {
				if tag.Text != tt.wantTags[i] {
					t.Errorf("tags[%d] = %q, want %q", i, tag.Text, tt.wantTags[i])
				}
			}
		})
	}
}

func TestJoinTags(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
		want string
	}{
		{"holiday.png", []Tag{NewTag("Sun"), NewTag("Beach")}, "holiday#Beach#Sun.png"},
		{"README", []Tag{NewTag("draft")}, "README#draft"},
		{"scan.2019.tif", []Tag{NewTag("Old Photos")}, "scan.2019#Old_Photos.tif"},
		{".profile", []Tag{NewTag("x")}, ".profile#x"},
		{"plain.txt", nil, "plain.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinTags(tt.name, tt.tags); got != tt.want {
				t.Errorf("JoinTags(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSplitJoinTags_RoundTrip(t *testing.T) {
	for _, name := range []string{"holiday#Beach#Sun.png", "scan.2019#Old_Photos.tif"} {
		stem, tags := SplitTags(name)
		if got := JoinTags(stem, tags); got != name {
			t.Errorf("JoinTags(SplitTags(%q)) = %q", name, got)
		}
	}
}
