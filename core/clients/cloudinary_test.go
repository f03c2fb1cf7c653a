package clients

import "testing"

func TestExtractPublicID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1700000000/sample.jpg", "sample"},
		{"https://res.cloudinary.com/demo/image/upload/abc123.webp", "abc123"},
		{"https://res.cloudinary.com/demo/image/upload/abc123", "abc123"},
		{"", ""},
		{"no-slashes-here", ""},
	}

	for _, tc := range cases {
		if got := ExtractPublicID(tc.url); got != tc.want {
			t.Errorf("ExtractPublicID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestCloudinarySign(t *testing.T) {
	c := NewCloudinary("demo", "key", "secret")
	params := map[string]string{
		"timestamp": "1700000000",
		"public_id": "sample",
	}

	first := c.sign(params)
	if len(first) != 40 {
		t.Fatalf("expected a 40 char sha1 hex digest, got %d chars", len(first))
	}
	if second := c.sign(params); second != first {
		t.Error("signature is not deterministic for identical params")
	}

	other := NewCloudinary("demo", "key", "different-secret")
	if other.sign(params) == first {
		t.Error("signature does not depend on the api secret")
	}
}
