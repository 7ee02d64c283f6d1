package urls

import "testing"

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"lowercases dns", "WWW.Example.COM", "www.example.com"},
		{"keeps canonical dns", "example.com", "example.com"},
		{"decodes escapes", "%77%77%77.example.com", "www.example.com"},
		{"single decimal number", "3279880203", "195.127.0.11"},
		{"hex number", "0xC386647B", "195.134.100.123"},
		{"mixed base groups", "0xC0.0250.01", "192.168.0.1"},
		{"octal groups", "0301.0250.0.01", "193.168.0.1"},
		{"partial groups", "192.168.257", "192.168.1.1"},
		{"plain ipv4 unchanged", "195.127.0.11", "195.127.0.11"},
		{"overflowing number stays dns", "4294967296", "4294967296"},
		{"group too large stays dns", "256.1.1.1", "256.1.1.1"},
		{"ipv6 recompressed", "[fe80:0:0:0:0:0:0:1]", "[fe80::1]"},
		{"ipv6 lowercased", "[FE80::A]", "[fe80::a]"},
		{"invalid ipv6 untouched", "[fe80:::1]", "[fe80:::1]"},
		{"fullwidth dots folded", "www。example．com", "www.example.com"},
		{"punycode round trip", "xn--bcher-kva.example.com", "xn--bcher-kva.example.com"},
		{"unicode label encoded", "müller.de", "xn--mller-kva.de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := normalizeHost(tt.host)
			if got != tt.want {
				t.Errorf("normalizeHost(%q) = %q, want %q", tt.host, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"root", "/", "/"},
		{"plain", "/a/b", "/a/b"},
		{"trailing slash kept", "/a/b/", "/a/b/"},
		{"double decode", "/%2525", "/%25"},
		{"decoded control reencoded", "/%2541", "/A"},
		{"dot segments collapse", "/a/b/.//./../c", "/a/c"},
		{"parent at root dropped", "/../a", "/a"},
		{"trailing dot segment", "/a/b/..", "/a/"},
		{"space reencoded", "/a b", "/a%20b"},
		{"tabs and newlines stripped", "/foo\tbar\rbaz\n2", "/foobarbaz2"},
		{"invalid escape kept", "/%zz", "/%25zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	u := markedURL("http://3279880203/a/./b/../c", map[Part]int{
		Scheme: 0,
		Host:   7,
		Path:   17,
	})

	n := u.Normalize()
	if !n.IsNormalized() {
		t.Fatal("IsNormalized() = false after Normalize()")
	}
	if got := n.Host(); got != "195.127.0.11" {
		t.Errorf("Host() = %q, want %q", got, "195.127.0.11")
	}
	if got := n.Path(); got != "/a/c" {
		t.Errorf("Path() = %q, want %q", got, "/a/c")
	}
	if got := n.FullURL(); got != "http://195.127.0.11/a/c" {
		t.Errorf("FullURL() = %q, want %q", got, "http://195.127.0.11/a/c")
	}

	wantBytes := []byte{195, 127, 0, 11}
	gotBytes := n.HostBytes()
	if len(gotBytes) != len(wantBytes) {
		t.Fatalf("HostBytes() = %v, want %v", gotBytes, wantBytes)
	}
	for i := range wantBytes {
		if gotBytes[i] != wantBytes[i] {
			t.Fatalf("HostBytes() = %v, want %v", gotBytes, wantBytes)
		}
	}

	// The original view is untouched and the operation is idempotent.
	if u.IsNormalized() {
		t.Error("Normalize() mutated the receiver")
	}
	if again := n.Normalize(); again != n {
		t.Error("Normalize() of a normalized URL allocated a new view")
	}
}

func TestNormalizeStripsEmbeddedWhitespace(t *testing.T) {
	u := markedURL("http://www.google.com/foo\tbar\rbaz\n2", map[Part]int{
		Scheme: 0,
		Host:   7,
		Path:   21,
	})

	n := u.Normalize()
	if got := n.Host(); got != "www.google.com" {
		t.Errorf("Host() = %q, want %q", got, "www.google.com")
	}
	if got := n.Path(); got != "/foobarbaz2" {
		t.Errorf("Path() = %q, want %q", got, "/foobarbaz2")
	}
}

func TestNormalizeIPv6URL(t *testing.T) {
	u := markedURL("http://[FE80:0:0:0:0:0:0:1]/x", map[Part]int{
		Scheme: 0,
		Host:   7,
		Path:   27,
	})

	n := u.Normalize()
	if got := n.Host(); got != "[fe80::1]" {
		t.Errorf("Host() = %q, want %q", got, "[fe80::1]")
	}
	if n.HostBytes() == nil {
		t.Error("HostBytes() = nil for an IPv6 host")
	}
}
