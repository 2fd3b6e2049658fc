package parse

import (
	"testing"
)

func TestParseMapping(t *testing.T) {
	doc := `
svc:
  "@env": prod
  host: localhost
  port: 8080
  item:
  - 1
  - 2
  nested:
    deep: true
`
	root, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != DefaultRootName {
		t.Errorf("root name: got %q", root.Name)
	}
	svc, err := root.GetPath("svc")
	if err != nil || svc == nil {
		t.Fatalf("svc: %v, %v", svc, err)
	}
	if env := svc.Attribute("env"); env == nil || env.Value != "prod" {
		t.Errorf("env attribute: got %v", env)
	}
	host, _ := svc.GetPath("host")
	if host == nil || host.Value != "localhost" {
		t.Errorf("host: got %v", host)
	}
	port, _ := svc.GetPath("port")
	if port == nil || port.Value != int64(8080) {
		t.Errorf("port: got %#v", port.Value)
	}
	items := svc.ChildrenNamed("item")
	if len(items) != 2 || items[0].Value != int64(1) || items[1].Value != int64(2) {
		t.Errorf("items: got %v", items)
	}
	deep, _ := svc.GetPath("nested.deep")
	if deep == nil || deep.Value != true {
		t.Errorf("nested.deep: got %v", deep)
	}
}

func TestParseSequenceOfMappings(t *testing.T) {
	doc := `
server:
- host: a
- host: b
`
	root, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	servers := root.ChildrenNamed("server")
	if len(servers) != 2 {
		t.Fatalf("servers: got %d want 2", len(servers))
	}
	h0, _ := servers[0].GetPath("host")
	h1, _ := servers[1].GetPath("host")
	if h0.Value != "a" || h1.Value != "b" {
		t.Errorf("hosts: got %v, %v", h0.Value, h1.Value)
	}
}

func TestParseJSON(t *testing.T) {
	root, err := Parse([]byte(`{"a": {"b": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := root.GetPath("a.b")
	if b == nil || b.Value != int64(1) {
		t.Errorf("a.b: got %v", b)
	}
}

func TestParseScalarRoot(t *testing.T) {
	root, err := Parse([]byte(`42`), RootName("r"))
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != "r" || root.Value != int64(42) {
		t.Errorf("root: %q %v", root.Name, root.Value)
	}
}

func TestParseEmpty(t *testing.T) {
	root, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if root.Defined() {
		t.Errorf("empty document should give an undefined root")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"sequence root", "- 1\n- 2\n"},
		{"mapping attribute", `{"@a": {"b": 1}}`},
		{"empty attribute name", `{"@": 1}`},
		{"nested sequence", "a:\n- - 1\n"},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.doc)); err == nil {
			t.Errorf("%s: want error", tc.name)
		}
	}
}

func TestParseAttrPrefix(t *testing.T) {
	root, err := Parse([]byte("a:\n  _attr: 1\n"), AttrPrefix("_"))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := root.GetPath("a")
	if attr := a.Attribute("attr"); attr == nil || attr.Value != int64(1) {
		t.Errorf("attr: got %v", attr)
	}
	if !a.Defined() {
		t.Errorf("node with attribute should be defined")
	}
}
