package cache

import (
	"strings"
	"testing"
)

type queryParams struct {
	Page     int
	Search   string
	internal string
}

func TestSerializeKeyLayout(t *testing.T) {
	s := NewDefaultKeySerializer()

	key := s.SerializeKey("ansatte", "get", int64(42))
	want := "ansatte::get::42"
	if key != want {
		t.Errorf("expected %q, got %q", want, key)
	}

	if !strings.HasPrefix(key, EntityPrefix("ansatte")) {
		t.Errorf("key %q should carry the entity prefix %q", key, EntityPrefix("ansatte"))
	}
	if !strings.HasPrefix(key, OperationPrefix("ansatte", "get")) {
		t.Errorf("key %q should carry the operation prefix %q", key, OperationPrefix("ansatte", "get"))
	}
}

func TestSerializeKeyDeterminism(t *testing.T) {
	s := NewDefaultKeySerializer()

	tests := []struct {
		name string
		args []any
	}{
		{"ints", []any{1, 2, 3}},
		{"strings", []any{"a", "b"}},
		{"map", []any{map[string]string{"x": "1", "y": "2", "z": "3"}}},
		{"struct", []any{queryParams{Page: 2, Search: "Thor"}}},
		{"slice", []any{[]int{3, 1, 2}}},
		{"mixed", []any{"page", 2, map[string][]string{"gruppe_id": {"1", "2"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := s.SerializeKey("e", "op", tt.args...)
			for i := 0; i < 50; i++ {
				if got := s.SerializeKey("e", "op", tt.args...); got != first {
					t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
				}
			}
		})
	}
}

func TestSerializeKeyValues(t *testing.T) {
	s := NewDefaultKeySerializer()

	tests := []struct {
		name string
		arg  any
		want string
	}{
		{"nil", nil, "e::op::nil"},
		{"nil pointer", (*queryParams)(nil), "e::op::nil"},
		{"string", "søk", "e::op::søk"},
		{"bool", true, "e::op::true"},
		{"nil slice", []string(nil), "e::op::slice:nil"},
		{"slice keeps order", []int{3, 1, 2}, "e::op::slice[3]:{3,1,2}"},
		{"map sorts pairs", map[string]int{"b": 2, "a": 1}, "e::op::map[2]:{a=1,b=2}"},
		{
			"struct exported fields only",
			queryParams{Page: 2, Search: "Thor", internal: "hidden"},
			"e::op::struct:{Page:2,Search:Thor}",
		},
		{
			"pointer dereferences",
			&queryParams{Page: 1},
			"e::op::struct:{Page:1,Search:}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.SerializeKey("e", "op", tt.arg); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSerializeKeyDistinguishesParams(t *testing.T) {
	s := NewDefaultKeySerializer()

	a := s.SerializeKey("ansatte", "list", queryParams{Page: 1})
	b := s.SerializeKey("ansatte", "list", queryParams{Page: 2})
	if a == b {
		t.Errorf("different params should produce different keys, both were %q", a)
	}

	x := s.SerializeKey("ansatte", "list")
	y := s.SerializeKey("kunder", "list")
	if x == y {
		t.Errorf("different entities should produce different keys, both were %q", x)
	}
}
