package api

import "testing"

func TestDetailFrom(t *testing.T) {
	tests := map[string]struct {
		body string
		want string
	}{
		"string":     {body: `{"detail":"Token inválido"}`, want: "Token inválido"},
		"validation": {body: `{"detail":[{"msg":"field required"},{"msg":"bad email"}]}`, want: "field required; bad email"},
		"missing":    {body: `{"error":"x"}`, want: ""},
		"not json":   {body: `<html>`, want: ""},
		"empty":      {body: ``, want: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := detailFrom([]byte(tc.body)); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
