package question

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFallbackQuestions(t *testing.T) {
	qs := FallbackQuestions("office chairs")

	if len(qs) != 5 {
		t.Fatalf("len = %d, want 5", len(qs))
	}
	if qs[0].Key != "specifications" {
		t.Errorf("first key = %q, want %q", qs[0].Key, "specifications")
	}
	want := "What specific requirements do you have for the office chairs?"
	if qs[0].Question != want {
		t.Errorf("first question = %q, want %q", qs[0].Question, want)
	}
	if qs[4].Key != "budget_range" {
		t.Errorf("last key = %q, want %q", qs[4].Key, "budget_range")
	}
}

func TestServiceGeneratorSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"questions":[{"key":"color","question":"What color?"},{"key":"material","question":"What material?"}]}`))
	}))
	defer srv.Close()

	g := NewServiceGenerator(srv.URL)
	qs := g.Generate(context.Background(), "chairs", 10)

	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2 (service list passed through verbatim)", len(qs))
	}
	if qs[0].Key != "color" {
		t.Errorf("first key = %q, want %q", qs[0].Key, "color")
	}
}

func TestServiceGeneratorFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
		{
			name: "empty question list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"questions":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := NewServiceGenerator(srv.URL)
			qs := g.Generate(context.Background(), "laptops", 5)

			if len(qs) != 5 {
				t.Fatalf("len = %d, want fallback of 5", len(qs))
			}
			if qs[0].Key != "specifications" {
				t.Errorf("first key = %q, want fallback %q", qs[0].Key, "specifications")
			}
		})
	}
}

func TestServiceGeneratorNoEndpoint(t *testing.T) {
	g := NewServiceGenerator("")
	qs := g.Generate(context.Background(), "printers", 1)
	if len(qs) != 5 {
		t.Fatalf("len = %d, want fallback of 5", len(qs))
	}
}
