package resourcecache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/nordkost/go-erp-client/apiclient"
)

func TestSuccessMessage(t *testing.T) {
	tests := []struct {
		label string
		act   Action
		want  string
	}{
		{"Thor Heyerdahl", ActionCreate, "Thor Heyerdahl opprettet"},
		{"Fiskesuppe", ActionUpdate, "Fiskesuppe oppdatert"},
		{"Ansatt", ActionDelete, "Ansatt slettet"},
	}

	for _, tt := range tests {
		if got := successMessage(tt.label, tt.act); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		act      Action
		singular string
		want     string
	}{
		{
			name:     "backend detail passes through",
			err:      &apiclient.Error{Kind: apiclient.KindValidation, StatusCode: 422, Message: "Fornavn er påkrevd"},
			act:      ActionCreate,
			singular: "Ansatt",
			want:     "Fornavn er påkrevd",
		},
		{
			name:     "wrapped backend detail passes through",
			err:      fmt.Errorf("create ansatt: %w", &apiclient.Error{Kind: apiclient.KindForbidden, StatusCode: 403, Message: "Ingen tilgang"}),
			act:      ActionCreate,
			singular: "Ansatt",
			want:     "Ingen tilgang",
		},
		{
			name:     "network error falls back",
			err:      &apiclient.Error{Kind: apiclient.KindNetwork, Message: "dial tcp: connection refused"},
			act:      ActionCreate,
			singular: "Ansatt",
			want:     "Kunne ikke opprette ansatt",
		},
		{
			name:     "plain error falls back",
			err:      errors.New("boom"),
			act:      ActionUpdate,
			singular: "Ordre",
			want:     "Kunne ikke oppdatere ordre",
		},
		{
			name:     "delete fallback",
			err:      errors.New("boom"),
			act:      ActionDelete,
			singular: "Produkt",
			want:     "Kunne ikke slette produkt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FailureMessage(tt.err, tt.act, tt.singular); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	notifier.Success(context.Background(), "Ansatt opprettet")
	notifier.Failure(context.Background(), "Kunne ikke slette ansatt")

	out := buf.String()
	if !strings.Contains(out, "Ansatt opprettet") || !strings.Contains(out, "notification=success") {
		t.Errorf("missing success record in %q", out)
	}
	if !strings.Contains(out, "Kunne ikke slette ansatt") || !strings.Contains(out, "notification=failure") {
		t.Errorf("missing failure record in %q", out)
	}
}
